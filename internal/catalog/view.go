// Package catalog derives the visible page of the storefront from the full
// record list. It is a pure function of its inputs and keeps no state of its
// own; every request recomputes the selection.
package catalog

import (
	"strings"

	"royalmotors/internal/inventory"
)

// PageSize is the fixed number of cards per page.
const PageSize = 16

// Tab selects one of the two display orderings over the same data.
type Tab string

const (
	// TabStock shows the repository order as-is (newest first).
	TabStock Tab = "stock"
	// TabSearch shows the fully reversed order.
	TabSearch Tab = "search"
)

// ParseTab maps a query-string value onto a Tab, defaulting to the stock
// listing for anything unrecognized.
func ParseTab(s string) Tab {
	if s == string(TabSearch) {
		return TabSearch
	}
	return TabStock
}

// Page is the derived output handed to the presentation layer.
type Page struct {
	Items      []inventory.VehicleRecord
	Page       int
	TotalPages int
	Total      int
}

// Select orders, filters and paginates records. A non-empty query keeps only
// records whose brand or model contains it case-insensitively. Out-of-range
// page numbers clamp into [1, TotalPages], so a delete that empties the last
// page can never leave the caller on a phantom page.
func Select(records []inventory.VehicleRecord, tab Tab, query string, page int) Page {
	ordered := make([]inventory.VehicleRecord, len(records))
	copy(ordered, records)
	if tab == TabSearch {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	filtered := ordered
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered = filtered[:0:0]
		for _, rec := range ordered {
			if strings.Contains(strings.ToLower(rec.Brand), q) ||
				strings.Contains(strings.ToLower(rec.Model), q) {
				filtered = append(filtered, rec)
			}
		}
	}

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	var items []inventory.VehicleRecord
	if total > 0 {
		start := (page - 1) * PageSize
		end := start + PageSize
		if end > total {
			end = total
		}
		items = filtered[start:end]
	}

	return Page{Items: items, Page: page, TotalPages: totalPages, Total: total}
}
