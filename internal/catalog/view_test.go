package catalog_test

import (
	"fmt"
	"testing"

	"royalmotors/internal/catalog"
	"royalmotors/internal/inventory"
)

func records(n int) []inventory.VehicleRecord {
	out := make([]inventory.VehicleRecord, n)
	for i := range out {
		out[i] = inventory.VehicleRecord{
			ID:    fmt.Sprintf("v%03d", i),
			Brand: "Brand",
			Model: fmt.Sprintf("Model %d", i),
		}
	}
	return out
}

func TestStockTabKeepsRepositoryOrder(t *testing.T) {
	recs := records(3)
	pg := catalog.Select(recs, catalog.TabStock, "", 1)
	if pg.Items[0].ID != "v000" || pg.Items[2].ID != "v002" {
		t.Fatalf("stock tab must keep order as-is: %v", ids(pg.Items))
	}
}

func TestSearchTabReversesOrder(t *testing.T) {
	recs := records(3)
	pg := catalog.Select(recs, catalog.TabSearch, "", 1)
	if pg.Items[0].ID != "v002" || pg.Items[2].ID != "v000" {
		t.Fatalf("search tab must reverse order: %v", ids(pg.Items))
	}
	// The input slice must remain untouched.
	if recs[0].ID != "v000" {
		t.Fatal("Select mutated its input")
	}
}

func TestFilterMatchesBrandOrModelCaseInsensitively(t *testing.T) {
	recs := []inventory.VehicleRecord{
		{ID: "a", Brand: "Toyota", Model: "Corolla"},
		{ID: "b", Brand: "Honda", Model: "Toyota-ish"},
		{ID: "c", Brand: "Honda", Model: "Civic"},
	}
	pg := catalog.Select(recs, catalog.TabStock, "toyota", 1)
	// Both the brand match and the model-substring match must survive.
	if got := ids(pg.Items); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("filter wrong: %v", got)
	}

	if pg := catalog.Select(recs, catalog.TabStock, "", 1); pg.Total != 3 {
		t.Fatalf("empty query must return the full set, got %d", pg.Total)
	}
}

func TestPaginationBoundaries(t *testing.T) {
	recs := records(20)
	pg := catalog.Select(recs, catalog.TabStock, "", 1)
	if pg.TotalPages != 2 || len(pg.Items) != 16 || pg.Items[0].ID != "v000" || pg.Items[15].ID != "v015" {
		t.Fatalf("page 1 wrong: pages=%d items=%v", pg.TotalPages, ids(pg.Items))
	}

	pg = catalog.Select(recs, catalog.TabStock, "", 2)
	if len(pg.Items) != 4 || pg.Items[0].ID != "v016" || pg.Items[3].ID != "v019" {
		t.Fatalf("page 2 wrong: %v", ids(pg.Items))
	}
}

func TestZeroRecordsZeroPages(t *testing.T) {
	pg := catalog.Select(nil, catalog.TabStock, "", 1)
	if pg.TotalPages != 0 || pg.Total != 0 || len(pg.Items) != 0 {
		t.Fatalf("empty set should yield zero pages: %+v", pg)
	}
}

func TestOutOfRangePageClamps(t *testing.T) {
	recs := records(17) // 2 pages; page 2 holds exactly one record
	pg := catalog.Select(recs, catalog.TabStock, "", 2)
	if len(pg.Items) != 1 {
		t.Fatalf("last page should hold the remainder, got %d", len(pg.Items))
	}

	// Deleting the only record of the last page shrinks the page count; a
	// stale page number must clamp, not blow up or render an empty page.
	pg = catalog.Select(records(16), catalog.TabStock, "", 2)
	if pg.Page != 1 || pg.TotalPages != 1 || len(pg.Items) != 16 {
		t.Fatalf("stale page did not clamp: %+v", pg)
	}

	if pg := catalog.Select(recs, catalog.TabStock, "", -4); pg.Page != 1 {
		t.Fatalf("negative page should clamp to 1, got %d", pg.Page)
	}
}

func ids(recs []inventory.VehicleRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}
