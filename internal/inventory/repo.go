package inventory

import (
	"encoding/json"
	"log"
	"sync"

	"royalmotors/internal/store"
)

// StorageKey is the durable-store key the whole collection lives under.
const StorageKey = "royal_motors_inventory"

// Repository persists the vehicle collection as one JSON array under
// StorageKey. There is no partial update: every mutation rewrites the full
// list, which keeps the persisted blob consistent with the last committed
// in-memory state. The in-memory copy is authoritative between writes; a
// failed write keeps it intact.
type Repository struct {
	kv store.KV

	mu     sync.Mutex
	cache  []VehicleRecord
	loaded bool
}

func NewRepository(kv store.KV) *Repository {
	return &Repository{kv: kv}
}

// Load returns the current collection. On first call it reads the stored
// blob; an absent or corrupt blob falls back to the seed catalog and is
// treated as success.
func (r *Repository) Load() []VehicleRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		r.cache = r.read()
		r.loaded = true
	}
	out := make([]VehicleRecord, len(r.cache))
	copy(out, r.cache)
	return out
}

func (r *Repository) read() []VehicleRecord {
	raw, ok := r.kv.Get(StorageKey)
	if !ok {
		return SeedCatalog()
	}
	var recs []VehicleRecord
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		// Corrupt blob: swallow and reseed rather than surfacing an error.
		log.Printf("[inventory] stored blob unreadable, reseeding: %v", err)
		return SeedCatalog()
	}
	return recs
}

// ReplaceAll installs records as the new collection and writes the full
// serialized list back to the store. The cache is updated even when the
// write fails, so the working state is never lost; the error is returned
// once for the caller to surface as a warning.
func (r *Repository) ReplaceAll(records []VehicleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make([]VehicleRecord, len(records))
	copy(r.cache, records)
	r.loaded = true

	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.kv.Set(StorageKey, string(raw))
}

// Get looks a record up by id.
func (r *Repository) Get(id string) (VehicleRecord, bool) {
	for _, rec := range r.Load() {
		if rec.ID == id {
			return rec, true
		}
	}
	return VehicleRecord{}, false
}

// Count reports the collection size, for the storefront header.
func (r *Repository) Count() int {
	return len(r.Load())
}
