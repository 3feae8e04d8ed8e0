// Package editor manages the single in-progress vehicle draft of an admin
// session: begin/edit, field-level mutation, commit (insert-or-replace into
// the repository) and discard. Nothing auto-saves; only Commit persists.
package editor

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"royalmotors/internal/inventory"
)

var ErrNoDraft = errors.New("editor: no draft in progress")

// PlaceholderImage is the primary image of a freshly created draft until the
// admin uploads or links a real one.
const PlaceholderImage = "/static/img/placeholder-car.svg"

type session struct {
	draft *inventory.VehicleRecord
	gen   uint64
}

// Manager holds at most one draft per admin session. The generation counter
// bumps on every begin/discard/commit so an image batch that finishes late
// cannot resurrect a draft that was cleared while it was converting.
type Manager struct {
	repo *inventory.Repository

	mu       sync.Mutex
	sessions map[string]*session
}

func NewManager(repo *inventory.Repository) *Manager {
	return &Manager{repo: repo, sessions: make(map[string]*session)}
}

func (m *Manager) session(sid string) *session {
	s, ok := m.sessions[sid]
	if !ok {
		s = &session{}
		m.sessions[sid] = s
	}
	return s
}

// BeginCreate starts a fresh draft with a new unique id and the default
// template, and returns a copy of it.
func (m *Manager) BeginCreate(sid string) inventory.VehicleRecord {
	draft := inventory.VehicleRecord{
		ID:           uuid.NewString(),
		Brand:        "NEW BRAND",
		Model:        "VEHICLE MODEL",
		Year:         time.Now().Year(),
		Price:        0,
		Km:           0,
		Fuel:         "Flex",
		Transmission: inventory.TransmissionAutomatic,
		Description:  "Vehicle description...",
		ImageURL:     PlaceholderImage,
		Gallery:      []string{},
		Features:     []string{"Air conditioning", "Power steering"},
		IsNew:        true,
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session(sid)
	s.draft = &draft
	s.gen++
	return draft
}

// BeginEdit starts a draft as a field-for-field copy of rec (same id).
func (m *Manager) BeginEdit(sid string, rec inventory.VehicleRecord) {
	cp := rec
	cp.Gallery = append([]string(nil), rec.Gallery...)
	cp.Features = append([]string(nil), rec.Features...)
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session(sid)
	s.draft = &cp
	s.gen++
}

// Draft returns a copy of the current draft, if any.
func (m *Manager) Draft(sid string) (inventory.VehicleRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sid]
	if !ok || s.draft == nil {
		return inventory.VehicleRecord{}, false
	}
	return *s.draft, true
}

// Generation returns the session's current draft generation. Callers that
// kick off asynchronous work snapshot it and pass it back to AttachImages.
func (m *Manager) Generation(sid string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sid]
	if !ok {
		return 0
	}
	return s.gen
}

func (m *Manager) mutate(sid string, fn func(*inventory.VehicleRecord)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sid]
	if !ok || s.draft == nil {
		return ErrNoDraft
	}
	fn(s.draft)
	return nil
}

// Field setters. Each replaces exactly one field of the current draft;
// validation happens upstream, before a setter is called.

func (m *Manager) SetBrand(sid, v string) error {
	return m.mutate(sid, func(d *inventory.VehicleRecord) { d.Brand = v })
}

func (m *Manager) SetModel(sid, v string) error {
	return m.mutate(sid, func(d *inventory.VehicleRecord) { d.Model = v })
}

func (m *Manager) SetYear(sid string, v int) error {
	return m.mutate(sid, func(d *inventory.VehicleRecord) { d.Year = v })
}

func (m *Manager) SetPrice(sid string, v int) error {
	return m.mutate(sid, func(d *inventory.VehicleRecord) { d.Price = v })
}

func (m *Manager) SetOldPrice(sid string, v int) error {
	return m.mutate(sid, func(d *inventory.VehicleRecord) { d.OldPrice = v })
}

func (m *Manager) SetKm(sid string, v int) error {
	return m.mutate(sid, func(d *inventory.VehicleRecord) { d.Km = v })
}

func (m *Manager) SetFuel(sid, v string) error {
	return m.mutate(sid, func(d *inventory.VehicleRecord) { d.Fuel = v })
}

func (m *Manager) SetTransmission(sid, v string) error {
	return m.mutate(sid, func(d *inventory.VehicleRecord) { d.Transmission = v })
}

func (m *Manager) SetDescription(sid, v string) error {
	return m.mutate(sid, func(d *inventory.VehicleRecord) { d.Description = v })
}

func (m *Manager) SetImageURL(sid, v string) error {
	return m.mutate(sid, func(d *inventory.VehicleRecord) { d.ImageURL = v })
}

func (m *Manager) SetFeatures(sid string, v []string) error {
	return m.mutate(sid, func(d *inventory.VehicleRecord) { d.Features = v })
}

func (m *Manager) SetIsNew(sid string, v bool) error {
	return m.mutate(sid, func(d *inventory.VehicleRecord) { d.IsNew = v })
}

// AttachImages installs a converted image batch on the draft: the first
// image becomes the primary, the full list replaces the gallery. The batch
// is dropped when gen no longer matches the session's generation, i.e. the
// draft was discarded or swapped while the batch was converting.
func (m *Manager) AttachImages(sid string, gen uint64, images []string) bool {
	if len(images) == 0 {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sid]
	if !ok || s.draft == nil || s.gen != gen {
		return false
	}
	s.draft.ImageURL = images[0]
	s.draft.Gallery = append([]string(nil), images...)
	return true
}

// Commit inserts or replaces the draft in the collection by id: a known id
// is replaced in place (position preserved), an unknown id is prepended as
// the newest record. The draft is cleared even when the persist fails — the
// repository keeps the committed state in memory and the error is surfaced
// once as a storage warning.
func (m *Manager) Commit(sid string) error {
	m.mu.Lock()
	s, ok := m.sessions[sid]
	if !ok || s.draft == nil {
		m.mu.Unlock()
		return ErrNoDraft
	}
	draft := *s.draft
	s.draft = nil
	s.gen++
	m.mu.Unlock()

	records := m.repo.Load()
	replaced := false
	for i := range records {
		if records[i].ID == draft.ID {
			records[i] = draft
			replaced = true
			break
		}
	}
	if !replaced {
		records = append([]inventory.VehicleRecord{draft}, records...)
	}
	return m.repo.ReplaceAll(records)
}

// Discard clears the draft without persisting anything.
func (m *Manager) Discard(sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sid]
	if !ok {
		return
	}
	s.draft = nil
	s.gen++
}

// Remove deletes the record with the given id from the collection. The
// confirmation step lives in the presentation layer.
func (m *Manager) Remove(id string) error {
	records := m.repo.Load()
	kept := records[:0:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return nil // unknown id, nothing to do
	}
	return m.repo.ReplaceAll(kept)
}
