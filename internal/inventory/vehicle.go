// Package inventory holds the vehicle record model and the repository that
// persists the whole collection as one JSON blob in the durable store.
package inventory

// Transmission labels form a closed set; they are stored as display labels.
const (
	TransmissionAutomatic = "Automatic"
	TransmissionManual    = "Manual"
)

// MaxGalleryImages caps how many photos one record may carry.
const MaxGalleryImages = 10

// VehicleRecord is one inventory item. The id is assigned once at creation
// and is the sole lookup key; insertion order of the collection is the
// canonical newest-first ordering.
type VehicleRecord struct {
	ID           string   `json:"id"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        int      `json:"price"`
	OldPrice     int      `json:"oldPrice,omitempty"`
	Km           int      `json:"km"`
	Fuel         string   `json:"fuel"`
	Transmission string   `json:"transmission"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	Gallery      []string `json:"gallery"`
	Features     []string `json:"features"`
	IsNew        bool     `json:"isNew"`
}

// Images returns the displayable images: the gallery when present, else the
// primary image alone.
func (v VehicleRecord) Images() []string {
	if len(v.Gallery) > 0 {
		return v.Gallery
	}
	return []string{v.ImageURL}
}
