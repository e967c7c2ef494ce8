package entities

import "strings"

// MediaType is the kind of asset a user attaches to a customization.
type MediaType string

const (
	MediaTypeAudio MediaType = "audio"
	MediaTypeImage MediaType = "image"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeAudio, MediaTypeImage:
		return true
	}
	return false
}

// MediaRef is an uploaded asset URL plus the slot it occupies.
//
// A reference has no life outside its owning tree: it is stored inside a
// customization's or a template's structure and nowhere else.
type MediaRef struct {
	Type    MediaType `json:"type"`
	URL     string    `json:"url"`
	FieldID string    `json:"fieldId,omitempty"`
	PageID  string    `json:"pageId,omitempty"`
}

// SlotKey identifies a (field, page) position in a template tree.
type SlotKey struct {
	FieldID string
	PageID  string
}

func (r MediaRef) Slot() SlotKey {
	return SlotKey{FieldID: strings.TrimSpace(r.FieldID), PageID: strings.TrimSpace(r.PageID)}
}

// Addressed reports whether the reference targets a specific slot rather than
// the top-level media list.
func (k SlotKey) Addressed() bool {
	return k.FieldID != "" || k.PageID != ""
}
