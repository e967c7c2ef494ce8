package entities

import "time"

// CustomizationStatus represents the lifecycle of a customization.
//
// Domain notes:
//   - Status only moves forward: draft -> preview_requested -> paid.
//   - Each transition must target the immediate successor; skipping
//     (draft -> paid) and repeating the current status are both rejected.
type CustomizationStatus string

const (
	CustomizationStatusDraft            CustomizationStatus = "draft"
	CustomizationStatusPreviewRequested CustomizationStatus = "preview_requested"
	CustomizationStatusPaid             CustomizationStatus = "paid"
)

var customizationStatusOrder = []CustomizationStatus{
	CustomizationStatusDraft,
	CustomizationStatusPreviewRequested,
	CustomizationStatusPaid,
}

func (s CustomizationStatus) rank() int {
	for i, v := range customizationStatusOrder {
		if v == s {
			return i
		}
	}
	return -1
}

func (s CustomizationStatus) Valid() bool {
	return s.rank() >= 0
}

// Next returns the successor status, if any.
func (s CustomizationStatus) Next() (CustomizationStatus, bool) {
	r := s.rank()
	if r < 0 || r+1 >= len(customizationStatusOrder) {
		return "", false
	}
	return customizationStatusOrder[r+1], true
}

// CanAdvanceTo reports whether target is the immediate successor of s.
func (s CustomizationStatus) CanAdvanceTo(target CustomizationStatus) bool {
	next, ok := s.Next()
	return ok && next == target
}

// Customization is one user's editable instance of a template.
//
// Storage model (gorm):
//   - table: customizations
//   - version: optimistic lock counter, bumped on every write
//
// Amount and Currency are copied from the template at creation; nothing
// updates them afterwards.
type Customization struct {
	ID         string              `json:"id"`
	UserID     string              `json:"user_id"`
	TemplateID string              `json:"template_id"`
	Structure  TemplateStructure   `json:"structure"`
	Amount     float64             `json:"amount"`
	Currency   string              `json:"currency"`
	Status     CustomizationStatus `json:"status"`
	PreviewURL string              `json:"preview_url,omitempty"`
	FinalURL   string              `json:"final_url,omitempty"`
	Version    int64               `json:"version"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func (c Customization) OwnedBy(userID string) bool {
	return c.ID != "" && c.UserID != "" && c.UserID == userID
}
