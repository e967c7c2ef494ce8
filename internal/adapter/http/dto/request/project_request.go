package request

import (
	"strings"

	"invite_studio/internal/domain/entities"
)

type ProjectCreateRequest struct {
	TemplateID string `json:"templateId" binding:"required"`
}

// SaveMediaRequest attaches an uploaded asset to a project. FieldID and PageID
// are optional; without them the asset goes to the top-level media list.
type SaveMediaRequest struct {
	Type    string `json:"type" binding:"required"`
	URL     string `json:"url" binding:"required"`
	FieldID string `json:"fieldId"`
	PageID  string `json:"pageId"`
}

func (r SaveMediaRequest) ToMediaRef() entities.MediaRef {
	return entities.MediaRef{
		Type:    entities.MediaType(strings.ToLower(strings.TrimSpace(r.Type))),
		URL:     strings.TrimSpace(r.URL),
		FieldID: r.FieldID,
		PageID:  r.PageID,
	}
}
