package entities

import (
	"fmt"
	"strings"

	"invite_studio/internal/domain"
)

// FieldKind is what a template field holds.
type FieldKind string

const (
	FieldKindText  FieldKind = "text"
	FieldKindImage FieldKind = "image"
	FieldKindAudio FieldKind = "audio"
)

// TemplateStructure is the page/field/media layout of a template. A
// customization starts as a deep copy of its template's structure and is then
// mutated by media saves.
type TemplateStructure struct {
	Pages []Page     `json:"pages"`
	Media []MediaRef `json:"media,omitempty"`
}

type Page struct {
	ID     string  `json:"id"`
	Title  string  `json:"title,omitempty"`
	Fields []Field `json:"fields"`
}

type Field struct {
	ID    string    `json:"id"`
	Kind  FieldKind `json:"kind"`
	Label string    `json:"label,omitempty"`
	Value string    `json:"value,omitempty"`
	Media *MediaRef `json:"media,omitempty"`
}

// Clone returns a deep copy.
func (s TemplateStructure) Clone() TemplateStructure {
	out := TemplateStructure{}
	if s.Pages != nil {
		out.Pages = make([]Page, len(s.Pages))
		for i, p := range s.Pages {
			np := Page{ID: p.ID, Title: p.Title}
			if p.Fields != nil {
				np.Fields = make([]Field, len(p.Fields))
				for j, f := range p.Fields {
					nf := f
					if f.Media != nil {
						m := *f.Media
						nf.Media = &m
					}
					np.Fields[j] = nf
				}
			}
			out.Pages[i] = np
		}
	}
	if s.Media != nil {
		out.Media = append([]MediaRef(nil), s.Media...)
	}
	return out
}

// MediaURLs lists every non-empty media URL in the tree, fields first.
func (s TemplateStructure) MediaURLs() []string {
	var urls []string
	for _, p := range s.Pages {
		for _, f := range p.Fields {
			if f.Media != nil && strings.TrimSpace(f.Media.URL) != "" {
				urls = append(urls, strings.TrimSpace(f.Media.URL))
			}
		}
	}
	for _, m := range s.Media {
		if u := strings.TrimSpace(m.URL); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// findField resolves a field by id, restricted to one page when pageID is set.
func (s *TemplateStructure) findField(fieldID, pageID string) *Field {
	for i := range s.Pages {
		p := &s.Pages[i]
		if pageID != "" && p.ID != pageID {
			continue
		}
		for j := range p.Fields {
			if p.Fields[j].ID == fieldID {
				return &p.Fields[j]
			}
		}
	}
	return nil
}

// Lookup returns the media reference occupying a slot.
func (s *TemplateStructure) Lookup(slot SlotKey) (MediaRef, bool) {
	if slot.FieldID != "" {
		if f := s.findField(slot.FieldID, slot.PageID); f != nil {
			if f.Media == nil {
				return MediaRef{}, false
			}
			return *f.Media, true
		}
	}
	if !slot.Addressed() {
		return MediaRef{}, false
	}
	for _, m := range s.Media {
		if m.Slot() == slot {
			return m, true
		}
	}
	return MediaRef{}, false
}

// SetMedia attaches ref to the tree. A field matching (fieldID, pageID) gets the
// reference directly; an addressed slot with no matching field is upserted in
// the top-level media list; an unaddressed reference is appended there. Any
// earlier reference in the same slot is replaced.
func (s *TemplateStructure) SetMedia(ref MediaRef) error {
	if !ref.Type.Valid() {
		return fmt.Errorf("%w: unsupported media type %q", domain.ErrValidation, ref.Type)
	}
	ref.FieldID = strings.TrimSpace(ref.FieldID)
	ref.PageID = strings.TrimSpace(ref.PageID)
	slot := ref.Slot()

	if slot.FieldID != "" {
		if f := s.findField(slot.FieldID, slot.PageID); f != nil {
			if f.Kind == FieldKindText {
				return fmt.Errorf("%w: field %q does not accept media", domain.ErrValidation, f.ID)
			}
			if f.Kind != "" && string(f.Kind) != string(ref.Type) {
				return fmt.Errorf("%w: field %q expects %s, got %s", domain.ErrValidation, f.ID, f.Kind, ref.Type)
			}
			m := ref
			f.Media = &m
			return nil
		}
	}

	if slot.Addressed() {
		for i := range s.Media {
			if s.Media[i].Slot() == slot {
				s.Media[i] = ref
				return nil
			}
		}
	}
	s.Media = append(s.Media, ref)
	return nil
}
