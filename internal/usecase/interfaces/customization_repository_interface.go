package interfaces

import (
	"context"

	"invite_studio/internal/domain/entities"
)

// ICustomizationRepository abstracts relational persistence for Customization.
//
// UpdateStructure writes the tree only when the stored version still equals
// expectedVersion, bumping it by one; TransitionStatus is a compare-and-set on
// the status column. Both report false when the guard did not match.
type ICustomizationRepository interface {
	Create(ctx context.Context, c entities.Customization) (entities.Customization, error)
	GetByID(ctx context.Context, id string) (entities.Customization, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Customization, error)
	UpdateStructure(ctx context.Context, c entities.Customization, expectedVersion int64) (bool, error)
	TransitionStatus(ctx context.Context, id string, from, to entities.CustomizationStatus) (bool, error)
	SetRenderOutputs(ctx context.Context, id, previewURL, finalURL string) error
	IsMediaReferenced(ctx context.Context, url string) (bool, error)
}
