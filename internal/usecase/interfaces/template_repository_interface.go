package interfaces

import (
	"context"

	"invite_studio/internal/domain/entities"
)

// ITemplateRepository abstracts persistence for the template catalogue.
type ITemplateRepository interface {
	Create(ctx context.Context, t entities.Template) (entities.Template, error)
	GetByID(ctx context.Context, id string) (entities.Template, error)
	List(ctx context.Context, filter entities.TemplateFilter) ([]entities.Template, error)
	IsMediaReferenced(ctx context.Context, url string) (bool, error)
}
