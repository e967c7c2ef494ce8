package interfaces

import (
	"context"

	"invite_studio/internal/domain/entities"
)

type IRenderer interface {
	Render(ctx context.Context, projectID string, templateType entities.TemplateType) (entities.RenderResult, error)
}
