package render

import (
	"context"
	"strings"

	"invite_studio/internal/domain/entities"

	"go.uber.org/zap"
)

// PlaceholderBaseURL hosts the static sample assets returned until a real
// rendering pipeline exists.
const PlaceholderBaseURL = "https://cdn.invitestudio.app/renders/"

// PlaceholderURLs returns the fixed preview/final pair for a template type.
// Anything that is not a card is treated as a video.
func PlaceholderURLs(templateType entities.TemplateType) entities.RenderResult {
	if entities.TemplateType(strings.ToLower(strings.TrimSpace(string(templateType)))) == entities.TemplateTypeCard {
		return entities.RenderResult{
			PreviewURL: PlaceholderBaseURL + "card_preview.png",
			FinalURL:   PlaceholderBaseURL + "card_final.png",
		}
	}
	return entities.RenderResult{
		PreviewURL: PlaceholderBaseURL + "video_preview.mp4",
		FinalURL:   PlaceholderBaseURL + "video_final.mp4",
	}
}

// StubRenderer answers every render request with placeholder assets.
type StubRenderer struct {
	log *zap.Logger
}

func NewStubRenderer(log *zap.Logger) *StubRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &StubRenderer{log: log}
}

func (r *StubRenderer) Render(ctx context.Context, projectID string, templateType entities.TemplateType) (entities.RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return entities.RenderResult{}, err
	}
	out := PlaceholderURLs(templateType)
	r.log.Info("[render][stub] placeholder render", zap.String("project_id", projectID), zap.String("template_type", string(templateType)))
	return out, nil
}
