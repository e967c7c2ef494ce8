package render

import (
	"context"
	"testing"

	"invite_studio/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderURLs(t *testing.T) {
	card := PlaceholderURLs(entities.TemplateTypeCard)
	assert.Equal(t, PlaceholderBaseURL+"card_preview.png", card.PreviewURL)
	assert.Equal(t, PlaceholderBaseURL+"card_final.png", card.FinalURL)

	for _, typ := range []entities.TemplateType{entities.TemplateTypeVideo, "", "reel"} {
		out := PlaceholderURLs(typ)
		assert.Equal(t, PlaceholderBaseURL+"video_preview.mp4", out.PreviewURL, typ)
		assert.Equal(t, PlaceholderBaseURL+"video_final.mp4", out.FinalURL, typ)
	}
}

func TestStubRenderer(t *testing.T) {
	r := NewStubRenderer(nil)

	out, err := r.Render(context.Background(), "p1", entities.TemplateTypeCard)
	require.NoError(t, err)
	assert.Equal(t, PlaceholderURLs(entities.TemplateTypeCard), out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Render(ctx, "p1", entities.TemplateTypeCard)
	assert.ErrorIs(t, err, context.Canceled)
}
