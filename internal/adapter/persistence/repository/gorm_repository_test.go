package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"invite_studio/internal/domain/entities"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, AutoMigrate(db))
	return db
}

func sampleStructure() entities.TemplateStructure {
	return entities.TemplateStructure{
		Pages: []entities.Page{{
			ID:    "p1",
			Title: "Cover",
			Fields: []entities.Field{
				{ID: "names", Kind: entities.FieldKindText, Label: "Couple", Value: "A & B"},
				{ID: "photo", Kind: entities.FieldKindImage, Label: "Photo"},
			},
		}},
	}
}

func TestTemplateGormRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTemplateGormRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.Create(ctx, entities.Template{ID: "t1", Name: "Kerala Card", Culture: "Malayali", Country: "IN", Type: entities.TemplateTypeCard, Price: 499, Currency: "INR", Structure: sampleStructure(), CreatedAt: now})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Template{ID: "t2", Name: "Punjabi Reel", Culture: "Punjabi", Country: "IN", Type: entities.TemplateTypeVideo, Price: 1499, Currency: "INR", CreatedAt: now.Add(time.Second)})
	require.NoError(t, err)

	t.Run("get keeps tree", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, "Kerala Card", got.Name)
		assert.Equal(t, sampleStructure(), got.Structure)
	})

	t.Run("get missing returns zero value", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("list with filters", func(t *testing.T) {
		all, err := repo.List(ctx, entities.TemplateFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "t2", all[0].ID)

		byCulture, err := repo.List(ctx, entities.TemplateFilter{Culture: "malayali"})
		require.NoError(t, err)
		require.Len(t, byCulture, 1)
		assert.Equal(t, "t1", byCulture[0].ID)

		byType, err := repo.List(ctx, entities.TemplateFilter{Type: entities.TemplateTypeVideo})
		require.NoError(t, err)
		require.Len(t, byType, 1)
		assert.Equal(t, "t2", byType[0].ID)
	})

	t.Run("media reference lookup", func(t *testing.T) {
		tree := sampleStructure()
		require.NoError(t, tree.SetMedia(entities.MediaRef{Type: entities.MediaTypeImage, URL: "https://cdn/upload/images/bg.png?v=1&x=2", FieldID: "photo"}))
		_, err := repo.Create(ctx, entities.Template{ID: "t3", Name: "Bengali Card", Type: entities.TemplateTypeCard, Currency: "INR", Structure: tree, CreatedAt: now})
		require.NoError(t, err)

		ref, err := repo.IsMediaReferenced(ctx, "https://cdn/upload/images/bg.png?v=1&x=2")
		require.NoError(t, err)
		assert.True(t, ref)

		ref, err = repo.IsMediaReferenced(ctx, "https://cdn/upload/images/other.png")
		require.NoError(t, err)
		assert.False(t, ref)

		ref, err = repo.IsMediaReferenced(ctx, " ")
		require.NoError(t, err)
		assert.False(t, ref)
	})
}

func TestCustomizationGormRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomizationGormRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, entities.Customization{
		ID:         "c1",
		UserID:     "user-1",
		TemplateID: "t1",
		Structure:  sampleStructure(),
		Amount:     499,
		Currency:   "INR",
		Status:     entities.CustomizationStatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)

	t.Run("update structure honours version", func(t *testing.T) {
		c, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)
		require.NoError(t, c.Structure.SetMedia(entities.MediaRef{Type: entities.MediaTypeImage, URL: "https://cdn/x.png", FieldID: "photo", PageID: "p1"}))

		ok, err := repo.UpdateStructure(ctx, c, c.Version)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.UpdateStructure(ctx, c, c.Version)
		require.NoError(t, err)
		assert.False(t, ok, "stale version must not overwrite")

		reloaded, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, c.Version+1, reloaded.Version)
		ref, found := reloaded.Structure.Lookup(entities.SlotKey{FieldID: "photo", PageID: "p1"})
		assert.True(t, found)
		assert.Equal(t, "https://cdn/x.png", ref.URL)
	})

	t.Run("transition is compare and set", func(t *testing.T) {
		ok, err := repo.TransitionStatus(ctx, "c1", entities.CustomizationStatusDraft, entities.CustomizationStatusPreviewRequested)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.TransitionStatus(ctx, "c1", entities.CustomizationStatusDraft, entities.CustomizationStatusPreviewRequested)
		require.NoError(t, err)
		assert.False(t, ok)

		c, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, entities.CustomizationStatusPreviewRequested, c.Status)
	})

	t.Run("render outputs", func(t *testing.T) {
		require.NoError(t, repo.SetRenderOutputs(ctx, "c1", "https://r/p.png", "https://r/f.png"))
		c, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "https://r/p.png", c.PreviewURL)
		assert.Equal(t, "https://r/f.png", c.FinalURL)
	})

	t.Run("list by user", func(t *testing.T) {
		_, err := repo.Create(ctx, entities.Customization{ID: "c2", UserID: "user-2", TemplateID: "t1", Currency: "INR", Status: entities.CustomizationStatusDraft})
		require.NoError(t, err)

		mine, err := repo.ListByUserID(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, "c1", mine[0].ID)
	})

	t.Run("media reference lookup", func(t *testing.T) {
		c, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)
		require.NoError(t, c.Structure.SetMedia(entities.MediaRef{Type: entities.MediaTypeAudio, URL: "https://cdn/a.mp3?v=1&x=2"}))
		ok, err := repo.UpdateStructure(ctx, c, c.Version)
		require.NoError(t, err)
		require.True(t, ok)

		ref, err := repo.IsMediaReferenced(ctx, "https://cdn/x.png")
		require.NoError(t, err)
		assert.True(t, ref)

		ref, err = repo.IsMediaReferenced(ctx, "https://cdn/a.mp3?v=1&x=2")
		require.NoError(t, err)
		assert.True(t, ref)

		ref, err = repo.IsMediaReferenced(ctx, "https://cdn/orphan.png")
		require.NoError(t, err)
		assert.False(t, ref)
	})
}
