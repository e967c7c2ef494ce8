package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"invite_studio/internal/domain"
	"invite_studio/internal/domain/entities"
	mock_interfaces "invite_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validTemplate() entities.Template {
	return entities.Template{
		Name:    "Marigold",
		Culture: "Hindu",
		Country: "IN",
		Type:    entities.TemplateTypeCard,
		Price:   499,
		Structure: entities.TemplateStructure{Pages: []entities.Page{
			{ID: "cover", Fields: []entities.Field{
				{ID: "names", Kind: entities.FieldKindText},
				{ID: "photo", Kind: entities.FieldKindImage},
			}},
		}},
	}
}

func TestTemplateUseCase_Create(t *testing.T) {
	invalid := []struct {
		name   string
		mutate func(*entities.Template)
	}{
		{"missing name", func(tpl *entities.Template) { tpl.Name = " " }},
		{"unknown type", func(tpl *entities.Template) { tpl.Type = "poster" }},
		{"negative price", func(tpl *entities.Template) { tpl.Price = -1 }},
		{"nan price", func(tpl *entities.Template) { tpl.Price = math.NaN() }},
		{"bad currency", func(tpl *entities.Template) { tpl.Currency = "RUPEE" }},
		{"duplicate page", func(tpl *entities.Template) { tpl.Structure.Pages = append(tpl.Structure.Pages, entities.Page{ID: "cover"}) }},
		{"blank field id", func(tpl *entities.Template) { tpl.Structure.Pages[0].Fields[0].ID = "" }},
		{"unknown kind", func(tpl *entities.Template) { tpl.Structure.Pages[0].Fields[1].Kind = "hologram" }},
		{"duplicate field", func(tpl *entities.Template) { tpl.Structure.Pages[0].Fields[1].ID = "names" }},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewTemplateUseCase(nil, nil, nil, nil)
			tpl := validTemplate()
			tc.mutate(&tpl)
			_, err := uc.Create(context.Background(), tpl)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}

	t.Run("success normalizes and assigns id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		uc := NewTemplateUseCase(repo, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Template{})).DoAndReturn(
			func(_ context.Context, tpl entities.Template) (entities.Template, error) {
				if tpl.ID == "" || tpl.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamps, got %+v", tpl)
				}
				if tpl.Currency != entities.DefaultCurrency || tpl.Type != entities.TemplateTypeVideo {
					t.Fatalf("unexpected normalization: %+v", tpl)
				}
				return tpl, nil
			},
		)

		tpl := validTemplate()
		tpl.Type = " Video "
		got, err := uc.Create(context.Background(), tpl)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Marigold" {
			t.Fatalf("unexpected template: %+v", got)
		}
	})

	t.Run("confirms uploaded media in the tree", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		tracker := mock_interfaces.NewMockIUploadTracker(ctrl)
		uc := NewTemplateUseCase(repo, storage, tracker, nil)

		tpl := validTemplate()
		tpl.Structure.Pages[0].Fields[1].Media = &entities.MediaRef{Type: entities.MediaTypeImage, URL: "https://cdn.example/upload/images/bg.png"}
		tpl.Structure.Media = []entities.MediaRef{{Type: entities.MediaTypeAudio, URL: "https://elsewhere.example/song.mp3"}}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tpl entities.Template) (entities.Template, error) { return tpl, nil },
		)
		storage.EXPECT().KeyFromURL("https://cdn.example/upload/images/bg.png").Return("upload/images/bg.png", true)
		storage.EXPECT().KeyFromURL("https://elsewhere.example/song.mp3").Return("", false)
		tracker.EXPECT().Confirm(gomock.Any(), "upload/images/bg.png").Return(errors.New("redis down"))

		if _, err := uc.Create(context.Background(), tpl); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		uc := NewTemplateUseCase(repo, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Template{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), validTemplate()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestTemplateUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewTemplateUseCase(nil, nil, nil, nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		uc := NewTemplateUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Template{}, nil)

		if _, err := uc.GetByID(context.Background(), " t-1 "); !errors.Is(err, domain.ErrTemplateNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		uc := NewTemplateUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Template{ID: "t-1"}, nil)

		got, err := uc.GetByID(context.Background(), "t-1")
		if err != nil || got.ID != "t-1" {
			t.Fatalf("expected t-1, got %+v, %v", got, err)
		}
	})
}

func TestTemplateUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITemplateRepository(ctrl)
	uc := NewTemplateUseCase(repo, nil, nil, nil)

	repo.EXPECT().List(gomock.Any(), entities.TemplateFilter{Culture: "Hindu", Type: entities.TemplateTypeCard}).
		Return([]entities.Template{{ID: "t-1"}}, nil)

	got, err := uc.List(context.Background(), entities.TemplateFilter{Culture: "Hindu", Type: " CARD "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 template, got %d", len(got))
	}
}
