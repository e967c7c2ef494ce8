package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"invite_studio/internal/adapter/http/handlers"
	"invite_studio/internal/adapter/http/handlers/mocks"
	"invite_studio/internal/adapter/http/middleware"
	"invite_studio/internal/domain/entities"
	"invite_studio/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "routes-secret"

type routerMocks struct {
	upload   *mocks.MockIUploadUseCase
	template *mocks.MockITemplateUseCase
	project  *mocks.MockICustomizationUseCase
	payment  *mocks.MockIPaymentOrderUseCase
}

func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := routerMocks{
		upload:   mocks.NewMockIUploadUseCase(ctrl),
		template: mocks.NewMockITemplateUseCase(ctrl),
		project:  mocks.NewMockICustomizationUseCase(ctrl),
		payment:  mocks.NewMockIPaymentOrderUseCase(ctrl),
	}
	registry := prometheus.NewRegistry()
	engine := NewRouter(Handlers{
		Upload:   handlers.NewUploadHandler(m.upload, nil),
		Template: handlers.NewTemplateHandler(m.template, nil),
		Project:  handlers.NewProjectHandler(m.project, nil),
		Payment:  handlers.NewPaymentHandler(m.payment, "", nil),
	}, Options{
		JWTSecret: testSecret,
		Metrics:   metrics.New(registry),
		Gatherer:  registry,
	})
	return WithCORS(engine, []string{"https://app.example"}), m
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	t.Run("ping", func(t *testing.T) {
		h, _ := newTestRouter(t)
		w := serve(h, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics exposes request counter", func(t *testing.T) {
		h, _ := newTestRouter(t)
		serve(h, httptest.NewRequest(http.MethodGet, "/ping", nil))
		w := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "invite_studio_http_requests_total")
	})

	t.Run("templates are public", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.template.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		w := serve(h, httptest.NewRequest(http.MethodGet, "/api/templates", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("projects require a token", func(t *testing.T) {
		h, _ := newTestRouter(t)
		w := serve(h, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("upload url requires a token before the usecase runs", func(t *testing.T) {
		h, _ := newTestRouter(t)
		w := serve(h, httptest.NewRequest(http.MethodPost, "/api/upload-url", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token subject reaches the usecase", func(t *testing.T) {
		h, m := newTestRouter(t)
		token, err := middleware.SignToken(testSecret, "user-7", time.Hour)
		require.NoError(t, err)
		m.project.EXPECT().List(gomock.Any(), "user-7").Return([]entities.Customization{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := serve(h, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("template creation needs the admin claim", func(t *testing.T) {
		h, _ := newTestRouter(t)
		token, err := middleware.SignToken(testSecret, "user-7", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/templates", strings.NewReader(`{"name":"Mehendi","type":"card"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w := serve(h, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("admin creates a template", func(t *testing.T) {
		h, m := newTestRouter(t)
		token, err := middleware.SignAdminToken(testSecret, "admin-1", time.Hour)
		require.NoError(t, err)
		m.template.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Template{ID: "t-1", Name: "Mehendi", Type: entities.TemplateTypeCard}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/templates", strings.NewReader(`{"name":"Mehendi","type":"card"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w := serve(h, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("webhook skips bearer auth", func(t *testing.T) {
		h, _ := newTestRouter(t)
		w := serve(h, httptest.NewRequest(http.MethodPost, "/api/payments/webhook", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cors preflight", func(t *testing.T) {
		h, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodOptions, "/api/upload-url", nil)
		req.Header.Set("Origin", "https://app.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
		w := serve(h, req)
		assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
