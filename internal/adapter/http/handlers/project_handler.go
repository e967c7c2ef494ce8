package handlers

import (
	"net/http"

	request "invite_studio/internal/adapter/http/dto/request"
	response "invite_studio/internal/adapter/http/dto/response"
	"invite_studio/internal/adapter/http/middleware"
	"invite_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProjectHandler exposes a user's customizations.
type ProjectHandler struct {
	usecase usecase.ICustomizationUseCase
	log     *zap.Logger
}

func NewProjectHandler(uc usecase.ICustomizationUseCase, log *zap.Logger) *ProjectHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProjectHandler{usecase: uc, log: log}
}

// Create godoc
// @Summary  Start a project from a template
// @Tags     projects
// @Accept   json
// @Produce  json
// @Param    body  body      request.ProjectCreateRequest  true  "Template to customize"
// @Success  201   {object}  response.ProjectResponse
// @Failure  404   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /api/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var payload request.ProjectCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	p, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), payload.TemplateID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomization(p))
}

// List godoc
// @Summary  List my projects
// @Tags     projects
// @Produce  json
// @Success  200  {array}  response.ProjectResponse
// @Security Bearer
// @Router   /api/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.usecase.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		requestLog(c, h.log).Error("[customization][handler] list failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomizations(projects))
}

// Get godoc
// @Summary  Get one of my projects
// @Tags     projects
// @Produce  json
// @Param    id   path      string  true  "Project id"
// @Success  200  {object}  response.ProjectResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /api/projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.usecase.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomization(p))
}

// SaveMedia godoc
// @Summary  Attach uploaded media to a project slot
// @Tags     projects
// @Accept   json
// @Produce  json
// @Param    id    path      string                    true  "Project id"
// @Param    body  body      request.SaveMediaRequest  true  "Media reference"
// @Success  200   {object}  response.ProjectResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /api/projects/{id}/media [post]
func (h *ProjectHandler) SaveMedia(c *gin.Context) {
	var payload request.SaveMediaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	id := c.Param("id")
	p, err := h.usecase.SaveMedia(c.Request.Context(), middleware.UserID(c), id, payload.ToMediaRef())
	if err != nil {
		requestLog(c, h.log).Warn("[customization][handler] save media failed", zap.String("customization_id", id), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomization(p))
}

// RequestPreview godoc
// @Summary  Render the preview and mark the project preview_requested
// @Tags     projects
// @Produce  json
// @Param    id   path      string  true  "Project id"
// @Success  200  {object}  response.ProjectResponse
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /api/projects/{id}/preview [post]
func (h *ProjectHandler) RequestPreview(c *gin.Context) {
	id := c.Param("id")
	p, err := h.usecase.RequestPreview(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		requestLog(c, h.log).Warn("[customization][handler] preview failed", zap.String("customization_id", id), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomization(p))
}
