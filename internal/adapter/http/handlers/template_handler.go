package handlers

import (
	"net/http"

	request "invite_studio/internal/adapter/http/dto/request"
	response "invite_studio/internal/adapter/http/dto/response"
	"invite_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TemplateHandler struct {
	usecase usecase.ITemplateUseCase
	log     *zap.Logger
}

func NewTemplateHandler(uc usecase.ITemplateUseCase, log *zap.Logger) *TemplateHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &TemplateHandler{usecase: uc, log: log}
}

// List godoc
// @Summary  List templates
// @Tags     templates
// @Produce  json
// @Param    culture  query  string  false  "Culture filter"
// @Param    type     query  string  false  "card or video"
// @Success  200  {array}  response.TemplateResponse
// @Router   /api/templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	var q request.TemplateListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	templates, err := h.usecase.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		requestLog(c, h.log).Error("[template][handler] list failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTemplates(templates))
}

// Get godoc
// @Summary  Get a template
// @Tags     templates
// @Produce  json
// @Param    id   path      string  true  "Template id"
// @Success  200  {object}  response.TemplateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /api/templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(t))
}

// Create godoc
// @Summary  Create a template (admin only)
// @Tags     templates
// @Accept   json
// @Produce  json
// @Param    body  body      request.TemplateCreateRequest  true  "Template"
// @Success  201   {object}  response.TemplateResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  403   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /api/templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	var payload request.TemplateCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	t, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		requestLog(c, h.log).Warn("[template][handler] create failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTemplate(t))
}
