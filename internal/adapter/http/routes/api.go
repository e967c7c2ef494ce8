package routes

import (
	"invite_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathUploadURL = "/upload-url"
	PathUpload    = "/upload"
	PathTemplates = "/templates"
	PathProjects  = "/projects"
	PathPayments  = "/payments"
)

func addUploadRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.UploadHandler) {
	rg.POST(PathUploadURL, auth, h.CreateUploadURL)
	rg.POST(PathUpload, auth, h.Upload)
}

func addTemplateRoutes(rg *gin.RouterGroup, auth, admin gin.HandlerFunc, h *handlers.TemplateHandler) {
	templates := rg.Group(PathTemplates)
	{
		templates.GET("", h.List)
		templates.GET("/:id", h.Get)
		templates.POST("", auth, admin, h.Create)
	}
}

func addProjectRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.ProjectHandler, payments *handlers.PaymentHandler) {
	projects := rg.Group(PathProjects, auth)
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Get)
		projects.POST("/:id/media", h.SaveMedia)
		projects.POST("/:id/preview", h.RequestPreview)
		projects.POST("/:id/checkout", payments.Checkout)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		// Authenticated by the gateway signature, not a bearer token.
		payments.POST("/webhook", h.Webhook)
		payments.POST("/verify", auth, h.Verify)
		payments.GET("/:paymentId", auth, h.GetPayment)
	}
}
