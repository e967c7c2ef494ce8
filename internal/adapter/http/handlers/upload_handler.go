package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	request "invite_studio/internal/adapter/http/dto/request"
	response "invite_studio/internal/adapter/http/dto/response"
	"invite_studio/internal/adapter/http/middleware"
	"invite_studio/internal/usecase"
	"invite_studio/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxUploadRequestBytes leaves room for the multipart envelope around the file.
const maxUploadRequestBytes = usecase.MaxServerUploadBytes + 1<<20

var errFileTooLarge = pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "The file is too large, use a direct upload", http.StatusRequestEntityTooLarge)

// UploadHandler issues direct-upload credentials and accepts the multipart
// fallback upload.
type UploadHandler struct {
	usecase usecase.IUploadUseCase
	log     *zap.Logger
}

func NewUploadHandler(uc usecase.IUploadUseCase, log *zap.Logger) *UploadHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &UploadHandler{usecase: uc, log: log}
}

// CreateUploadURL godoc
// @Summary      Issue a presigned upload URL
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Param        body  body      request.UploadURLRequest  true  "Target folder and file"
// @Success      200   {object}  response.UploadURLResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /api/upload-url [post]
func (h *UploadHandler) CreateUploadURL(c *gin.Context) {
	var payload request.UploadURLRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	cred, err := h.usecase.CreateUploadURL(c.Request.Context(), middleware.UserID(c), payload.Folder, payload.Filename, payload.ContentType)
	if err != nil {
		requestLog(c, h.log).Warn("[upload][handler] create upload url failed", zap.String("folder", payload.Folder), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUploadCredential(cred))
}

// Upload godoc
// @Summary      Upload a file through the server
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file    formData  file    true  "File"
// @Param        folder  formData  string  true  "Target folder"
// @Success      201     {object}  response.UploadResponse
// @Failure      400     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadRequestBytes)
	file, err := c.FormFile("file")
	if err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	if file.Size > usecase.MaxServerUploadBytes {
		writeAppError(c, errFileTooLarge)
		return
	}

	data, err := readFormFile(file)
	if err != nil {
		requestLog(c, h.log).Warn("[upload][handler] read multipart file failed", zap.Error(err))
		writeAppError(c, errInvalidPayload)
		return
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	obj, err := h.usecase.UploadFile(c.Request.Context(), middleware.UserID(c), c.PostForm("folder"), file.Filename, contentType, data)
	if err != nil {
		requestLog(c, h.log).Warn("[upload][handler] server upload failed", zap.String("filename", file.Filename), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromStoredObject(obj))
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, usecase.MaxServerUploadBytes+1))
}
