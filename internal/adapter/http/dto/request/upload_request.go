package request

// UploadURLRequest asks for a presigned write credential.
type UploadURLRequest struct {
	Folder      string `json:"folder" binding:"required"`
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}
