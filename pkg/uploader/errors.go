package uploader

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated         = errors.New("unauthenticated")
	ErrUploadURLCreationFailed = errors.New("upload url creation failed")
	ErrStorageUploadFailed     = errors.New("storage upload failed")
	ErrMediaSaveFailed         = errors.New("media save failed")
)

// StepError carries the reason reported by the server or the storage
// transport for a failed step. It unwraps to one of the sentinel errors.
type StepError struct {
	Kind       error
	StatusCode int
	Reason     string
}

func (e *StepError) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *StepError) Unwrap() error {
	return e.Kind
}

// UserMessage maps an upload error to text that can be shown as is.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return "Please sign in to upload files"
	case errors.Is(err, ErrUploadURLCreationFailed):
		var step *StepError
		if errors.As(err, &step) && step.Reason != "" {
			return step.Reason
		}
		return "Could not prepare the upload, please retry"
	case errors.Is(err, ErrStorageUploadFailed):
		return "Upload failed, please retry"
	case errors.Is(err, ErrMediaSaveFailed):
		return "File uploaded but could not be added to your project, please retry"
	default:
		return "Something went wrong, please retry"
	}
}
