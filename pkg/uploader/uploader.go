// Package uploader drives the browser-side upload sequence from Go: request a
// presigned credential, PUT the bytes straight to object storage, then attach
// the resulting URL to a project.
package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// Client talks to the invite studio API. It holds no per-upload state and is
// safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Media targets a slot inside a project. Without FieldID and PageID the URL is
// appended to the project's top-level media list.
type Media struct {
	ProjectID string
	Type      string
	FieldID   string
	PageID    string
}

// Request describes one upload.
type Request struct {
	Token       string
	Folder      string
	Filename    string
	ContentType string
	Body        io.Reader
	// Size is sent as Content-Length when positive.
	Size int64

	// Attach is optional.
	Attach *Media

	OnStateChange func(from, to State)
}

type Result struct {
	FileURL string
	Key     string
}

type credentialResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
}

type errorBody struct {
	Error string `json:"error"`
}

type upload struct {
	state State
	hook  func(from, to State)
}

func (u *upload) move(to State) {
	if !canTransition(u.state, to) {
		return
	}
	from := u.state
	u.state = to
	if u.hook != nil {
		u.hook(from, to)
	}
}

func (u *upload) fail(err error) error {
	u.move(StateFailed)
	return err
}

// Upload runs the full sequence. Nothing is retried; a failed transfer must
// start over because each credential targets a single key.
func (c *Client) Upload(ctx context.Context, req Request) (Result, error) {
	u := &upload{state: StateIdle, hook: req.OnStateChange}

	token := strings.TrimSpace(req.Token)
	if token == "" {
		return Result{}, u.fail(ErrUnauthenticated)
	}

	u.move(StateRequestingCredential)
	cred, err := c.requestCredential(ctx, token, req)
	if err != nil {
		return Result{}, u.fail(err)
	}

	u.move(StateUploading)
	if err := c.put(ctx, cred.UploadURL, req); err != nil {
		return Result{}, u.fail(err)
	}
	res := Result{FileURL: cred.FileURL, Key: cred.Key}

	if req.Attach == nil || strings.TrimSpace(req.Attach.ProjectID) == "" {
		u.move(StateDone)
		return res, nil
	}

	u.move(StateConfirming)
	if err := c.saveMedia(ctx, token, *req.Attach, cred.FileURL); err != nil {
		return res, u.fail(err)
	}
	u.move(StateDone)
	return res, nil
}

func (c *Client) requestCredential(ctx context.Context, token string, req Request) (credentialResponse, error) {
	payload, err := json.Marshal(map[string]string{
		"folder":      req.Folder,
		"filename":    req.Filename,
		"contentType": req.ContentType,
	})
	if err != nil {
		return credentialResponse{}, &StepError{Kind: ErrUploadURLCreationFailed, Reason: err.Error()}
	}

	resp, err := c.postJSON(ctx, token, c.baseURL+"/api/upload-url", payload)
	if err != nil {
		return credentialResponse{}, &StepError{Kind: ErrUploadURLCreationFailed, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return credentialResponse{}, fmt.Errorf("%w: %s", ErrUnauthenticated, serverReason(resp))
	}
	if !success(resp.StatusCode) {
		return credentialResponse{}, &StepError{Kind: ErrUploadURLCreationFailed, StatusCode: resp.StatusCode, Reason: serverReason(resp)}
	}

	var cred credentialResponse
	if err := json.NewDecoder(resp.Body).Decode(&cred); err != nil {
		return credentialResponse{}, &StepError{Kind: ErrUploadURLCreationFailed, StatusCode: resp.StatusCode, Reason: "invalid response body"}
	}
	if cred.UploadURL == "" || cred.FileURL == "" {
		return credentialResponse{}, &StepError{Kind: ErrUploadURLCreationFailed, StatusCode: resp.StatusCode, Reason: "response missing upload url"}
	}
	return cred, nil
}

func (c *Client) put(ctx context.Context, uploadURL string, req Request) error {
	body := req.Body
	if body == nil {
		body = http.NoBody
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, body)
	if err != nil {
		return &StepError{Kind: ErrStorageUploadFailed, Reason: err.Error()}
	}
	httpReq.Header.Set("Content-Type", req.ContentType)
	if req.Size > 0 {
		httpReq.ContentLength = req.Size
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &StepError{Kind: ErrStorageUploadFailed, Reason: err.Error()}
	}
	defer drain(resp.Body)

	if !success(resp.StatusCode) {
		return &StepError{Kind: ErrStorageUploadFailed, StatusCode: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
	}
	return nil
}

func (c *Client) saveMedia(ctx context.Context, token string, m Media, fileURL string) error {
	payload, err := json.Marshal(map[string]string{
		"type":    m.Type,
		"url":     fileURL,
		"fieldId": m.FieldID,
		"pageId":  m.PageID,
	})
	if err != nil {
		return &StepError{Kind: ErrMediaSaveFailed, Reason: err.Error()}
	}

	endpoint := c.baseURL + "/api/projects/" + url.PathEscape(strings.TrimSpace(m.ProjectID)) + "/media"
	resp, err := c.postJSON(ctx, token, endpoint, payload)
	if err != nil {
		return &StepError{Kind: ErrMediaSaveFailed, Reason: err.Error()}
	}
	defer drain(resp.Body)

	if !success(resp.StatusCode) {
		return &StepError{Kind: ErrMediaSaveFailed, StatusCode: resp.StatusCode, Reason: serverReason(resp)}
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, token, endpoint string, payload []byte) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	return c.httpClient.Do(httpReq)
}

func success(status int) bool {
	return status >= 200 && status < 300
}

// serverReason extracts the {error} message, falling back to the status text.
func serverReason(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil {
		var body errorBody
		if json.Unmarshal(raw, &body) == nil && strings.TrimSpace(body.Error) != "" {
			return body.Error
		}
	}
	return http.StatusText(resp.StatusCode)
}

func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 64<<10))
	_ = body.Close()
}

// IsRetryable reports whether restarting the whole sequence may succeed.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStorageUploadFailed) || errors.Is(err, ErrUploadURLCreationFailed) || errors.Is(err, ErrMediaSaveFailed)
}
