package uploader

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	server *httptest.Server

	credentialStatus int
	credentialError  string
	putStatus        int
	mediaStatus      int

	mu        sync.Mutex
	requests  []string
	putBody   string
	putType   string
	mediaBody map[string]string
	auth      string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	f := &fakeAPI{credentialStatus: http.StatusOK, putStatus: http.StatusOK, mediaStatus: http.StatusOK}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/upload-url", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		f.mu.Lock()
		f.auth = r.Header.Get("Authorization")
		f.mu.Unlock()
		if f.credentialStatus != http.StatusOK {
			w.WriteHeader(f.credentialStatus)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": f.credentialError, "code": "X"})
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		key := body["folder"] + "/abc" + body["filename"][strings.LastIndex(body["filename"], "."):]
		_ = json.NewEncoder(w).Encode(map[string]string{
			"uploadUrl": f.server.URL + "/bucket/" + key,
			"fileUrl":   "https://cdn.example/" + key,
			"key":       key,
		})
	})
	mux.HandleFunc("/bucket/", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		raw, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.putBody = string(raw)
		f.putType = r.Header.Get("Content-Type")
		f.mu.Unlock()
		w.WriteHeader(f.putStatus)
	})
	mux.HandleFunc("/api/projects/", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.mediaBody = body
		f.mu.Unlock()
		w.WriteHeader(f.mediaStatus)
		if f.mediaStatus != http.StatusOK {
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Project not found"})
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
}

func (f *fakeAPI) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func songRequest() Request {
	return Request{
		Token:       "tok",
		Folder:      "upload/music",
		Filename:    "song.mp3",
		ContentType: "audio/mpeg",
		Body:        strings.NewReader("ID3"),
		Size:        3,
	}
}

func TestUpload_TokenCheckedBeforeAnyRequest(t *testing.T) {
	api := newFakeAPI(t)
	var states []State
	req := songRequest()
	req.Token = "  "
	req.OnStateChange = func(_, to State) { states = append(states, to) }

	_, err := NewClient(api.server.URL).Upload(context.Background(), req)

	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, api.seen())
	assert.Equal(t, []State{StateFailed}, states)
}

func TestUpload_WithoutProject(t *testing.T) {
	api := newFakeAPI(t)
	var states []State
	req := songRequest()
	req.OnStateChange = func(_, to State) { states = append(states, to) }

	res, err := NewClient(api.server.URL+"/").Upload(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/upload/music/abc.mp3", res.FileURL)
	assert.Equal(t, "upload/music/abc.mp3", res.Key)
	assert.Equal(t, "ID3", api.putBody)
	assert.Equal(t, "audio/mpeg", api.putType)
	assert.Equal(t, "Bearer tok", api.auth)
	assert.Equal(t, []string{"POST /api/upload-url", "PUT /bucket/upload/music/abc.mp3"}, api.seen())
	assert.Equal(t, []State{StateRequestingCredential, StateUploading, StateDone}, states)
}

func TestUpload_AttachesToProject(t *testing.T) {
	api := newFakeAPI(t)
	var states []State
	req := songRequest()
	req.Attach = &Media{ProjectID: "c-1", Type: "audio", FieldID: "music"}
	req.OnStateChange = func(_, to State) { states = append(states, to) }

	res, err := NewClient(api.server.URL).Upload(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "POST /api/projects/c-1/media", api.seen()[2])
	assert.Equal(t, res.FileURL, api.mediaBody["url"])
	assert.Equal(t, "audio", api.mediaBody["type"])
	assert.Equal(t, "music", api.mediaBody["fieldId"])
	assert.Equal(t, []State{StateRequestingCredential, StateUploading, StateConfirming, StateDone}, states)
}

func TestUpload_CredentialFailureCarriesServerReason(t *testing.T) {
	api := newFakeAPI(t)
	api.credentialStatus = http.StatusBadRequest
	api.credentialError = "Folder is not allowed"

	_, err := NewClient(api.server.URL).Upload(context.Background(), songRequest())

	require.ErrorIs(t, err, ErrUploadURLCreationFailed)
	var step *StepError
	require.True(t, errors.As(err, &step))
	assert.Equal(t, http.StatusBadRequest, step.StatusCode)
	assert.Equal(t, "Folder is not allowed", step.Reason)
	assert.Equal(t, "Folder is not allowed", UserMessage(err))
	assert.Len(t, api.seen(), 1, "no retry and no storage call")
}

func TestUpload_ServerRejectsToken(t *testing.T) {
	api := newFakeAPI(t)
	api.credentialStatus = http.StatusUnauthorized
	api.credentialError = "Sign in again"

	_, err := NewClient(api.server.URL).Upload(context.Background(), songRequest())

	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUpload_StorageFailureCarriesStatusText(t *testing.T) {
	api := newFakeAPI(t)
	api.putStatus = http.StatusForbidden
	var last State
	req := songRequest()
	req.Attach = &Media{ProjectID: "c-1", Type: "audio"}
	req.OnStateChange = func(_, to State) { last = to }

	_, err := NewClient(api.server.URL).Upload(context.Background(), req)

	require.ErrorIs(t, err, ErrStorageUploadFailed)
	assert.Contains(t, err.Error(), "Forbidden")
	assert.Equal(t, StateFailed, last)
	assert.Equal(t, "Upload failed, please retry", UserMessage(err))
	assert.Len(t, api.seen(), 2, "media is not saved after a failed transfer")
}

func TestUpload_MediaSaveFailureKeepsFileURL(t *testing.T) {
	api := newFakeAPI(t)
	api.mediaStatus = http.StatusNotFound
	req := songRequest()
	req.Attach = &Media{ProjectID: "missing", Type: "audio"}

	res, err := NewClient(api.server.URL).Upload(context.Background(), req)

	require.ErrorIs(t, err, ErrMediaSaveFailed)
	assert.Contains(t, err.Error(), "Project not found")
	assert.NotEmpty(t, res.FileURL)
	assert.True(t, IsRetryable(err))
}

func TestUpload_ConcurrentUploadsAreIndependent(t *testing.T) {
	var puts atomic.Int32
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"uploadUrl": server.URL + "/bucket/" + body["filename"],
				"fileUrl":   "https://cdn.example/" + body["filename"],
			})
		case http.MethodPut:
			puts.Add(1)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := songRequest()
			req.Filename = string(rune('a'+i)) + ".mp3"
			res, err := client.Upload(context.Background(), req)
			if err == nil {
				results[i] = res.FileURL
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(8), puts.Load())
	for i, got := range results {
		assert.Equal(t, "https://cdn.example/"+string(rune('a'+i))+".mp3", got)
	}
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, "Please sign in to upload files", UserMessage(ErrUnauthenticated))
	assert.Equal(t, "Could not prepare the upload, please retry", UserMessage(&StepError{Kind: ErrUploadURLCreationFailed}))
	assert.Equal(t, "Something went wrong, please retry", UserMessage(errors.New("boom")))
}

func TestStateTransitions(t *testing.T) {
	assert.True(t, canTransition(StateIdle, StateFailed))
	assert.True(t, canTransition(StateConfirming, StateDone))
	assert.False(t, canTransition(StateDone, StateFailed))
	assert.False(t, canTransition(StateIdle, StateUploading))
	assert.True(t, StateFailed.Terminal())
	assert.False(t, StateUploading.Terminal())
}
