package storage

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"invite_studio/internal/domain"
	"invite_studio/internal/domain/entities"
	"invite_studio/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

const (
	// UploadCredentialTTL bounds a leaked credential to one object for five minutes.
	UploadCredentialTTL = 5 * time.Minute

	keyEntropyBytes = 16
)

var extPattern = regexp.MustCompile(`^\.[A-Za-z0-9]{1,10}$`)

type presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Gateway issues scoped presigned PUT credentials and performs server-side
// writes against one bucket.
type S3Gateway struct {
	bucket        string
	publicBaseURL string
	allowed       map[string]struct{}

	presign presigner
	objects objectAPI

	random io.Reader
	now    func() time.Time
	log    *zap.Logger
}

// NewS3Gateway wraps client. A nil client yields a gateway whose operations
// fail with domain.ErrConfiguration.
func NewS3Gateway(client *s3.Client, cfg config.StorageConfig, log *zap.Logger) *S3Gateway {
	if client == nil {
		return newGateway(nil, nil, cfg, log)
	}
	return newGateway(s3.NewPresignClient(client), client, cfg, log)
}

func newGateway(p presigner, o objectAPI, cfg config.StorageConfig, log *zap.Logger) *S3Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	allowed := make(map[string]struct{}, len(cfg.AllowedFolders))
	for _, f := range cfg.AllowedFolders {
		if n, err := NormalizeFolder(f); err == nil {
			allowed[n] = struct{}{}
		}
	}
	return &S3Gateway{
		bucket:        strings.TrimSpace(cfg.Bucket),
		publicBaseURL: publicBaseURL(cfg),
		allowed:       allowed,
		presign:       p,
		objects:       o,
		random:        rand.Reader,
		now:           time.Now,
		log:           log,
	}
}

func publicBaseURL(cfg config.StorageConfig) string {
	if base := strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"); base != "" {
		return base
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"); endpoint != "" {
		return endpoint + "/" + bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
}

func (g *S3Gateway) configured() bool {
	return g != nil && g.bucket != "" && g.presign != nil && g.objects != nil
}

// NormalizeFolder trims separators and whitespace and rejects empty or
// traversing namespaces.
func NormalizeFolder(folder string) (string, error) {
	f := strings.Trim(strings.TrimSpace(folder), "/")
	if f == "" {
		return "", fmt.Errorf("%w: folder is required", domain.ErrValidation)
	}
	for _, seg := range strings.Split(f, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", fmt.Errorf("%w: invalid folder %q", domain.ErrValidation, folder)
		}
	}
	return f, nil
}

// BuildObjectKey derives folder/<32 hex chars><ext>. The extension is kept only
// when it looks like a real one.
func BuildObjectKey(folder, filename string, random io.Reader) (string, error) {
	buf := make([]byte, keyEntropyBytes)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", fmt.Errorf("generate object key: %w", err)
	}
	ext := path.Ext(strings.TrimSpace(filename))
	if !extPattern.MatchString(ext) {
		ext = ""
	}
	return folder + "/" + hex.EncodeToString(buf) + ext, nil
}

// ValidateFolder normalizes folder and checks it against the allow-list.
func (g *S3Gateway) ValidateFolder(folder string) (string, error) {
	f, err := NormalizeFolder(folder)
	if err != nil {
		return "", err
	}
	if _, ok := g.allowed[f]; !ok {
		return "", fmt.Errorf("%w: unknown folder %q", domain.ErrValidation, f)
	}
	return f, nil
}

func (g *S3Gateway) IssueUploadCredential(ctx context.Context, folder, filename, contentType string) (entities.UploadCredential, error) {
	if !g.configured() {
		g.log.Error("[storage][gateway] issue credential without storage configuration")
		return entities.UploadCredential{}, fmt.Errorf("%w: object storage is not configured", domain.ErrConfiguration)
	}
	f, err := g.ValidateFolder(folder)
	if err != nil {
		return entities.UploadCredential{}, err
	}
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return entities.UploadCredential{}, fmt.Errorf("%w: content type is required", domain.ErrValidation)
	}

	key, err := g.NewKey(f, filename)
	if err != nil {
		return entities.UploadCredential{}, fmt.Errorf("%w: %v", domain.ErrUploadURLCreation, err)
	}

	req, err := g.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(UploadCredentialTTL))
	if err != nil {
		g.log.Error("[storage][gateway] presign failed", zap.String("key", key), zap.Error(err))
		return entities.UploadCredential{}, fmt.Errorf("%w: %v", domain.ErrUploadURLCreation, err)
	}
	g.log.Info("[storage][gateway] upload credential issued", zap.String("key", key), zap.String("content_type", contentType))

	return entities.UploadCredential{
		Key:         key,
		UploadURL:   req.URL,
		PublicURL:   g.PublicURL(key),
		ContentType: contentType,
		ExpiresAt:   g.now().UTC().Add(UploadCredentialTTL),
	}, nil
}

// NewKey builds a fresh object key inside an already validated folder.
func (g *S3Gateway) NewKey(folder, filename string) (string, error) {
	return BuildObjectKey(folder, filename, g.random)
}

func (g *S3Gateway) UploadBuffer(ctx context.Context, data []byte, key, contentType string) (string, error) {
	if !g.configured() {
		return "", fmt.Errorf("%w: object storage is not configured", domain.ErrConfiguration)
	}
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return "", fmt.Errorf("%w: key is required", domain.ErrValidation)
	}

	in := &s3.PutObjectInput{
		Bucket:        aws.String(g.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if ct := strings.TrimSpace(contentType); ct != "" {
		in.ContentType = aws.String(ct)
	}
	if _, err := g.objects.PutObject(ctx, in); err != nil {
		g.log.Error("[storage][gateway] put object failed", zap.String("key", key), zap.Int("bytes", len(data)), zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	g.log.Info("[storage][gateway] put object success", zap.String("key", key), zap.Int("bytes", len(data)))
	return g.PublicURL(key), nil
}

func (g *S3Gateway) DeleteObject(ctx context.Context, key string) error {
	if !g.configured() {
		return fmt.Errorf("%w: object storage is not configured", domain.ErrConfiguration)
	}
	if _, err := g.objects.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	}); err != nil {
		g.log.Error("[storage][gateway] delete object failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

func (g *S3Gateway) PublicURL(key string) string {
	return g.publicBaseURL + "/" + key
}

// KeyFromURL maps a public URL served by this bucket back to its key.
func (g *S3Gateway) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(strings.TrimSpace(url), g.publicBaseURL+"/")
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
