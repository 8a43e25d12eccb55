package services

import (
	"context"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"

	"alwanstore/internal/log"
	"alwanstore/internal/metrics"
	"alwanstore/internal/remote"
	"alwanstore/internal/session"
)

type MediaService struct {
	rc     *remote.Client
	auth   *session.Store
	bucket string

	mu      sync.Mutex
	ensured map[string]bool
}

func NewMediaService(rc *remote.Client, auth *session.Store, bucket string) *MediaService {
	return &MediaService{rc: rc, auth: auth, bucket: bucket, ensured: map[string]bool{}}
}

// Upload stores a file under a randomized name and returns its public URL.
// The bucket is created lazily on first use.
func (m *MediaService) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	return m.UploadTo(ctx, m.bucket, filename, contentType, r)
}

// UploadTo targets a specific bucket (banners, reviews).
func (m *MediaService) UploadTo(ctx context.Context, bucket, filename, contentType string, r io.Reader) (string, error) {
	if err := m.auth.RequireAuth(); err != nil {
		return "", err
	}
	if err := m.ensureBucket(ctx, bucket); err != nil {
		metrics.MediaUploads.WithLabelValues("error").Inc()
		return "", err
	}

	name := uuid.NewString()
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		name += ext
	}
	url, err := m.rc.UploadObject(ctx, bucket, name, contentType, r)
	if err != nil {
		metrics.MediaUploads.WithLabelValues("error").Inc()
		log.Error(nil, "media.upload.fail", err, map[string]any{"bucket": bucket, "file": filename})
		return "", err
	}
	metrics.MediaUploads.WithLabelValues("ok").Inc()
	return url, nil
}

func (m *MediaService) ensureBucket(ctx context.Context, bucket string) error {
	m.mu.Lock()
	done := m.ensured[bucket]
	m.mu.Unlock()
	if done {
		return nil
	}
	if err := m.rc.EnsureBucket(ctx, bucket); err != nil {
		return err
	}
	m.mu.Lock()
	m.ensured[bucket] = true
	m.mu.Unlock()
	return nil
}
