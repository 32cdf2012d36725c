package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultPresignedURLExpiry bounds how long a presigned URL stays usable.
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage abstracts the object store holding branding logos.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL the browser PUTs
	// the object to directly; the API never proxies file bytes.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// LogoObjectKey builds the bucket key for a trainer's logo upload. Keys are
// namespaced per trainer and never reused, so stale CDN caches cannot serve
// a replaced logo.
func LogoObjectKey(trainerID string) string {
	return fmt.Sprintf("branding/%s/logo-%s", trainerID, uuid.NewString())
}
