package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
)

// StorageService wraps the remote object bucket for event and profile images.
// Upload failures fall back to the input URI so a save never dies on the
// image step; deletes are best effort.
type StorageService struct {
	storage *storage_go.Client
	bucket  string
	logger  *slog.Logger
}

func NewStorageService(storage *storage_go.Client, bucket string, logger *slog.Logger) *StorageService {
	return &StorageService{
		storage: storage,
		bucket:  bucket,
		logger:  logger,
	}
}

// Upload pushes a local file to the bucket and returns its public URL. URIs
// that are already http(s) pass through untouched; any failure returns the
// input URI as fallback.
func (s *StorageService) Upload(ctx context.Context, uri, folder string) string {
	if strings.HasPrefix(uri, "http") {
		return uri
	}

	file, err := os.Open(strings.TrimPrefix(uri, "file://"))
	if err != nil {
		s.logger.Error("failed to read image file", "uri", uri, "error", err)
		return uri
	}
	defer file.Close()

	path := objectPath(folder, uri)
	contentType := contentTypeFor(uri)
	cacheControl := "3600"
	upsert := false
	_, err = s.storage.UploadFile(s.bucket, path, file, storage_go.FileOptions{
		ContentType:  &contentType,
		CacheControl: &cacheControl,
		Upsert:       &upsert,
	})
	if err != nil {
		s.logger.Error("image upload failed", "path", path, "error", err)
		return uri
	}

	public := s.storage.GetPublicUrl(s.bucket, path)
	if public.SignedURL == "" {
		return uri
	}
	return public.SignedURL
}

// UploadAll uploads every URI, falling back per item.
func (s *StorageService) UploadAll(ctx context.Context, uris []string, folder string) []string {
	out := make([]string, 0, len(uris))
	for _, uri := range uris {
		out = append(out, s.Upload(ctx, uri, folder))
	}
	return out
}

// RemoveByURL deletes the object behind a public URL. URLs outside the bucket
// are ignored; failures only log.
func (s *StorageService) RemoveByURL(ctx context.Context, url string) {
	path, ok := bucketPath(url, s.bucket)
	if !ok {
		return
	}
	if _, err := s.storage.RemoveFile(s.bucket, []string{path}); err != nil {
		s.logger.Error("failed to delete image", "path", path, "error", err)
	}
}

func (s *StorageService) RemoveAllByURL(ctx context.Context, urls []string) {
	for _, url := range urls {
		s.RemoveByURL(ctx, url)
	}
}

// objectPath builds a unique bucket path for an uploaded file, keeping the
// source extension.
func objectPath(folder, uri string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:13]
	return fmt.Sprintf("%s/%d_%s.%s", folder, time.Now().UnixMilli(), token, fileExtension(uri))
}

func fileExtension(uri string) string {
	// Strip any query string before looking at the extension.
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		uri = uri[:i]
	}
	if i := strings.LastIndexByte(uri, '.'); i >= 0 && i < len(uri)-1 {
		return strings.ToLower(uri[i+1:])
	}
	return "jpg"
}

func contentTypeFor(uri string) string {
	ext := fileExtension(uri)
	if ext == "jpg" {
		ext = "jpeg"
	}
	return "image/" + ext
}

// bucketPath extracts the object path from a public URL, reporting false for
// URLs that do not point into the bucket.
func bucketPath(url, bucket string) (string, bool) {
	marker := bucket + "/"
	i := strings.Index(url, marker)
	if i < 0 {
		return "", false
	}
	path := url[i+len(marker):]
	if path == "" {
		return "", false
	}
	return path, true
}
