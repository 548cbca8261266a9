package storage

import (
	"context"
	"net/url"
	"strings"

	catalogapp "github.com/shopline/backend/internal/application/catalog"
)

// PublicImageStore joins image keys onto a public base URL (a CDN or a
// public bucket). Used when presigning is disabled.
type PublicImageStore struct {
	baseURL string
}

var _ catalogapp.ImageStore = (*PublicImageStore)(nil)

// NewPublicImageStore creates a PublicImageStore
func NewPublicImageStore(baseURL string) *PublicImageStore {
	return &PublicImageStore{baseURL: strings.TrimRight(baseURL, "/")}
}

// URL returns baseURL/key, or key itself when no base URL is set
func (s *PublicImageStore) URL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key, nil
	}
	escaped := (&url.URL{Path: strings.TrimLeft(key, "/")}).EscapedPath()
	if s.baseURL == "" {
		return "/" + escaped, nil
	}
	return s.baseURL + "/" + escaped, nil
}

// Exists cannot be checked without bucket access and always reports true
func (s *PublicImageStore) Exists(_ context.Context, key string) (bool, error) {
	return key != "", nil
}
