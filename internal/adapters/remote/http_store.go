package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/mero_khata/internal/apperrors"
	portsrepo "github.com/SscSPs/mero_khata/internal/core/ports/repositories"
)

// defaultMaxDocumentSize bounds how much of a response body is read.
const defaultMaxDocumentSize = 32 << 20

// HTTPDocumentStore talks to the remote document endpoint: GET returns the document,
// POST overwrites it.
type HTTPDocumentStore struct {
	client  *http.Client
	url     string
	maxSize int64
}

// StoreOption is a functional option for configuring the remote store client
type StoreOption func(*HTTPDocumentStore)

// WithMaxDocumentSize overrides the largest document Fetch accepts.
func WithMaxDocumentSize(n int64) StoreOption {
	return func(s *HTTPDocumentStore) {
		if n > 0 {
			s.maxSize = n
		}
	}
}

// NewHTTPDocumentStore creates a remote store client. A zero timeout keeps the transport default.
func NewHTTPDocumentStore(url string, timeout time.Duration, options ...StoreOption) portsrepo.RemoteDocumentStore {
	s := &HTTPDocumentStore{
		client:  &http.Client{Timeout: timeout},
		url:     url,
		maxSize: defaultMaxDocumentSize,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Fetch downloads the current document.
func (s *HTTPDocumentStore) Fetch(ctx context.Context) ([]byte, error) {
	if s.url == "" {
		return nil, fmt.Errorf("%w: no remote store configured", apperrors.ErrTransport)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s answered %d", apperrors.ErrTransport, s.url, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", apperrors.ErrTransport, err)
	}
	// A truncated document would look like invalid data rather than an unusable remote
	if int64(len(body)) > s.maxSize {
		return nil, fmt.Errorf("%w: GET %s answered more than %d bytes", apperrors.ErrTransport, s.url, s.maxSize)
	}
	return body, nil
}

// Push overwrites the remote document with raw.
func (s *HTTPDocumentStore) Push(ctx context.Context, raw []byte) error {
	if s.url == "" {
		return fmt.Errorf("%w: no remote store configured", apperrors.ErrTransport)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: POST %s answered %d: %s", apperrors.ErrTransport, s.url, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
