package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/mero_khata/internal/apperrors"
	"github.com/SscSPs/mero_khata/internal/core/domain"
	portsrepo "github.com/SscSPs/mero_khata/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
)

// documentStoreService backs the remote document endpoint. It stores whatever truthy JSON
// it is given; shape checks are left to the clients reading it back.
type documentStoreService struct {
	BaseService
	repo portsrepo.DocumentRepository
}

// NewDocumentStoreService creates the endpoint service on top of a storage backend.
func NewDocumentStoreService(repo portsrepo.DocumentRepository) portssvc.DocumentStoreSvc {
	return &documentStoreService{repo: repo}
}

var _ portssvc.DocumentStoreSvc = (*documentStoreService)(nil)

func (s *documentStoreService) Get(ctx context.Context) ([]byte, error) {
	raw, err := s.repo.Load(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		seed, merr := json.Marshal(domain.DefaultDocument())
		if merr != nil {
			return nil, fmt.Errorf("failed to encode default document: %w", merr)
		}
		if serr := s.repo.Store(ctx, seed); serr != nil {
			s.LogError(ctx, serr, "Failed to seed default document")
		} else {
			s.LogInfo(ctx, "Seeded default document")
		}
		return seed, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load stored document")
		return nil, err
	}

	if !json.Valid(raw) || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		s.LogWarn(ctx, "Stored document is not valid JSON, serving default", slog.Int("bytes", len(raw)))
		return json.Marshal(domain.DefaultDocument())
	}
	return raw, nil
}

func (s *documentStoreService) Overwrite(ctx context.Context, raw []byte) error {
	if !acceptsUpload(raw) {
		s.LogWarn(ctx, "Rejected document upload", slog.Int("bytes", len(raw)))
		return fmt.Errorf("%w: Invalid Data", apperrors.ErrValidation)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "    "); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := s.repo.Store(ctx, pretty.Bytes()); err != nil {
		s.LogError(ctx, err, "Failed to store document")
		return err
	}
	s.LogInfo(ctx, "Document stored", slog.Int("bytes", pretty.Len()))
	return nil
}

// acceptsUpload reports whether raw is JSON that a PHP truthiness test would accept.
// That is JS truthiness plus the string "0" counting as false.
func acceptsUpload(raw []byte) bool {
	if !json.Valid(raw) || !domain.IsTruthyJSON(raw) {
		return false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s == "0" {
		return false
	}
	return true
}
