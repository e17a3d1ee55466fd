package flatfile_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SscSPs/mero_khata/internal/adapters/flatfile"
	"github.com/SscSPs/mero_khata/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFile(t *testing.T) {
	ctx := context.Background()
	repo := flatfile.NewDocumentFile(filepath.Join(t.TempDir(), "data.json"))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.Store(ctx, []byte("{\n    \"shopName\": \"X\"\n}")))

	raw, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"shopName":"X"}`, string(raw))
}
