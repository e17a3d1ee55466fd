package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/mero_khata/internal/apperrors"
	portsrepo "github.com/SscSPs/mero_khata/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// documentSlot is the key of the one row holding the shared document.
const documentSlot = "meroKhataData"

type PgxDocumentRepository struct {
	pool *pgxpool.Pool
}

// NewPgxDocumentRepository creates a new repository for the shared document.
func NewPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepository {
	return &PgxDocumentRepository{pool: pool}
}

// Load retrieves the stored document text.
func (r *PgxDocumentRepository) Load(ctx context.Context) ([]byte, error) {
	query := `
		SELECT body
		FROM khata_documents
		WHERE slot = $1;
	`
	var body string
	err := r.pool.QueryRow(ctx, query, documentSlot).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to load document", err)
	}
	return []byte(body), nil
}

// Store upserts the document. The body is kept as text so a malformed save can still be read back.
func (r *PgxDocumentRepository) Store(ctx context.Context, raw []byte) error {
	query := `
		INSERT INTO khata_documents (slot, body, last_updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (slot) DO UPDATE SET
			body = EXCLUDED.body,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.pool.Exec(ctx, query, documentSlot, string(raw), time.Now().UTC())
	if err != nil {
		return apperrors.NewAppError(500, "failed to store document", err)
	}
	return nil
}
