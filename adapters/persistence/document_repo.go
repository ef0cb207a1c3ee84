package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/resumekit/resumekit/internal/domain/document"
	"github.com/resumekit/resumekit/pkg/apperror"
	"github.com/resumekit/resumekit/pkg/logger"
)

// The editor holds one working document, so snapshots live in a single
// slot. Saving overwrites it; loading returns the latest.
const snapshotSlot = "current"

type postgresDocumentRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresDocumentRepo(db *pgxpool.Pool, logger logger.Logger) document.Repository {
	return &postgresDocumentRepo{db: db, logger: logger}
}

var psqlDocument = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresDocumentRepo) Save(ctx context.Context, doc *document.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return apperror.NewInternal("failed to marshal document snapshot", err)
	}

	query := `
		INSERT INTO document_snapshots (slot, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slot) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query, snapshotSlot, data)
	if err != nil {
		return apperror.NewInternal("failed to save document snapshot", err)
	}
	return nil
}

func (r *postgresDocumentRepo) Load(ctx context.Context) (*document.Document, error) {
	builder := psqlDocument.Select("data").
		From("document_snapshots").
		Where(sq.Eq{"slot": snapshotSlot})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build load snapshot query", err)
	}

	var data []byte
	err = r.db.QueryRow(ctx, query, args...).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, document.ErrSnapshotNotFound
		}
		return nil, apperror.NewInternal("failed to query document snapshot", err)
	}

	doc := &document.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		r.logger.Warn("Failed to unmarshal document snapshot", zap.Error(err))
		return nil, apperror.NewInternal("failed to unmarshal document snapshot", err)
	}
	return doc, nil
}
