package data

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/seopulse/seopulse-api/internal/data/pgxutil"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// AuditRepo stores each client's technical audit as one JSONB blob keyed by
// client id. There is at most one audit row per client.
type AuditRepo struct {
	DB *sql.DB
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{DB: db}
}

// Get returns the audit for a client. The JSONB blob is decoded here rather
// than via struct mapping since it comes back as raw bytes.
func (r *AuditRepo) Get(ctx context.Context, clientID string) (*model.Audit, error) {
	var (
		itemsRaw []byte
		out      model.Audit
	)
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		row := conn.QueryRow(ctx, `
			SELECT client_id, items, updated_at
			FROM audits
			WHERE client_id = $1`, clientID)
		return row.Scan(&out.ClientID, &itemsRaw, &out.UpdatedAt)
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &out.Items); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode audit items")
		}
	}
	if out.Items == nil {
		out.Items = model.AuditItems{}
	}
	return &out, nil
}

// Upsert replaces the audit blob for a client. Items are expected to be
// normalized by the caller.
func (r *AuditRepo) Upsert(ctx context.Context, clientID string, items model.AuditItems) (*model.Audit, error) {
	if items == nil {
		items = model.AuditItems{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode audit items")
	}

	var out model.Audit
	out.Items = items
	err = pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		row := conn.QueryRow(ctx, `
			INSERT INTO audits (client_id, items)
			VALUES ($1, $2)
			ON CONFLICT (client_id) DO UPDATE SET
				items = $2,
				updated_at = now()
			RETURNING client_id, updated_at`, clientID, blob)
		return row.Scan(&out.ClientID, &out.UpdatedAt)
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
