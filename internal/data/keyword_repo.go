package data

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/seopulse/seopulse-api/internal/data/pgxutil"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// KeywordRepo provides database operations for tracked keywords and their
// position history.
type KeywordRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewKeywordRepo creates a new KeywordRepo with the real clock.
func NewKeywordRepo(db *sql.DB) *KeywordRepo {
	return &KeywordRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewKeywordRepoWithTimeProvider creates a KeywordRepo with a custom clock
// (useful for tests).
func NewKeywordRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *KeywordRepo {
	return &KeywordRepo{DB: db, timeProvider: tp}
}

const keywordColumns = `id, client_id, term, position, previous_position, created_at, updated_at`

// Create inserts a new keyword with no recorded position yet.
func (r *KeywordRepo) Create(ctx context.Context, req *model.CreateKeywordRequest) (*model.Keyword, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Keyword
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO keywords (client_id, term)
			VALUES ($1, $2)
			RETURNING `+keywordColumns,
			req.ClientID, strings.TrimSpace(req.Term))
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Keyword])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a keyword by id.
func (r *KeywordRepo) GetByID(ctx context.Context, id string) (*model.Keyword, error) {
	var k model.Keyword
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+keywordColumns+` FROM keywords WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		k, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Keyword])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &k, nil
}

// ListByClient retrieves all keywords for a client, oldest first so the
// dashboard ordering is stable.
func (r *KeywordRepo) ListByClient(ctx context.Context, clientID string) ([]*model.Keyword, error) {
	var rowsOut []model.Keyword
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+keywordColumns+`
			FROM keywords
			WHERE client_id = $1
			ORDER BY created_at ASC`, clientID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Keyword])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Keyword, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update applies updatable keyword fields. A request with no fields set is a
// read.
func (r *KeywordRepo) Update(ctx context.Context, id string, req model.UpdateKeywordRequest) (*model.Keyword, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Term == nil {
		return r.GetByID(ctx, id)
	}

	var out model.Keyword
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			UPDATE keywords
			SET term = $1, updated_at = now()
			WHERE id = $2
			RETURNING `+keywordColumns,
			strings.TrimSpace(*req.Term), id)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Keyword])
		return qerr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// RecordPosition shifts the current position into previous_position, stores
// the new position and appends a history row, all in one transaction. A
// failure on either statement leaves the keyword untouched.
func (r *KeywordRepo) RecordPosition(ctx context.Context, req *model.RecordPositionRequest) (*model.Keyword, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recordedAt := r.timeProvider.Now().UTC()
	var out model.Keyword
	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			UPDATE keywords
			SET previous_position = position,
			    position = $2,
			    updated_at = $3
			WHERE id = $1
			RETURNING `+keywordColumns,
			req.KeywordID, req.Position, recordedAt)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Keyword])
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO keyword_positions (keyword_id, position, recorded_at)
			VALUES ($1, $2, $3)`,
			req.KeywordID, req.Position, recordedAt)
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// History returns recent position records for a keyword, newest first.
func (r *KeywordRepo) History(ctx context.Context, keywordID string, limit int) ([]*model.PositionRecord, error) {
	if limit <= 0 {
		limit = 30
	}

	var rowsOut []model.PositionRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, keyword_id, position, recorded_at
			FROM keyword_positions
			WHERE keyword_id = $1
			ORDER BY recorded_at DESC
			LIMIT $2`, keywordID, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.PositionRecord])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.PositionRecord, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete deletes a keyword; its history rows cascade.
func (r *KeywordRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM keywords WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return affected > 0, nil
}
