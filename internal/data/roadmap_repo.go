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

// RoadmapRepo provides database operations for roadmap tasks.
type RoadmapRepo struct {
	DB *sql.DB
}

// NewRoadmapRepo creates a new RoadmapRepo.
func NewRoadmapRepo(db *sql.DB) *RoadmapRepo {
	return &RoadmapRepo{DB: db}
}

const roadmapColumns = `id, client_id, title, status, created_at, updated_at`

// Create inserts a new roadmap task in the pending state.
func (r *RoadmapRepo) Create(ctx context.Context, req *model.CreateRoadmapTaskRequest) (*model.RoadmapTask, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.RoadmapTask
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO roadmap_tasks (client_id, title)
			VALUES ($1, $2)
			RETURNING `+roadmapColumns,
			req.ClientID, strings.TrimSpace(req.Title))
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RoadmapTask])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a roadmap task by id.
func (r *RoadmapRepo) GetByID(ctx context.Context, id string) (*model.RoadmapTask, error) {
	var t model.RoadmapTask
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+roadmapColumns+` FROM roadmap_tasks WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		t, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RoadmapTask])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &t, nil
}

// ListByClient retrieves all roadmap tasks for a client, oldest first.
func (r *RoadmapRepo) ListByClient(ctx context.Context, clientID string) ([]*model.RoadmapTask, error) {
	var rowsOut []model.RoadmapTask
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+roadmapColumns+`
			FROM roadmap_tasks
			WHERE client_id = $1
			ORDER BY created_at ASC`, clientID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.RoadmapTask])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.RoadmapTask, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// SetStatus flips a task between pending and completed.
func (r *RoadmapRepo) SetStatus(ctx context.Context, id string, status model.RoadmapStatus) (*model.RoadmapTask, error) {
	if !status.Valid() {
		return nil, apperrors.ValidationField("status", "unknown status")
	}

	var out model.RoadmapTask
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE roadmap_tasks
			SET status = $2, updated_at = now()
			WHERE id = $1
			RETURNING `+roadmapColumns, id, status)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RoadmapTask])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete deletes a roadmap task by id.
func (r *RoadmapRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM roadmap_tasks WHERE id = $1`, id)
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
