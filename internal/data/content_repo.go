package data

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/seopulse/seopulse-api/internal/data/pgxutil"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// ContentRepo provides database operations for the content pipeline.
type ContentRepo struct {
	DB *sql.DB
}

// NewContentRepo creates a new ContentRepo.
func NewContentRepo(db *sql.DB) *ContentRepo {
	return &ContentRepo{DB: db}
}

const contentColumns = `id, client_id, title, status, due_date, url, created_at, updated_at`

// Create inserts a new content item. Status defaults to idea.
func (r *ContentRepo) Create(ctx context.Context, req *model.CreateContentRequest) (*model.ContentItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = model.ContentStatusIdea
	}

	var out model.ContentItem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO content_items (client_id, title, status, due_date, url)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+contentColumns,
			req.ClientID, strings.TrimSpace(req.Title), status, req.DueDate, req.URL)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ContentItem])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a content item by id.
func (r *ContentRepo) GetByID(ctx context.Context, id string) (*model.ContentItem, error) {
	var c model.ContentItem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+contentColumns+` FROM content_items WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		c, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ContentItem])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &c, nil
}

// ListByClient retrieves all content items for a client, due-soonest first.
func (r *ContentRepo) ListByClient(ctx context.Context, clientID string) ([]*model.ContentItem, error) {
	var rowsOut []model.ContentItem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+contentColumns+`
			FROM content_items
			WHERE client_id = $1
			ORDER BY due_date ASC NULLS LAST, created_at DESC`, clientID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ContentItem])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.ContentItem, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a content item. Nil request fields are left unchanged.
func (r *ContentRepo) Update(ctx context.Context, id string, req model.UpdateContentRequest) (*model.ContentItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := buildContentUpdateClause(req)
	if setClause == "" {
		return r.GetByID(ctx, id)
	}

	var out model.ContentItem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE content_items SET " + setClause + ", updated_at = now() WHERE id = $" +
			strconv.Itoa(len(args)) + " RETURNING " + contentColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ContentItem])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

func buildContentUpdateClause(req model.UpdateContentRequest) (string, []any) {
	setParts := make([]string, 0, 4)
	args := make([]any, 0, 4)
	nextIdx := func() int { return len(args) + 1 }

	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Title))
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, *req.Status)
	}
	if req.DueDate != nil {
		if req.DueDate.IsZero() {
			setParts = append(setParts, "due_date = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("due_date = $%d", nextIdx()))
			args = append(args, *req.DueDate)
		}
	}
	if req.URL != nil {
		if strings.TrimSpace(*req.URL) == "" {
			setParts = append(setParts, "url = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("url = $%d", nextIdx()))
			args = append(args, strings.TrimSpace(*req.URL))
		}
	}

	if len(setParts) == 0 {
		return "", nil
	}
	return strings.Join(setParts, ", "), args
}

// Delete deletes a content item by id.
func (r *ContentRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM content_items WHERE id = $1`, id)
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
