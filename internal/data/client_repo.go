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

// ClientRepo provides database operations for clients (tenants).
type ClientRepo struct {
	DB *sql.DB
}

// NewClientRepo creates a new ClientRepo.
func NewClientRepo(db *sql.DB) *ClientRepo {
	return &ClientRepo{DB: db}
}

const clientColumns = `id, name, domain, owner_id, site_url, analytics_property_id, created_at, updated_at`

// Create inserts a new client.
func (r *ClientRepo) Create(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Client
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO clients (name, domain, owner_id, site_url, analytics_property_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+clientColumns,
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Domain),
			req.OwnerID,
			req.SiteURL,
			req.AnalyticsPropertyID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Client])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a client by id.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*model.Client, error) {
	var c model.Client
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		c, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Client])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &c, nil
}

// List retrieves clients, newest first. When opts.OwnerID is set the listing
// is restricted to that owner.
func (r *ClientRepo) List(ctx context.Context, opts model.ClientsListOptions) ([]*model.Client, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	query := `SELECT ` + clientColumns + ` FROM clients`
	args := []any{}
	if opts.OwnerID != "" {
		query += ` WHERE owner_id = $1`
		args = append(args, opts.OwnerID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var rowsOut []model.Client
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Client])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Client, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a client. Nil request fields are left unchanged.
func (r *ClientRepo) Update(ctx context.Context, id string, req model.UpdateClientRequest) (*model.Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := buildClientUpdateClause(req)
	if setClause == "" {
		return r.GetByID(ctx, id)
	}

	var out model.Client
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE clients SET " + setClause + ", updated_at = now() WHERE id = $" +
			strconv.Itoa(len(args)) + " RETURNING " + clientColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Client])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

func buildClientUpdateClause(req model.UpdateClientRequest) (string, []any) {
	setParts := make([]string, 0, 4)
	args := make([]any, 0, 4)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Domain != nil {
		setParts = append(setParts, fmt.Sprintf("domain = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Domain))
	}
	if req.SiteURL != nil {
		if strings.TrimSpace(*req.SiteURL) == "" {
			setParts = append(setParts, "site_url = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("site_url = $%d", nextIdx()))
			args = append(args, strings.TrimSpace(*req.SiteURL))
		}
	}
	if req.AnalyticsPropertyID != nil {
		if strings.TrimSpace(*req.AnalyticsPropertyID) == "" {
			setParts = append(setParts, "analytics_property_id = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("analytics_property_id = $%d", nextIdx()))
			args = append(args, strings.TrimSpace(*req.AnalyticsPropertyID))
		}
	}

	if len(setParts) == 0 {
		return "", nil
	}
	return strings.Join(setParts, ", "), args
}

// Delete deletes a client by id. Credentials, keywords, backlinks, content,
// roadmap tasks and audits cascade at the schema level.
func (r *ClientRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
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
