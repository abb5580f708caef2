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

// BacklinkRepo provides database operations for backlink outreach prospects.
type BacklinkRepo struct {
	DB *sql.DB
}

// NewBacklinkRepo creates a new BacklinkRepo.
func NewBacklinkRepo(db *sql.DB) *BacklinkRepo {
	return &BacklinkRepo{DB: db}
}

const backlinkColumns = `id, client_id, source_domain, target_url, status, contact_email, follow_up_at, notes, created_at, updated_at`

// Create inserts a new backlink prospect. The source domain is normalized
// before storage so duplicate detection works across URL spellings.
func (r *BacklinkRepo) Create(ctx context.Context, req *model.CreateBacklinkRequest) (*model.Backlink, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	domain := model.NormalizeSourceDomain(req.SourceDomain)

	status := req.Status
	if status == "" {
		status = model.BacklinkStatusProspect
	}

	var out model.Backlink
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			INSERT INTO backlinks (client_id, source_domain, target_url, status, contact_email, follow_up_at, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+backlinkColumns,
			req.ClientID, domain, strings.TrimSpace(req.TargetURL), status,
			req.ContactEmail, req.FollowUpAt, req.Notes)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Backlink])
		return qerr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a backlink by id.
func (r *BacklinkRepo) GetByID(ctx context.Context, id string) (*model.Backlink, error) {
	var b model.Backlink
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+backlinkColumns+` FROM backlinks WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		b, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Backlink])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &b, nil
}

// ListByClient retrieves all backlinks for a client. Prospects with the
// earliest follow-up date come first so due outreach is at the top.
func (r *BacklinkRepo) ListByClient(ctx context.Context, clientID string) ([]*model.Backlink, error) {
	var rowsOut []model.Backlink
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+backlinkColumns+`
			FROM backlinks
			WHERE client_id = $1
			ORDER BY follow_up_at ASC NULLS LAST, created_at DESC`, clientID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Backlink])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Backlink, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a backlink. Nil request fields are left unchanged.
func (r *BacklinkRepo) Update(ctx context.Context, id string, req model.UpdateBacklinkRequest) (*model.Backlink, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := buildBacklinkUpdateClause(req)
	if setClause == "" {
		return r.GetByID(ctx, id)
	}

	var out model.Backlink
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE backlinks SET " + setClause + ", updated_at = now() WHERE id = $" +
			strconv.Itoa(len(args)) + " RETURNING " + backlinkColumns
		rows, qerr := conn.Query(ctx, query, args...)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Backlink])
		return qerr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

func buildBacklinkUpdateClause(req model.UpdateBacklinkRequest) (string, []any) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.SourceDomain != nil {
		setParts = append(setParts, fmt.Sprintf("source_domain = $%d", nextIdx()))
		args = append(args, model.NormalizeSourceDomain(*req.SourceDomain))
	}
	if req.TargetURL != nil {
		setParts = append(setParts, fmt.Sprintf("target_url = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.TargetURL))
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, *req.Status)
	}
	if req.ContactEmail != nil {
		if strings.TrimSpace(*req.ContactEmail) == "" {
			setParts = append(setParts, "contact_email = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("contact_email = $%d", nextIdx()))
			args = append(args, strings.TrimSpace(*req.ContactEmail))
		}
	}
	if req.FollowUpAt != nil {
		if req.FollowUpAt.IsZero() {
			setParts = append(setParts, "follow_up_at = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("follow_up_at = $%d", nextIdx()))
			args = append(args, *req.FollowUpAt)
		}
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", nextIdx()))
		args = append(args, *req.Notes)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	return strings.Join(setParts, ", "), args
}

// Delete deletes a backlink by id.
func (r *BacklinkRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM backlinks WHERE id = $1`, id)
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
