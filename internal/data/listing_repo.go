package data

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/seopulse/seopulse-api/internal/data/database"
	"github.com/seopulse/seopulse-api/internal/data/pgxutil"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// ListingRepo provides database operations for marketplace listings.
// Listings are not client-scoped; the marketplace is shared inventory.
type ListingRepo struct {
	DB *sql.DB
}

// NewListingRepo creates a new ListingRepo.
func NewListingRepo(db *sql.DB) *ListingRepo {
	return &ListingRepo{DB: db}
}

const listingColumns = `id, source_domain, domain_authority, monthly_traffic, price_cents, category, status, created_at, updated_at`

// Create inserts a new listing in the available state.
func (r *ListingRepo) Create(ctx context.Context, req *model.CreateListingRequest) (*model.Listing, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Listing
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO listings (source_domain, domain_authority, monthly_traffic, price_cents, category)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+listingColumns,
			model.NormalizeSourceDomain(req.SourceDomain),
			req.DomainAuthority, req.MonthlyTraffic, req.PriceCents,
			strings.TrimSpace(req.Category))
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Listing])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a listing by id.
func (r *ListingRepo) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	var l model.Listing
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		l, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Listing])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &l, nil
}

// List retrieves listings with optional filters and sorting, built through
// the shared query builder.
func (r *ListingRepo) List(ctx context.Context, opts model.ListingsListOptions) ([]*model.Listing, error) {
	query, args := database.BuildListQuery(r.buildListingQueryOptions(opts))

	var rowsOut []model.Listing
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Listing])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Listing, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

func listingColumnList() []string {
	return []string{
		"id",
		"source_domain",
		"domain_authority",
		"monthly_traffic",
		"price_cents",
		"category",
		"status",
		"created_at",
		"updated_at",
	}
}

func (r *ListingRepo) buildListingQueryOptions(opts model.ListingsListOptions) *database.ListQueryOptions {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(listingColumnList()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}

	if opts.Status != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("status", database.Equal, *opts.Status),
		))
	}
	if opts.Category != nil && strings.TrimSpace(*opts.Category) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("category", database.ILike, strings.TrimSpace(*opts.Category)),
		))
	}
	if opts.MaxPriceCents != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("price_cents", database.LessThanOrEqual, *opts.MaxPriceCents),
		))
	}
	if opts.MinDomainAuthority != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("domain_authority", database.GreaterThanOrEqual, *opts.MinDomainAuthority),
		))
	}

	sortCol, sortDir := validateListingSort(opts.Sort, opts.Dir)
	queryOpts = append(queryOpts, database.WithOrderBy(sortCol, sortDir))

	return database.NewListQueryOptions("listings", queryOpts...)
}

// validateListingSort returns a safe sort column and direction.
func validateListingSort(sort, dir string) (string, string) {
	sortCol := "created_at"
	sortDir := "DESC"

	allowedSorts := map[string]string{
		"price_cents":      "price_cents",
		"domain_authority": "domain_authority",
		"monthly_traffic":  "monthly_traffic",
		"created_at":       "created_at",
	}
	if col, ok := allowedSorts[strings.ToLower(strings.TrimSpace(sort))]; ok {
		sortCol = col
	}
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "asc":
		sortDir = "ASC"
	case "desc":
		sortDir = "DESC"
	}
	return sortCol, sortDir
}

// Update updates fields of a listing. Nil request fields are left unchanged.
func (r *ListingRepo) Update(ctx context.Context, id string, req model.UpdateListingRequest) (*model.Listing, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := buildListingUpdateClause(req)
	if setClause == "" {
		return r.GetByID(ctx, id)
	}

	var out model.Listing
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE listings SET " + setClause + ", updated_at = now() WHERE id = $" +
			strconv.Itoa(len(args)) + " RETURNING " + listingColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Listing])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

func buildListingUpdateClause(req model.UpdateListingRequest) (string, []any) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.SourceDomain != nil {
		setParts = append(setParts, fmt.Sprintf("source_domain = $%d", nextIdx()))
		args = append(args, model.NormalizeSourceDomain(*req.SourceDomain))
	}
	if req.DomainAuthority != nil {
		setParts = append(setParts, fmt.Sprintf("domain_authority = $%d", nextIdx()))
		args = append(args, *req.DomainAuthority)
	}
	if req.MonthlyTraffic != nil {
		setParts = append(setParts, fmt.Sprintf("monthly_traffic = $%d", nextIdx()))
		args = append(args, *req.MonthlyTraffic)
	}
	if req.PriceCents != nil {
		setParts = append(setParts, fmt.Sprintf("price_cents = $%d", nextIdx()))
		args = append(args, *req.PriceCents)
	}
	if req.Category != nil {
		setParts = append(setParts, fmt.Sprintf("category = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Category))
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, *req.Status)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	return strings.Join(setParts, ", "), args
}

// Delete deletes a listing by id.
func (r *ListingRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
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
