package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seopulse/seopulse-api/internal/data/cryptoutil"
	"github.com/seopulse/seopulse-api/internal/data/pgxutil"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// CredentialRepo stores per-client Google OAuth tokens with at-rest
// encryption. Refresh and access tokens are never written in the clear.
type CredentialRepo struct {
	DB  *sql.DB
	Enc cryptoutil.Encryptor
}

// NewCredentialRepo creates a new CredentialRepo.
func NewCredentialRepo(db *sql.DB, enc cryptoutil.Encryptor) *CredentialRepo {
	return &CredentialRepo{DB: db, Enc: enc}
}

// Get returns the credential for a client with tokens decrypted.
func (r *CredentialRepo) Get(ctx context.Context, clientID string) (*model.Credential, error) {
	var c model.Credential
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT client_id, refresh_token, access_token, token_expiry, created_at, updated_at
			FROM google_credentials
			WHERE client_id = $1`, clientID)
		if err != nil {
			return err
		}
		defer rows.Close()
		c, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Credential])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	if c.RefreshToken, err = r.decrypt(c.RefreshToken); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decrypt refresh token")
	}
	if c.AccessToken, err = r.decrypt(c.AccessToken); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decrypt access token")
	}
	return &c, nil
}

// Upsert persists a token set. The row is created on first connection; after
// that only the supplied fields move. An empty RefreshToken keeps whatever
// refresh token is already stored, so a refresh response that omits one can
// be persisted as-is.
func (r *CredentialRepo) Upsert(ctx context.Context, upd model.TokenUpdate) error {
	if upd.ClientID == "" {
		return apperrors.ValidationField("client_id", "client is required")
	}

	accessCipher, err := r.encrypt(upd.AccessToken)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encrypt access token")
	}
	refreshCipher, err := r.encrypt(upd.RefreshToken)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encrypt refresh token")
	}

	err = pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		// NULLIF keeps the stored refresh token when the update carries none.
		_, execErr := conn.Exec(ctx, `
			INSERT INTO google_credentials (client_id, refresh_token, access_token, token_expiry)
			VALUES ($1, COALESCE(NULLIF($2, ''), ''), $3, $4)
			ON CONFLICT (client_id) DO UPDATE SET
				refresh_token = COALESCE(NULLIF($2, ''), google_credentials.refresh_token),
				access_token  = $3,
				token_expiry  = $4,
				updated_at    = now()`,
			upd.ClientID, refreshCipher, accessCipher, upd.TokenExpiry)
		return execErr
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

func (r *CredentialRepo) encrypt(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	return r.Enc.Encrypt([]byte(token))
}

func (r *CredentialRepo) decrypt(cipher string) (string, error) {
	if cipher == "" {
		return "", nil
	}
	pt, err := r.Enc.Decrypt(cipher)
	if err != nil {
		return "", fmt.Errorf("decrypt token: %w", err)
	}
	return string(pt), nil
}
