package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/beliefted/beliefted-server/internal/domain"
)

// RegisterDeviceToken moves the token to the given user if another user had
// registered it before.
func (r *Repository) RegisterDeviceToken(ctx context.Context, token domain.DeviceToken) error {
	ib := sqlbuilder.InsertInto(tableDeviceTokens)
	ib.Cols("token", "user_id", "platform", "created_at")
	ib.Values(token.Token, token.UserID, token.Platform, token.CreatedAt)
	ib.SQL("ON DUPLICATE KEY UPDATE user_id = VALUES(user_id), platform = VALUES(platform)")
	query, args := ib.Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("registering device token: %w", err)
	}
	return nil
}

func (r *Repository) ListDeviceTokens(ctx context.Context, userID string) ([]domain.DeviceToken, error) {
	sb := sqlbuilder.Select("token", "user_id", "platform", "created_at")
	sb.From(tableDeviceTokens)
	sb.Where(sb.Equal("user_id", userID))

	tokens := []domain.DeviceToken{}
	err := scanAll(ctx, r.db, sb, func(rows *sql.Rows) error {
		var t domain.DeviceToken
		if err := rows.Scan(&t.Token, &t.UserID, &t.Platform, &t.CreatedAt); err != nil {
			return err
		}
		tokens = append(tokens, t)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing device tokens: %w", err)
	}
	return tokens, nil
}

func (r *Repository) DeleteDeviceToken(ctx context.Context, token string) error {
	db := sqlbuilder.DeleteFrom(tableDeviceTokens)
	db.Where(db.Equal("token", token))
	query, args := db.Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting device token: %w", err)
	}
	return nil
}

var apiTokenColumns = []string{
	"id", "user_id", "token_hash", "prefix", "name", "created_at", "last_used_at", "expires_at", "revoked_at",
}

func scanAPIToken(scan func(dest ...any) error) (domain.APIToken, error) {
	var t domain.APIToken
	var name sql.NullString
	var lastUsedAt, expiresAt, revokedAt sql.NullTime
	if err := scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.Prefix, &name, &t.CreatedAt, &lastUsedAt, &expiresAt, &revokedAt,
	); err != nil {
		return domain.APIToken{}, err
	}
	t.Name = stringPtr(name)
	t.LastUsedAt = timePtr(lastUsedAt)
	t.ExpiresAt = timePtr(expiresAt)
	t.RevokedAt = timePtr(revokedAt)
	return t, nil
}

func (r *Repository) CreateAPIToken(
	ctx context.Context,
	id, userID, tokenHash, tokenPrefix string,
	name *string,
	expiresAt *time.Time,
) error {
	ib := sqlbuilder.InsertInto(tableAPITokens)
	ib.Cols("id", "user_id", "token_hash", "prefix", "name", "created_at", "expires_at")
	ib.Values(id, userID, tokenHash, tokenPrefix, name, time.Now(), expiresAt)
	query, args := ib.Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting API token: %w", err)
	}
	return nil
}

func (r *Repository) GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error) {
	sb := sqlbuilder.Select(apiTokenColumns...)
	sb.From(tableAPITokens)
	sb.Where(sb.Equal("token_hash", tokenHash))

	var tokens []domain.APIToken
	err := scanAll(ctx, r.db, sb, func(rows *sql.Rows) error {
		t, err := scanAPIToken(rows.Scan)
		if err != nil {
			return err
		}
		tokens = append(tokens, t)
		return nil
	})
	if err != nil {
		return domain.APIToken{}, fmt.Errorf("finding API token: %w", err)
	}
	if len(tokens) == 0 {
		return domain.APIToken{}, fmt.Errorf("API token: %w", domain.ErrNotFound)
	}
	return tokens[0], nil
}

func (r *Repository) UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error {
	ub := sqlbuilder.Update(tableAPITokens)
	ub.Set(ub.Assign("last_used_at", time.Now()))
	ub.Where(ub.Equal("id", tokenID))
	query, args := ub.Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating API token last used: %w", err)
	}
	return nil
}

func (r *Repository) ListUserAPITokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	sb := sqlbuilder.Select(apiTokenColumns...)
	sb.From(tableAPITokens)
	sb.Where(sb.Equal("user_id", userID), sb.IsNull("revoked_at"))
	sb.OrderBy("created_at DESC")

	tokens := []domain.APIToken{}
	err := scanAll(ctx, r.db, sb, func(rows *sql.Rows) error {
		t, err := scanAPIToken(rows.Scan)
		if err != nil {
			return err
		}
		tokens = append(tokens, t)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing API tokens: %w", err)
	}
	return tokens, nil
}

func (r *Repository) CountUserActiveAPITokens(ctx context.Context, userID string) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From(tableAPITokens)
	sb.Where(
		sb.Equal("user_id", userID),
		sb.IsNull("revoked_at"),
		sb.Or(sb.IsNull("expires_at"), sb.GreaterThan("expires_at", time.Now())),
	)

	n, err := countRows(ctx, r.db, sb)
	if err != nil {
		return 0, fmt.Errorf("counting API tokens: %w", err)
	}
	return int64(n), nil
}

func (r *Repository) RevokeAPIToken(ctx context.Context, tokenID, userID string) error {
	ub := sqlbuilder.Update(tableAPITokens)
	ub.Set(ub.Assign("revoked_at", time.Now()))
	ub.Where(ub.Equal("id", tokenID), ub.Equal("user_id", userID), ub.IsNull("revoked_at"))
	query, args := ub.Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("revoking API token: %w", err)
	}
	return nil
}
