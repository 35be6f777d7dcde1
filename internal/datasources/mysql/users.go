package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/beliefted/beliefted-server/internal/domain"
)

const followerCountColumn = "(SELECT COUNT(*) FROM " + tableUserFollowers + " f WHERE f.user_id = u.id)"

func (r *Repository) selectUsers(
	ctx context.Context, build func(sb *sqlbuilder.SelectBuilder),
) ([]domain.User, error) {
	sb := sqlbuilder.Select("u.id", "u.display_name", "u.username", "u.image_url", "u.created_at", followerCountColumn)
	sb.From(sb.As(tableUsers, "u"))
	build(sb)

	users := []domain.User{}
	err := scanAll(ctx, r.db, sb, func(rows *sql.Rows) error {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.DisplayName, &u.Username, &u.ImageURL, &u.CreatedAt, &u.FollowerCount); err != nil {
			return err
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("selecting users: %w", err)
	}
	return users, nil
}

func (r *Repository) findUser(ctx context.Context, column, value string) (domain.User, error) {
	users, err := r.selectUsers(ctx, func(sb *sqlbuilder.SelectBuilder) {
		sb.Where(sb.Equal("u."+column, value))
	})
	if err != nil {
		return domain.User{}, err
	}
	if len(users) == 0 {
		return domain.User{}, fmt.Errorf("user [%s]: %w", value, domain.ErrNotFound)
	}
	return users[0], nil
}

func (r *Repository) FetchUser(ctx context.Context, id string) (domain.User, error) {
	return r.findUser(ctx, "id", id)
}

func (r *Repository) FetchUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findUser(ctx, "username", username)
}

func (r *Repository) ListUsersByUsernames(ctx context.Context, usernames []string) ([]domain.User, error) {
	if len(usernames) == 0 {
		return nil, nil
	}
	return r.selectUsers(ctx, func(sb *sqlbuilder.SelectBuilder) {
		sb.Where(sb.In("u.username", sqlbuilder.Flatten(usernames)...))
	})
}

func (r *Repository) SearchUsers(ctx context.Context, usernamePrefix string, limit int) ([]domain.User, error) {
	return r.selectUsers(ctx, func(sb *sqlbuilder.SelectBuilder) {
		sb.Where(sb.Like("u.username", escapeLike(usernamePrefix)+"%"))
		sb.OrderBy("u.username")
		sb.Limit(limit)
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// UpsertUser checks the username inside the transaction first, because
// ON DUPLICATE KEY UPDATE would otherwise update whichever row holds it.
func (r *Repository) UpsertUser(ctx context.Context, user domain.User) error {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		sb := sqlbuilder.Select("id")
		sb.From(tableUsers)
		sb.Where(sb.Equal("username", user.Username), sb.NotEqual("id", user.ID))
		sb.ForUpdate()
		query, args := sb.Build()

		var holder string
		err := tx.QueryRowContext(ctx, query, args...).Scan(&holder)
		if err == nil {
			return domain.ErrUsernameTaken
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking username: %w", err)
		}

		ib := sqlbuilder.InsertInto(tableUsers)
		ib.Cols("id", "display_name", "username", "image_url", "created_at")
		ib.Values(user.ID, user.DisplayName, user.Username, user.ImageURL, user.CreatedAt)
		ib.SQL("ON DUPLICATE KEY UPDATE display_name = VALUES(display_name), username = VALUES(username), " +
			"image_url = IF(VALUES(image_url) = '', image_url, VALUES(image_url))")
		query, args = ib.Build()

		_, err = tx.ExecContext(ctx, query, args...)
		return err
	})
	if errors.Is(err, domain.ErrUsernameTaken) || isDuplicateEntry(err) {
		return domain.ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}
	return nil
}

func (r *Repository) AddFollower(ctx context.Context, userID, followerID string) (int, error) {
	return r.updateFollowers(ctx, userID, func(tx *sql.Tx) error {
		ib := sqlbuilder.InsertIgnoreInto(tableUserFollowers)
		ib.Cols("user_id", "follower_id", "created_at")
		ib.Values(userID, followerID, time.Now())
		query, args := ib.Build()
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
}

func (r *Repository) RemoveFollower(ctx context.Context, userID, followerID string) (int, error) {
	return r.updateFollowers(ctx, userID, func(tx *sql.Tx) error {
		db := sqlbuilder.DeleteFrom(tableUserFollowers)
		db.Where(db.Equal("user_id", userID), db.Equal("follower_id", followerID))
		query, args := db.Build()
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
}

func (r *Repository) updateFollowers(ctx context.Context, userID string, change func(tx *sql.Tx) error) (int, error) {
	var count int
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		sb := sqlbuilder.Select("id")
		sb.From(tableUsers)
		sb.Where(sb.Equal("id", userID))
		sb.ForUpdate()
		query, args := sb.Build()

		var found string
		err := tx.QueryRowContext(ctx, query, args...).Scan(&found)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user [%s]: %w", userID, domain.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("locking user: %w", err)
		}

		if err := change(tx); err != nil {
			return fmt.Errorf("updating followers: %w", err)
		}

		cb := sqlbuilder.Select("COUNT(*)")
		cb.From(tableUserFollowers)
		cb.Where(cb.Equal("user_id", userID))
		count, err = countRows(ctx, tx, cb)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) IsFollowing(ctx context.Context, userID, followerID string) (bool, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From(tableUserFollowers)
	sb.Where(sb.Equal("user_id", userID), sb.Equal("follower_id", followerID))

	n, err := countRows(ctx, r.db, sb)
	if err != nil {
		return false, fmt.Errorf("checking follower: %w", err)
	}
	return n > 0, nil
}
