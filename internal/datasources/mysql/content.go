package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/beliefted/beliefted-server/internal/domain"
)

func (r *Repository) FetchContentItem(
	ctx context.Context, kind domain.ContentKind, id string,
) (domain.ContentItem, error) {
	id, err := domain.ParseID(id)
	if err != nil {
		return domain.ContentItem{}, err
	}

	items, err := r.selectContentItems(ctx, func(sb *sqlbuilder.SelectBuilder) {
		sb.Where(sb.Equal("id", id), sb.Equal("kind", string(kind)))
	})
	if err != nil {
		return domain.ContentItem{}, err
	}
	if len(items) == 0 {
		return domain.ContentItem{}, fmt.Errorf("%s [%s]: %w", kind, id, domain.ErrNotFound)
	}

	if err := r.attachInteractions(ctx, items); err != nil {
		return domain.ContentItem{}, err
	}
	return items[0], nil
}

// attachInteractions fills the interaction sets of items in place.
func (r *Repository) attachInteractions(ctx context.Context, items []domain.ContentItem) error {
	if len(items) == 0 {
		return nil
	}

	index := make(map[string]*domain.ContentItem, len(items))
	ids := make([]string, 0, len(items))
	for i := range items {
		items[i].PrayedBy, items[i].LikedBy, items[i].SavedBy = []string{}, []string{}, []string{}
		index[items[i].ID] = &items[i]
		ids = append(ids, items[i].ID)
	}

	sb := sqlbuilder.Select("item_id", "interaction", "user_id")
	sb.From(tableContentInteractions)
	sb.Where(sb.In("item_id", sqlbuilder.Flatten(ids)...))
	sb.OrderBy("created_at", "user_id")

	err := scanAll(ctx, r.db, sb, func(rows *sql.Rows) error {
		var itemID, interaction, userID string
		if err := rows.Scan(&itemID, &interaction, &userID); err != nil {
			return err
		}
		item := index[itemID]
		switch domain.Interaction(interaction) {
		case domain.InteractionPray:
			item.PrayedBy = append(item.PrayedBy, userID)
		case domain.InteractionLike:
			item.LikedBy = append(item.LikedBy, userID)
		case domain.InteractionSave:
			item.SavedBy = append(item.SavedBy, userID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("fetching interactions: %w", err)
	}
	return nil
}

// AddInteraction inserts the membership row, ignoring it if already present.
func (r *Repository) AddInteraction(
	ctx context.Context, kind domain.ContentKind, itemID string, interaction domain.Interaction, userID string,
) (int, error) {
	return r.updateInteraction(ctx, kind, itemID, interaction, func(tx *sql.Tx, id string) error {
		ib := sqlbuilder.InsertIgnoreInto(tableContentInteractions)
		ib.Cols("item_id", "interaction", "user_id", "created_at")
		ib.Values(id, string(interaction), userID, time.Now())
		query, args := ib.Build()
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
}

func (r *Repository) RemoveInteraction(
	ctx context.Context, kind domain.ContentKind, itemID string, interaction domain.Interaction, userID string,
) (int, error) {
	return r.updateInteraction(ctx, kind, itemID, interaction, func(tx *sql.Tx, id string) error {
		db := sqlbuilder.DeleteFrom(tableContentInteractions)
		db.Where(
			db.Equal("item_id", id),
			db.Equal("interaction", string(interaction)),
			db.Equal("user_id", userID),
		)
		query, args := db.Build()
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
}

// updateInteraction locks the item row, applies change and counts the
// resulting set inside one transaction.
func (r *Repository) updateInteraction(
	ctx context.Context,
	kind domain.ContentKind,
	itemID string,
	interaction domain.Interaction,
	change func(tx *sql.Tx, id string) error,
) (int, error) {
	id, err := domain.ParseID(itemID)
	if err != nil {
		return 0, err
	}

	var count int
	err = r.inTx(ctx, func(tx *sql.Tx) error {
		sb := sqlbuilder.Select("id")
		sb.From(tableContentItems)
		sb.Where(sb.Equal("id", id), sb.Equal("kind", string(kind)))
		sb.ForUpdate()
		query, args := sb.Build()

		var found string
		err := tx.QueryRowContext(ctx, query, args...).Scan(&found)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s [%s]: %w", kind, id, domain.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("locking %s: %w", kind, err)
		}

		if err := change(tx, id); err != nil {
			return fmt.Errorf("updating %s on %s: %w", interaction, kind, err)
		}

		cb := sqlbuilder.Select("COUNT(*)")
		cb.From(tableContentInteractions)
		cb.Where(cb.Equal("item_id", id), cb.Equal("interaction", string(interaction)))
		count, err = countRows(ctx, tx, cb)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) CreateContentItem(ctx context.Context, item domain.ContentItem) error {
	id, err := domain.ParseID(item.ID)
	if err != nil {
		return err
	}

	ib := sqlbuilder.InsertInto(tableContentItems)
	ib.Cols("id", "kind", "author_id", "title", "reference", "body", "created_at")
	ib.Values(id, string(item.Kind), item.AuthorID, item.Title, item.Reference, item.Body, item.CreatedAt)
	query, args := ib.Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting %s: %w", item.Kind, err)
	}
	return nil
}

func (r *Repository) ListLatestContentItems(
	ctx context.Context, kind domain.ContentKind, options domain.ContentListOptions,
) ([]domain.ContentItem, error) {
	limit, offset := paginationToLimitOffset(options.Page, options.PageSize)
	items, err := r.selectContentItems(ctx, func(sb *sqlbuilder.SelectBuilder) {
		conds := []string{sb.Equal("kind", string(kind))}
		if options.AuthorID != "" {
			conds = append(conds, sb.Equal("author_id", options.AuthorID))
		}
		sb.Where(conds...)
		sb.OrderBy("created_at DESC", "id DESC")
		sb.Limit(limit)
		sb.Offset(offset)
	})
	if err != nil {
		return nil, err
	}
	if err := r.attachInteractions(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) selectContentItems(
	ctx context.Context, build func(sb *sqlbuilder.SelectBuilder),
) ([]domain.ContentItem, error) {
	sb := sqlbuilder.Select("id", "kind", "author_id", "title", "reference", "body", "created_at")
	sb.From(tableContentItems)
	build(sb)

	items := []domain.ContentItem{}
	err := scanAll(ctx, r.db, sb, func(rows *sql.Rows) error {
		var item domain.ContentItem
		var kind string
		if err := rows.Scan(
			&item.ID, &kind, &item.AuthorID, &item.Title, &item.Reference, &item.Body, &item.CreatedAt,
		); err != nil {
			return err
		}
		item.Kind = domain.ContentKind(kind)
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("selecting content items: %w", err)
	}
	return items, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment domain.Comment) error {
	ib := sqlbuilder.InsertInto(tableComments)
	ib.Cols("id", "item_kind", "item_id", "author_id", "content", "created_at")
	ib.Values(
		comment.ID, string(comment.ContentKind), comment.ItemID, comment.AuthorID, comment.Content, comment.CreatedAt,
	)
	query, args := ib.Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}
	return nil
}

func (r *Repository) ListComments(
	ctx context.Context, kind domain.ContentKind, itemID string,
) ([]domain.Comment, error) {
	sb := sqlbuilder.Select("id", "item_kind", "item_id", "author_id", "content", "created_at")
	sb.From(tableComments)
	sb.Where(sb.Equal("item_kind", string(kind)), sb.Equal("item_id", itemID))
	sb.OrderBy("created_at", "id")

	comments := []domain.Comment{}
	err := scanAll(ctx, r.db, sb, func(rows *sql.Rows) error {
		var c domain.Comment
		var itemKind string
		if err := rows.Scan(&c.ID, &itemKind, &c.ItemID, &c.AuthorID, &c.Content, &c.CreatedAt); err != nil {
			return err
		}
		c.ContentKind = domain.ContentKind(itemKind)
		comments = append(comments, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}
