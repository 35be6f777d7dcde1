package domain

import "time"

type Comment struct {
	ID          string      `json:"id"`
	ContentKind ContentKind `json:"item_kind"`
	ItemID      string      `json:"item_id"`
	AuthorID    string      `json:"author_id"`
	Content     string      `json:"content"`
	CreatedAt   time.Time   `json:"created_at"`
}
