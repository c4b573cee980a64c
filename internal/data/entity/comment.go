package entity

import (
	"time"
)

// Comment is a reply attached to a review. Author fields follow the same
// snapshot pattern as Review.
type Comment struct {
	CommentID   int64     `db:"comment_id"`
	ReviewID    int64     `db:"review_id"`
	UserID      string    `db:"user_id"`
	Comment     string    `db:"comment"`
	DisplayName string    `db:"displayname"`
	PhotoURL    string    `db:"photo_url"`
	CreatedAt   time.Time `db:"created_at"`
}
