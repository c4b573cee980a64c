package entity

import (
	"time"
)

// Review is a user-authored rating plus text evaluation of a movie. The
// movie id points into the external metadata system; no local referential
// integrity exists for it. Displayname and PhotoURL are an immutable
// snapshot of the author's identity-provider profile at submission time.
type Review struct {
	ReviewID    int64     `db:"review_id"`
	MovieID     int64     `db:"movie_id"`
	UserID      string    `db:"user_id"`
	Rating      float64   `db:"rating"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	DisplayName string    `db:"displayname"`
	PhotoURL    string    `db:"photo_url"`
	CreatedAt   time.Time `db:"created_at"`
}

// ReviewStats aggregates a movie's local reviews.
type ReviewStats struct {
	AverageRating float64
	ReviewCount   int64
}
