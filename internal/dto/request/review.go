package request

// CreateReviewRequest carries the denormalized author snapshot alongside the
// review body; the identity provider is consumed by the client, the API
// only stores what it is given.
type CreateReviewRequest struct {
	MovieID     int64   `json:"movie_id" validate:"required,gt=0"`
	UserID      string  `json:"user_id" validate:"required,max=128"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=10"`
	Title       string  `json:"title" validate:"required,max=200"`
	Content     string  `json:"content" validate:"required,max=5000"`
	DisplayName string  `json:"displayname" validate:"omitempty,max=100"`
	PhotoURL    string  `json:"photoUrl" validate:"omitempty,url,max=500"`
}
