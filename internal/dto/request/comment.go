package request

type CreateCommentRequest struct {
	UserID      string `json:"user_id" validate:"required,max=128"`
	ReviewID    int64  `json:"review_id" validate:"required,gt=0"`
	Comment     string `json:"comment" validate:"required,max=2000"`
	DisplayName string `json:"displayname" validate:"omitempty,max=100"`
	PhotoURL    string `json:"photoUrl" validate:"omitempty,url,max=500"`
}
