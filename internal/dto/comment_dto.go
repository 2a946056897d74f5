package dto

type CreateCommentRequest struct {
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail,omitempty"`
	Content     string `json:"content"`
}
