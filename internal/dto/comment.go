package dto

type CommentInput struct {
	Author string `json:"author,omitempty"`
	Body   string `json:"body"`
}
