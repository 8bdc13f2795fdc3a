package model

import (
	"net/http"
	"time"
)

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
}

type AddCommentRequest struct {
	PostID  string `uri:"postId" json:"-"`
	Content string `json:"content"`
}

type AddCommentResponse struct {
	Message string  `json:"message"`
	Comment Comment `json:"comment"`
}

func (AddCommentResponse) StatusCode() int {
	return http.StatusCreated
}

type ListCommentsRequest struct {
	PostID string `uri:"postId"`
}

type ListCommentsResponse struct {
	Comments []Comment `json:"comments"`
}

type DeleteCommentRequest struct {
	CommentID string `uri:"id"`
}

type DeleteCommentResponse struct {
	Message string `json:"message"`
}
