package model

import (
	"net/http"
	"time"
)

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// PostDetail is a post with its author's display fields flattened in, the way
// the client renders a single post view.
type PostDetail struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
}

type CreatePostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type CreatePostResponse struct {
	Message string `json:"message"`
	Post    Post   `json:"post"`
}

func (CreatePostResponse) StatusCode() int {
	return http.StatusCreated
}

// FeedComment carries only what the feed view renders under each post.
type FeedComment struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Username string `json:"username"`
}

type FeedPost struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	ImageURL  string        `json:"image_url"`
	Likes     int           `json:"likes"`
	CreatedAt time.Time     `json:"created_at"`
	UserID    string        `json:"user_id"`
	Name      string        `json:"name"`
	Username  string        `json:"username"`
	Comments  []FeedComment `json:"comments"`
}

type GetFeedRequest struct {
	Page int `form:"page"`
}

type GetFeedResponse struct {
	Posts []FeedPost `json:"posts"`
}

type ToggleLikeRequest struct {
	PostID string `uri:"id"`
}

type ToggleLikeResponse struct {
	Message string `json:"message"`
	Likes   int    `json:"likes"`
}

type DeletePostRequest struct {
	PostID string `uri:"id"`
}

type DeletePostResponse struct {
	Message string `json:"message"`
}

type UpdatePostRequest struct {
	PostID  string `uri:"id" json:"-"`
	Content string `json:"content"`
}

type UpdatePostResponse struct {
	Message string `json:"message"`
	Post    Post   `json:"post"`
}

type GetPostRequest struct {
	PostID string `uri:"id"`
}

type GetPostResponse struct {
	Post     PostDetail `json:"post"`
	Comments []Comment  `json:"comments"`
}
