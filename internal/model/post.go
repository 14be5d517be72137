package model

import (
	"time"
)

type Post struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PostView is a feed row: the post plus author and counters.
type PostView struct {
	Post
	Username      string `db:"username" json:"username"`
	LikesCount    int    `db:"likes_count" json:"likes_count"`
	CommentsCount int    `db:"comments_count" json:"comments_count"`
}

type Comment struct {
	ID        int64     `db:"id" json:"id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	ParentID  *int64    `db:"parent_id" json:"parent_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CommentView struct {
	Comment
	Username string         `db:"username" json:"username"`
	Replies  []*CommentView `db:"-" json:"replies"`
}
