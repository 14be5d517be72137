package rest

import (
	"github.com/sociogram/social-service/internal/model"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User      *model.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ForgotPasswordResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type VerifyResetTokenRequest struct {
	Token string `json:"token"`
}

type VerifyResetTokenResponse struct {
	Valid bool `json:"valid"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	User *model.User `json:"user"`
}

type FollowListResponse struct {
	Followers []model.FollowEntry `json:"followers,omitempty"`
	Following []model.FollowEntry `json:"following,omitempty"`
}

type CreatePostRequest struct {
	Content string `json:"content"`
}

type PostResponse struct {
	Post *model.Post `json:"post"`
}

type FeedResponse struct {
	Posts []model.PostView `json:"posts"`
}

type CreateCommentRequest struct {
	Content  string `json:"content"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

type CommentResponse struct {
	Comment *model.Comment `json:"comment"`
}

type CommentsResponse struct {
	Comments []*model.CommentView `json:"comments"`
}

type ToggleResponse struct {
	OK     bool   `json:"ok"`
	Action string `json:"action"`
	Likes  *int   `json:"likes,omitempty"`
}

type NotificationsResponse struct {
	Notifications []model.NotificationView `json:"notifications"`
}

type MessagesResponse struct {
	Messages model.MessageList `json:"messages"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type Error struct {
	Error string `json:"error"`
}
