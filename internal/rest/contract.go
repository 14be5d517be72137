//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	"github.com/sociogram/social-service/internal/model"
)

type DBRepo interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	UserExists(ctx context.Context, username, email string) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) error

	InvalidateResetTokens(ctx context.Context, userID int64) error
	CreateResetToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetResetTokenUser(ctx context.Context, token string) (int64, error)
	MarkResetTokenUsed(ctx context.Context, token string) error

	GetConversation(ctx context.Context, userID, otherID int64, limit uint64) (model.MessageList, error)

	GetUserNotifications(ctx context.Context, userID int64, limit uint64) ([]model.NotificationView, error)
	MarkNotificationsSeen(ctx context.Context, userID int64) error

	CreatePost(ctx context.Context, userID int64, content string) (*model.Post, error)
	DeletePost(ctx context.Context, postID, userID int64) error
	GetPostOwner(ctx context.Context, postID int64) (int64, error)
	GetFeed(ctx context.Context, userID int64, all bool, limit uint64) ([]model.PostView, error)

	HasLiked(ctx context.Context, userID, postID int64) (bool, error)
	AddLike(ctx context.Context, userID, postID int64) error
	RemoveLike(ctx context.Context, userID, postID int64) error
	CountLikes(ctx context.Context, postID int64) (int, error)

	AddComment(ctx context.Context, postID, userID int64, content string, parentID *int64) (*model.Comment, error)
	GetPostComments(ctx context.Context, postID int64) ([]model.CommentView, error)
	DeleteComment(ctx context.Context, commentID, userID int64) error

	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
	AddFollow(ctx context.Context, followerID, followingID int64) error
	RemoveFollow(ctx context.Context, followerID, followingID int64) error
	GetFollowers(ctx context.Context, userID int64) ([]model.FollowEntry, error)
	GetFollowing(ctx context.Context, userID int64) ([]model.FollowEntry, error)
}

// Notifier is the fan-out hook write paths call after a durable mutation.
type Notifier interface {
	Notify(ctx context.Context, recipientID, actorID int64, kind string, refID *int64) error
}

// Broadcaster pushes an event to every connected client.
type Broadcaster interface {
	DeliverToAll(event string, payload any)
}

type TokenIssuer interface {
	Issue(userID int64) (string, int64, error)
}

type Validator interface {
	ValidateRegister(username, email, pass string) error
	ValidateLogin(email, pass string) error
	ValidateContent(content string) error
}
