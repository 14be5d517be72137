package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/sociogram/social-service/internal/config"
	"github.com/sociogram/social-service/internal/model"
)

var ErrNotFound = errors.New("not found")

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

// NewWithDB wraps an existing connection; used by tests.
func NewWithDB(db *sqlx.DB) *Repository {
	return &Repository{connection: db}
}

func (r *Repository) DB() *sql.DB {
	return r.connection.DB
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// ----------------------------- users -----------------------------

func (r *Repository) CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	query, args, err := sq.Insert("users").
		Columns("username", "email", "password_hash").
		Values(username, email, passwordHash).
		Suffix("RETURNING id, username, email, password_hash, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	err = r.connection.GetContext(ctx, &user, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}

	return &user, nil
}

func (r *Repository) UserExists(ctx context.Context, username, email string) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From("users").
		Where(sq.Or{
			sq.Eq{"username": username},
			sq.Eq{"email": email},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var exists bool
	err = r.connection.GetContext(ctx, &exists, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %v", err)
	}

	return exists, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{"username": username})
}

func (r *Repository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *Repository) getUser(ctx context.Context, pred sq.Eq) (*model.User, error) {
	query, args, err := sq.Select("id", "username", "email", "password_hash", "created_at").
		From("users").
		Where(pred).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	err = r.connection.GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	return &user, nil
}

// ----------------------------- password reset -----------------------------

func (r *Repository) InvalidateResetTokens(ctx context.Context, userID int64) error {
	query, args, err := sq.Update("password_reset_tokens").
		Set("used", true).
		Where(sq.Eq{"user_id": userID, "used": false}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to invalidate reset tokens: %v", err)
	}

	return nil
}

func (r *Repository) CreateResetToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	query, args, err := sq.Insert("password_reset_tokens").
		Columns("user_id", "token", "expires_at").
		Values(userID, token, expiresAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create reset token: %v", err)
	}

	return nil
}

// GetResetTokenUser resolves a token to its user id. Used and expired tokens
// resolve to ErrNotFound.
func (r *Repository) GetResetTokenUser(ctx context.Context, token string) (int64, error) {
	query, args, err := sq.Select("user_id").
		From("password_reset_tokens").
		Where(sq.And{
			sq.Eq{"token": token, "used": false},
			sq.Expr("expires_at > NOW()"),
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var userID int64
	err = r.connection.GetContext(ctx, &userID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get reset token: %v", err)
	}

	return userID, nil
}

func (r *Repository) MarkResetTokenUsed(ctx context.Context, token string) error {
	query, args, err := sq.Update("password_reset_tokens").
		Set("used", true).
		Where(sq.Eq{"token": token}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark reset token used: %v", err)
	}

	return nil
}

func (r *Repository) UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) error {
	query, args, err := sq.Update("users").
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user password: %v", err)
	}

	return nil
}

// ----------------------------- messages -----------------------------

func (r *Repository) SaveMessage(ctx context.Context, senderID, recipientID int64, content string) (*model.Message, error) {
	query, args, err := sq.Insert("messages").
		Columns("sender_id", "recipient_id", "content").
		Values(senderID, recipientID, content).
		Suffix("RETURNING id, sender_id, recipient_id, content, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.connection.GetContext(ctx, &message, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %v", err)
	}

	return &message, nil
}

func (r *Repository) GetConversation(ctx context.Context, userID, otherID int64, limit uint64) (model.MessageList, error) {
	query, args, err := sq.Select("id", "sender_id", "recipient_id", "content", "created_at").
		From("messages").
		Where(sq.Or{
			sq.And{sq.Eq{"sender_id": userID}, sq.Eq{"recipient_id": otherID}},
			sq.And{sq.Eq{"sender_id": otherID}, sq.Eq{"recipient_id": userID}},
		}).
		OrderBy("created_at ASC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.connection.SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %v", err)
	}

	return messages, nil
}

// ----------------------------- notifications -----------------------------

func (r *Repository) SaveNotification(ctx context.Context, userID, actorID int64, kind string, refID *int64) (*model.Notification, error) {
	query, args, err := sq.Insert("notifications").
		Columns("user_id", "actor_id", "type", "ref_id").
		Values(userID, actorID, kind, refID).
		Suffix("RETURNING id, user_id, actor_id, type, ref_id, seen, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var notification model.Notification
	err = r.connection.GetContext(ctx, &notification, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to save notification: %v", err)
	}

	return &notification, nil
}

func (r *Repository) GetUserNotifications(ctx context.Context, userID int64, limit uint64) ([]model.NotificationView, error) {
	query, args, err := sq.Select(
		"n.id",
		"n.user_id",
		"n.actor_id",
		"n.type",
		"n.ref_id",
		"n.seen",
		"n.created_at",
		"u.username AS actor_username",
	).
		From("notifications n").
		Join("users u ON u.id = n.actor_id").
		Where(sq.Eq{"n.user_id": userID}).
		OrderBy("n.created_at DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var notifications []model.NotificationView
	err = r.connection.SelectContext(ctx, &notifications, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %v", err)
	}

	return notifications, nil
}

func (r *Repository) MarkNotificationsSeen(ctx context.Context, userID int64) error {
	query, args, err := sq.Update("notifications").
		Set("seen", true).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark notifications seen: %v", err)
	}

	return nil
}

// ----------------------------- posts -----------------------------

func (r *Repository) CreatePost(ctx context.Context, userID int64, content string) (*model.Post, error) {
	query, args, err := sq.Insert("posts").
		Columns("user_id", "content").
		Values(userID, content).
		Suffix("RETURNING id, user_id, content, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var post model.Post
	err = r.connection.GetContext(ctx, &post, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %v", err)
	}

	return &post, nil
}

func (r *Repository) DeletePost(ctx context.Context, postID, userID int64) error {
	query, args, err := sq.Delete("posts").
		Where(sq.Eq{"id": postID, "user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete post: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) GetPostOwner(ctx context.Context, postID int64) (int64, error) {
	query, args, err := sq.Select("user_id").
		From("posts").
		Where(sq.Eq{"id": postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var ownerID int64
	err = r.connection.GetContext(ctx, &ownerID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get post owner: %v", err)
	}

	return ownerID, nil
}

func (r *Repository) GetFeed(ctx context.Context, userID int64, all bool, limit uint64) ([]model.PostView, error) {
	queryBuilder := sq.Select(
		"p.id",
		"p.user_id",
		"p.content",
		"p.created_at",
		"u.username",
		"(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes_count",
		"(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments_count",
	).
		From("posts p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.created_at DESC").
		Limit(limit)

	if !all {
		queryBuilder = queryBuilder.Where(
			"p.user_id = ? OR p.user_id IN (SELECT following_id FROM follows WHERE follower_id = ?)",
			userID, userID,
		)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var posts []model.PostView
	err = r.connection.SelectContext(ctx, &posts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get feed: %v", err)
	}

	return posts, nil
}

// ----------------------------- likes -----------------------------

func (r *Repository) HasLiked(ctx context.Context, userID, postID int64) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From("likes").
		Where(sq.Eq{"user_id": userID, "post_id": postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var liked bool
	err = r.connection.GetContext(ctx, &liked, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %v", err)
	}

	return liked, nil
}

func (r *Repository) AddLike(ctx context.Context, userID, postID int64) error {
	query, args, err := sq.Insert("likes").
		Columns("user_id", "post_id").
		Values(userID, postID).
		Suffix("ON CONFLICT (user_id, post_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to add like: %v", err)
	}

	return nil
}

func (r *Repository) RemoveLike(ctx context.Context, userID, postID int64) error {
	query, args, err := sq.Delete("likes").
		Where(sq.Eq{"user_id": userID, "post_id": postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove like: %v", err)
	}

	return nil
}

func (r *Repository) CountLikes(ctx context.Context, postID int64) (int, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("likes").
		Where(sq.Eq{"post_id": postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int
	err = r.connection.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %v", err)
	}

	return count, nil
}

// ----------------------------- comments -----------------------------

func (r *Repository) AddComment(ctx context.Context, postID, userID int64, content string, parentID *int64) (*model.Comment, error) {
	query, args, err := sq.Insert("comments").
		Columns("post_id", "user_id", "content", "parent_id").
		Values(postID, userID, content, parentID).
		Suffix("RETURNING id, post_id, user_id, content, parent_id, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var comment model.Comment
	err = r.connection.GetContext(ctx, &comment, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %v", err)
	}

	return &comment, nil
}

func (r *Repository) GetPostComments(ctx context.Context, postID int64) ([]model.CommentView, error) {
	query, args, err := sq.Select(
		"c.id",
		"c.post_id",
		"c.user_id",
		"c.content",
		"c.parent_id",
		"c.created_at",
		"u.username",
	).
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var comments []model.CommentView
	err = r.connection.SelectContext(ctx, &comments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}

	return comments, nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID, userID int64) error {
	query, args, err := sq.Delete("comments").
		Where(sq.Eq{"id": commentID, "user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ----------------------------- follows -----------------------------

func (r *Repository) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From("follows").
		Where(sq.Eq{"follower_id": followerID, "following_id": followingID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var following bool
	err = r.connection.GetContext(ctx, &following, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %v", err)
	}

	return following, nil
}

func (r *Repository) AddFollow(ctx context.Context, followerID, followingID int64) error {
	query, args, err := sq.Insert("follows").
		Columns("follower_id", "following_id").
		Values(followerID, followingID).
		Suffix("ON CONFLICT (follower_id, following_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to add follow: %v", err)
	}

	return nil
}

func (r *Repository) RemoveFollow(ctx context.Context, followerID, followingID int64) error {
	query, args, err := sq.Delete("follows").
		Where(sq.Eq{"follower_id": followerID, "following_id": followingID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove follow: %v", err)
	}

	return nil
}

func (r *Repository) GetFollowers(ctx context.Context, userID int64) ([]model.FollowEntry, error) {
	return r.getFollowEntries(ctx, "f.follower_id", sq.Eq{"f.following_id": userID})
}

func (r *Repository) GetFollowing(ctx context.Context, userID int64) ([]model.FollowEntry, error) {
	return r.getFollowEntries(ctx, "f.following_id", sq.Eq{"f.follower_id": userID})
}

func (r *Repository) getFollowEntries(ctx context.Context, joinColumn string, pred sq.Eq) ([]model.FollowEntry, error) {
	query, args, err := sq.Select("u.id", "u.username").
		From("follows f").
		Join("users u ON u.id = " + joinColumn).
		Where(pred).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var entries []model.FollowEntry
	err = r.connection.SelectContext(ctx, &entries, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get follow entries: %v", err)
	}

	return entries, nil
}
