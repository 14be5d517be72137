package rest

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sociogram/social-service/internal/model"
	"github.com/sociogram/social-service/internal/pkg/password"
	db "github.com/sociogram/social-service/internal/repository/postgres"
)

const (
	feedLimit          = 100
	notificationsLimit = 50
	chatHistoryLimit   = 200

	resetTokenTTL = time.Hour
	// Returned for both known and unknown emails so the endpoint cannot be
	// used to probe which addresses are registered.
	resetRequestedMessage = "If the email exists, you will receive a recovery link"
)

type Handler struct {
	repository DBRepo
	notifier   Notifier
	presence   Broadcaster
	validator  Validator
	tokens     TokenIssuer
}

func New(
	repo DBRepo,
	notifier Notifier,
	presence Broadcaster,
	validator Validator,
	tokens TokenIssuer,
) *Handler {
	return &Handler{
		repository: repo,
		notifier:   notifier,
		presence:   presence,
		validator:  validator,
		tokens:     tokens,
	}
}

// Routes mounts the API surface on a router. The auth middleware is applied
// per-route because some reads are public.
func (h *Handler) Routes(auth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)
	r.Post("/auth/forgot-password", h.ForgotPassword)
	r.Post("/auth/reset-password", h.ResetPassword)
	r.Post("/auth/verify-reset-token", h.VerifyResetToken)

	r.With(auth).Get("/users/me", h.Me)
	r.Get("/users/{username}", h.GetUser)
	r.With(auth).Post("/users/{id}/follow", h.ToggleFollow)
	r.Get("/users/{id}/followers", h.GetFollowers)
	r.Get("/users/{id}/following", h.GetFollowing)

	r.With(auth).Post("/posts", h.CreatePost)
	r.With(auth).Get("/posts/feed", h.GetFeed)
	r.With(auth).Delete("/posts/{id}", h.DeletePost)
	r.Get("/posts/{postId}/comments", h.GetComments)
	r.With(auth).Post("/posts/{postId}/comments", h.CreateComment)
	r.With(auth).Delete("/comments/{id}", h.DeleteComment)

	r.With(auth).Post("/likes/{postId}/like", h.ToggleLike)

	r.With(auth).Get("/notifications", h.GetNotifications)
	r.With(auth).Post("/notifications/seen", h.MarkNotificationsSeen)

	r.With(auth).Get("/chat/history/{userId}", h.GetChatHistory)

	return r
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateRegister(req.Username, req.Email, req.Password); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	exists, err := h.repository.UserExists(r.Context(), req.Username, req.Email)
	if err != nil {
		logger.Error("failed to check user existence", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}
	if exists {
		writeError(w, "User or email already exists", http.StatusConflict)
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		logger.Error("failed to hash password", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	user, err := h.repository.CreateUser(r.Context(), req.Username, req.Email, hash)
	if err != nil {
		logger.Error("failed to create user", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	h.issueSession(w, r, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateLogin(req.Email, req.Password); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.repository.GetUserByEmail(r.Context(), req.Email)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		logger.Error("failed to get user", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	h.issueSession(w, r, user)
}

func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, user *model.User) {
	logger := loggerFromContext(r.Context())

	token, expiresAt, err := h.tokens.Issue(user.ID)
	if err != nil {
		logger.Error("failed to issue token", "user_id", user.ID, "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, AuthResponse{User: user, Token: token, ExpiresAt: expiresAt}, http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	writeJSON(w, OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, "Email is required", http.StatusBadRequest)
		return
	}

	user, err := h.repository.GetUserByEmail(r.Context(), req.Email)
	if errors.Is(err, db.ErrNotFound) {
		writeJSON(w, ForgotPasswordResponse{Message: resetRequestedMessage}, http.StatusOK)
		return
	}
	if err != nil {
		logger.Error("failed to get user", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	token, err := newResetToken()
	if err != nil {
		logger.Error("failed to generate reset token", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	if err := h.repository.InvalidateResetTokens(r.Context(), user.ID); err != nil {
		logger.Error("failed to invalidate reset tokens", "user_id", user.ID, "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	if err := h.repository.CreateResetToken(r.Context(), user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		logger.Error("failed to create reset token", "user_id", user.ID, "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	// Mail delivery is not wired up; the token travels back in the response.
	writeJSON(w, ForgotPasswordResponse{Message: resetRequestedMessage, Token: token}, http.StatusOK)
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Token == "" || req.NewPassword == "" {
		writeError(w, "Token and new password are required", http.StatusBadRequest)
		return
	}
	if len(req.NewPassword) < 6 {
		writeError(w, "password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	userID, err := h.repository.GetResetTokenUser(r.Context(), req.Token)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, "Invalid or expired token", http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Error("failed to get reset token", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		logger.Error("failed to hash password", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	if err := h.repository.UpdateUserPassword(r.Context(), userID, hash); err != nil {
		logger.Error("failed to update password", "user_id", userID, "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	if err := h.repository.MarkResetTokenUsed(r.Context(), req.Token); err != nil {
		logger.Error("failed to mark reset token used", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, MessageResponse{Message: "Password updated"}, http.StatusOK)
}

func (h *Handler) VerifyResetToken(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	var req VerifyResetTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Token == "" {
		writeJSON(w, VerifyResetTokenResponse{Valid: false}, http.StatusBadRequest)
		return
	}

	_, err := h.repository.GetResetTokenUser(r.Context(), req.Token)
	if errors.Is(err, db.ErrNotFound) {
		writeJSON(w, VerifyResetTokenResponse{Valid: false}, http.StatusOK)
		return
	}
	if err != nil {
		logger.Error("failed to get reset token", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, VerifyResetTokenResponse{Valid: true}, http.StatusOK)
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	user, err := h.repository.GetUserByID(r.Context(), userID)
	if err != nil {
		logger.Error("failed to get user", "user_id", userID, "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, UserResponse{User: user}, http.StatusOK)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	user, err := h.repository.GetUserByUsername(r.Context(), chi.URLParam(r, "username"))
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("failed to get user", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, UserResponse{User: user}, http.StatusOK)
}

func (h *Handler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	targetID, err := paramInt64(r, "id")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if targetID == userID {
		writeError(w, "Cannot follow yourself", http.StatusBadRequest)
		return
	}

	following, err := h.repository.IsFollowing(r.Context(), userID, targetID)
	if err != nil {
		logger.Error("failed to check follow", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	action := "followed"
	if following {
		action = "unfollowed"
		if err := h.repository.RemoveFollow(r.Context(), userID, targetID); err != nil {
			logger.Error("failed to remove follow", "err", err)
			writeError(w, "Server error", http.StatusInternalServerError)
			return
		}
	} else {
		if err := h.repository.AddFollow(r.Context(), userID, targetID); err != nil {
			logger.Error("failed to add follow", "err", err)
			writeError(w, "Server error", http.StatusInternalServerError)
			return
		}
		if err := h.notifier.Notify(r.Context(), targetID, userID, model.NotificationFollow, nil); err != nil {
			logger.Error("failed to fan out follow notification", "err", err)
		}
	}

	writeJSON(w, ToggleResponse{OK: true, Action: action}, http.StatusOK)
}

func (h *Handler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	targetID, err := paramInt64(r, "id")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	followers, err := h.repository.GetFollowers(r.Context(), targetID)
	if err != nil {
		logger.Error("failed to get followers", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, FollowListResponse{Followers: followers}, http.StatusOK)
}

func (h *Handler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	targetID, err := paramInt64(r, "id")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	following, err := h.repository.GetFollowing(r.Context(), targetID)
	if err != nil {
		logger.Error("failed to get following", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, FollowListResponse{Following: following}, http.StatusOK)
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateContent(req.Content); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.repository.CreatePost(r.Context(), userID, req.Content)
	if err != nil {
		logger.Error("failed to create post", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	h.presence.DeliverToAll(model.EventFeedChanged, model.FeedChangedPayload{})

	writeJSON(w, PostResponse{Post: post}, http.StatusOK)
}

func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	all := r.URL.Query().Get("all") == "true"

	posts, err := h.repository.GetFeed(r.Context(), userID, all, feedLimit)
	if err != nil {
		logger.Error("failed to get feed", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, FeedResponse{Posts: posts}, http.StatusOK)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	postID, err := paramInt64(r, "id")
	if err != nil {
		writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	err = h.repository.DeletePost(r.Context(), postID, userID)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, "Not found or not owner", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("failed to delete post", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	h.presence.DeliverToAll(model.EventFeedChanged, model.FeedChangedPayload{})

	writeJSON(w, OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	postID, err := paramInt64(r, "postId")
	if err != nil {
		writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ownerID, err := h.repository.GetPostOwner(r.Context(), postID)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("failed to get post owner", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	liked, err := h.repository.HasLiked(r.Context(), userID, postID)
	if err != nil {
		logger.Error("failed to check like", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	action := "liked"
	if liked {
		action = "unliked"
		if err := h.repository.RemoveLike(r.Context(), userID, postID); err != nil {
			logger.Error("failed to remove like", "err", err)
			writeError(w, "Server error", http.StatusInternalServerError)
			return
		}
		h.presence.DeliverToAll(model.EventFeedChanged, model.FeedChangedPayload{})
	} else {
		if err := h.repository.AddLike(r.Context(), userID, postID); err != nil {
			logger.Error("failed to add like", "err", err)
			writeError(w, "Server error", http.StatusInternalServerError)
			return
		}
		if err := h.notifier.Notify(r.Context(), ownerID, userID, model.NotificationLike, &postID); err != nil {
			logger.Error("failed to fan out like notification", "err", err)
		}
	}

	count, err := h.repository.CountLikes(r.Context(), postID)
	if err != nil {
		logger.Error("failed to count likes", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, ToggleResponse{OK: true, Action: action, Likes: &count}, http.StatusOK)
}

func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	postID, err := paramInt64(r, "postId")
	if err != nil {
		writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	comments, err := h.repository.GetPostComments(r.Context(), postID)
	if err != nil {
		logger.Error("failed to get comments", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, CommentsResponse{Comments: threadComments(comments)}, http.StatusOK)
}

// threadComments arranges a flat, chronologically ordered comment list into
// top-level comments with nested replies. Replies to missing parents are
// dropped, matching a parent deleted mid-listing.
func threadComments(comments []model.CommentView) []*model.CommentView {
	byID := make(map[int64]*model.CommentView, len(comments))
	topLevel := make([]*model.CommentView, 0, len(comments))

	for i := range comments {
		comment := &comments[i]
		comment.Replies = []*model.CommentView{}
		byID[comment.ID] = comment
	}

	for i := range comments {
		comment := &comments[i]
		if comment.ParentID == nil {
			topLevel = append(topLevel, comment)
			continue
		}
		if parent, ok := byID[*comment.ParentID]; ok {
			parent.Replies = append(parent.Replies, comment)
		}
	}

	return topLevel
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	postID, err := paramInt64(r, "postId")
	if err != nil {
		writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateContent(req.Content); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ownerID, err := h.repository.GetPostOwner(r.Context(), postID)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("failed to get post owner", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	comment, err := h.repository.AddComment(r.Context(), postID, userID, req.Content, req.ParentID)
	if err != nil {
		logger.Error("failed to add comment", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	if ownerID != userID {
		if err := h.notifier.Notify(r.Context(), ownerID, userID, model.NotificationComment, &postID); err != nil {
			logger.Error("failed to fan out comment notification", "err", err)
		}
	} else {
		h.presence.DeliverToAll(model.EventFeedChanged, model.FeedChangedPayload{})
	}

	writeJSON(w, CommentResponse{Comment: comment}, http.StatusOK)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	commentID, err := paramInt64(r, "id")
	if err != nil {
		writeError(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	err = h.repository.DeleteComment(r.Context(), commentID, userID)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, "Not found or not owner", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("failed to delete comment", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	h.presence.DeliverToAll(model.EventFeedChanged, model.FeedChangedPayload{})

	writeJSON(w, OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	notifications, err := h.repository.GetUserNotifications(r.Context(), userID, notificationsLimit)
	if err != nil {
		logger.Error("failed to get notifications", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, NotificationsResponse{Notifications: notifications}, http.StatusOK)
}

func (h *Handler) MarkNotificationsSeen(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if err := h.repository.MarkNotificationsSeen(r.Context(), userID); err != nil {
		logger.Error("failed to mark notifications seen", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	otherID, err := paramInt64(r, "userId")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	messages, err := h.repository.GetConversation(r.Context(), userID, otherID, chatHistoryLimit)
	if err != nil {
		logger.Error("failed to get chat history", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, MessagesResponse{Messages: messages}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func paramInt64(r *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %w", name, err)
	}
	return value, nil
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Error{Error: message})
}
