//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package realtime

import (
	"context"

	"github.com/sociogram/social-service/internal/model"
)

type MessageStore interface {
	SaveMessage(ctx context.Context, senderID, recipientID int64, content string) (*model.Message, error)
}

type NotificationStore interface {
	SaveNotification(ctx context.Context, userID, actorID int64, kind string, refID *int64) (*model.Notification, error)
}

type TokenVerifier interface {
	Verify(tokenString string) (*model.AccessClaims, error)
}
