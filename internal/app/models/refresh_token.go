package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RefreshToken stores only the SHA-256 digest of the opaque token; the
// plaintext never touches the database.
type RefreshToken struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	TokenHash string             `json:"-" bson:"tokenHash"`
	DeviceID  string             `json:"deviceId" bson:"deviceId,omitempty"`
	ExpiresAt time.Time          `json:"expiresAt" bson:"expiresAt"`
	Revoked   bool               `json:"revoked" bson:"revoked"`
	TimeModel `bson:",inline"`
}
