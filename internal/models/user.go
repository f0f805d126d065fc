package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a service account used only to issue tokens for the elevated
// catalog operations. There is no self-service registration.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
