package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category constrains products: every product created under it must supply
// all of RequiredAttributes in its attributes map. Name is the join key and
// is stored lower-cased.
type Category struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	RequiredAttributes StringList         `bson:"requiredAttributes" json:"requiredAttributes"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}
