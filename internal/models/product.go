package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. Attributes is an open schema: which keys must
// be present is dictated by the product's category, checked at creation time.
type Product struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Brand             string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Price             float64            `bson:"price" json:"price"`
	AvailableQuantity int                `bson:"availableQuantity" json:"availableQuantity"`
	Description       string             `bson:"description" json:"description"`
	CategoryName      string             `bson:"categoryName" json:"categoryName"`
	Images            StringList         `bson:"images,omitempty" json:"images,omitempty"`
	Tags              StringList         `bson:"tags,omitempty" json:"tags,omitempty"`
	BoardSize         string             `bson:"boardSize,omitempty" json:"boardSize,omitempty"`
	AverageRating     float64            `bson:"averageRating" json:"averageRating"`
	Attributes        map[string]string  `bson:"attributes" json:"attributes"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

// ProductEdit carries the only fields the edit operation may overwrite.
// CategoryName and Attributes are fixed after creation.
type ProductEdit struct {
	Name              string
	Price             float64
	AvailableQuantity int
	Description       string
}
