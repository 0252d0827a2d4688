package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is one entry in the read-only exercise catalog. Workout slots
// reference catalog entries by ID; nothing in this API mutates the catalog.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	DefaultReps int                `bson:"defaultReps" json:"defaultReps"`
	DefaultSets int                `bson:"defaultSets" json:"defaultSets"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
