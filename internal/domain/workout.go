package domain

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutStatus is the lifecycle state of a workout session.
type WorkoutStatus string

const (
	StatusPending   WorkoutStatus = "PENDING"
	StatusCompleted WorkoutStatus = "COMPLETED"
	StatusCancelled WorkoutStatus = "CANCELLED"
)

var ErrInvalidStatus = errors.New("invalid workout status")

// ParseWorkoutStatus converts a case-insensitive status string into a
// WorkoutStatus, rejecting values outside the known set.
func ParseWorkoutStatus(s string) (WorkoutStatus, error) {
	switch WorkoutStatus(strings.ToUpper(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	}
	return "", ErrInvalidStatus
}

// Workout is a scheduled workout session owned by exactly one user.
// Exercise slots and comments are embedded subdocuments, so the composite
// create and the nested replace are each a single document write.
type Workout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	ScheduledAt time.Time          `bson:"scheduledAt" json:"scheduledAt"`
	Status      WorkoutStatus      `bson:"status" json:"status"`
	Exercises   []WorkoutExercise  `bson:"exercises" json:"exercises"`
	Comments    []Comment          `bson:"comments" json:"comments"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutExercise is one slot in a workout's ordered exercise list.
// Sequence is 1-based and dense, reassigned on every create/replace.
type WorkoutExercise struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Sequence   int                `bson:"sequence" json:"sequence"`
	TargetReps *int               `bson:"targetReps,omitempty" json:"targetReps,omitempty"`
	TargetSets *int               `bson:"targetSets,omitempty" json:"targetSets,omitempty"`
	Completed  bool               `bson:"completed" json:"completed"`
	ActualReps *int               `bson:"actualReps,omitempty" json:"actualReps,omitempty"`
	ActualSets *int               `bson:"actualSets,omitempty" json:"actualSets,omitempty"`
}

// Comment is an immutable text note attached to a workout.
// The ID is internal; the API projection exposes only author, text and time.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"-"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
