package repository

import (
	"context"
	"time"

	"trackfit/workout-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer. Services translate these into
// their own domain errors; handlers never see them directly.
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("unique constraint violation")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// WorkoutFilter is the conjunctive filter for listing workouts. OwnerID is
// always applied; the optional fields narrow the result set further.
type WorkoutFilter struct {
	OwnerID primitive.ObjectID
	Status  *domain.WorkoutStatus
	Start   *time.Time // scheduledAt >= Start
	End     *time.Time // scheduledAt <= End
}

// ExerciseProgress carries the fields of a single slot update. Nil pointer
// fields keep their previously stored values.
type ExerciseProgress struct {
	Completed  bool
	ActualReps *int
	ActualSets *int
}

// WorkoutUpdate is a partial update of a workout. Nil fields are left
// untouched; a non-nil Exercises slice (even empty) replaces the entire
// embedded slot list.
type WorkoutUpdate struct {
	ScheduledAt *time.Time
	Status      *domain.WorkoutStatus
	Exercises   []domain.WorkoutExercise
}

// WorkoutRepository defines the interface for interacting with workout data.
// Every operation that touches an existing workout filters by owner, so a
// missing document and a document owned by someone else are the same outcome.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*domain.Workout, error)
	List(ctx context.Context, filter WorkoutFilter) ([]domain.Workout, error)
	Update(ctx context.Context, id, ownerID primitive.ObjectID, update WorkoutUpdate) (*domain.Workout, error)
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) (*domain.Workout, error)
	UpdateExerciseEntry(ctx context.Context, workoutID, ownerID, entryID primitive.ObjectID, progress ExerciseProgress) (*domain.WorkoutExercise, error)
	AppendComment(ctx context.Context, workoutID, ownerID primitive.ObjectID, comment *domain.Comment) error
}

// ExerciseRepository defines read access to the exercise catalog.
type ExerciseRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
}
