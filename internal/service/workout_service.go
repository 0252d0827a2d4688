package service

import (
	"context"
	"errors"
	"time"

	"trackfit/workout-api/internal/domain"
	"trackfit/workout-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrInvalidDate      = errors.New("date must be a valid ISO-8601 timestamp")
	ErrExerciseRef      = errors.New("referenced exercise not found")
	ErrInvalidStatusVal = errors.New("status must be one of pending, completed, cancelled")
)

// ExerciseSlot is one requested slot when creating or replacing a
// workout's exercise list. Sequence is never supplied by the caller; it is
// assigned from submission order.
type ExerciseSlot struct {
	ExerciseID string
	TargetReps *int
	TargetSets *int
}

// ListWorkoutsParams are the optional listing filters, raw as received.
// Empty strings mean "not supplied".
type ListWorkoutsParams struct {
	Status string
	Start  string
	End    string
}

// UpdateWorkoutParams is the partial update payload. Nil fields retain
// their stored values; a non-nil Exercises slice (even empty) replaces the
// whole nested list.
type UpdateWorkoutParams struct {
	ScheduledAt *string
	Status      *string
	Exercises   []ExerciseSlot
}

// ExerciseEntryDetails is a workout slot joined with its catalog entry.
type ExerciseEntryDetails struct {
	domain.WorkoutExercise
	Exercise *domain.Exercise `json:"exercise,omitempty"`
}

// WorkoutDetails is a workout with its slots resolved against the catalog.
type WorkoutDetails struct {
	domain.Workout
	Exercises []ExerciseEntryDetails `json:"exercises"`
}

// WorkoutService covers the workout lifecycle: create, list with filters,
// get, partial update with destructive nested replace, and delete.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID primitive.ObjectID, scheduledAt string, slots []ExerciseSlot) (*WorkoutDetails, error)
	GetWorkouts(ctx context.Context, userID primitive.ObjectID, params ListWorkoutsParams) ([]WorkoutDetails, error)
	GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*WorkoutDetails, error)
	UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, params UpdateWorkoutParams) (*WorkoutDetails, error)
	DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*WorkoutDetails, error)
}

// --- Service Implementation ---

type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, exerciseRepo repository.ExerciseRepository) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
	}
}

// CreateWorkout persists a workout and its slots as one composite write.
// Slots get dense 1-based sequence values in submission order.
func (s *workoutService) CreateWorkout(ctx context.Context, userID primitive.ObjectID, scheduledAt string, slots []ExerciseSlot) (*WorkoutDetails, error) {
	when, err := time.Parse(time.RFC3339, scheduledAt)
	if err != nil {
		return nil, ErrInvalidDate
	}

	entries, err := s.buildEntries(ctx, slots)
	if err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		UserID:      userID,
		ScheduledAt: when,
		Status:      domain.StatusPending,
		Exercises:   entries,
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = workoutID

	return s.resolveDetails(ctx, workout)
}

// GetWorkouts lists the caller's workouts, most recently scheduled first.
// The filter is conjunctive: owner always, plus any supplied bounds.
func (s *workoutService) GetWorkouts(ctx context.Context, userID primitive.ObjectID, params ListWorkoutsParams) ([]WorkoutDetails, error) {
	filter := repository.WorkoutFilter{OwnerID: userID}

	if params.Status != "" {
		status, err := domain.ParseWorkoutStatus(params.Status)
		if err != nil {
			return nil, ErrInvalidStatusVal
		}
		filter.Status = &status
	}
	if params.Start != "" {
		start, err := time.Parse(time.RFC3339, params.Start)
		if err != nil {
			return nil, ErrInvalidDate
		}
		filter.Start = &start
	}
	if params.End != "" {
		end, err := time.Parse(time.RFC3339, params.End)
		if err != nil {
			return nil, ErrInvalidDate
		}
		filter.End = &end
	}

	workouts, err := s.workoutRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	details := make([]WorkoutDetails, 0, len(workouts))
	for i := range workouts {
		d, err := s.resolveDetails(ctx, &workouts[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

// GetWorkout retrieves a single workout scoped to its owner.
func (s *workoutService) GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*WorkoutDetails, error) {
	workout, err := s.workoutRepo.GetByIDAndOwner(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return s.resolveDetails(ctx, workout)
}

// UpdateWorkout applies a partial update. Ownership is checked before any
// field validation; a supplied exercise list replaces the stored one
// wholesale with freshly assigned sequences.
func (s *workoutService) UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, params UpdateWorkoutParams) (*WorkoutDetails, error) {
	if _, err := s.workoutRepo.GetByIDAndOwner(ctx, workoutID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	update := repository.WorkoutUpdate{}

	if params.ScheduledAt != nil {
		when, err := time.Parse(time.RFC3339, *params.ScheduledAt)
		if err != nil {
			return nil, ErrInvalidDate
		}
		update.ScheduledAt = &when
	}
	if params.Status != nil {
		status, err := domain.ParseWorkoutStatus(*params.Status)
		if err != nil {
			return nil, ErrInvalidStatusVal
		}
		update.Status = &status
	}
	if params.Exercises != nil {
		entries, err := s.buildEntries(ctx, params.Exercises)
		if err != nil {
			return nil, err
		}
		update.Exercises = entries
	}

	workout, err := s.workoutRepo.Update(ctx, workoutID, userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return s.resolveDetails(ctx, workout)
}

// DeleteWorkout removes a workout along with its embedded exercises and
// comments, returning the removed workout.
func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*WorkoutDetails, error) {
	workout, err := s.workoutRepo.Delete(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return s.resolveDetails(ctx, workout)
}

// buildEntries validates the requested slots against the catalog and
// assigns dense 1-based sequence values in submission order. Old sequence
// or entry ids are never reused; every call mints fresh entries.
func (s *workoutService) buildEntries(ctx context.Context, slots []ExerciseSlot) ([]domain.WorkoutExercise, error) {
	entries := make([]domain.WorkoutExercise, 0, len(slots))
	if len(slots) == 0 {
		return entries, nil
	}

	ids := make([]primitive.ObjectID, 0, len(slots))
	for _, slot := range slots {
		id, err := primitive.ObjectIDFromHex(slot.ExerciseID)
		if err != nil {
			return nil, ErrExerciseRef
		}
		ids = append(ids, id)
	}

	found, err := s.exerciseRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	known := make(map[primitive.ObjectID]bool, len(found))
	for _, ex := range found {
		known[ex.ID] = true
	}

	for i, slot := range slots {
		if !known[ids[i]] {
			return nil, ErrExerciseRef
		}
		entries = append(entries, domain.WorkoutExercise{
			ID:         primitive.NewObjectID(),
			ExerciseID: ids[i],
			Sequence:   i + 1,
			TargetReps: slot.TargetReps,
			TargetSets: slot.TargetSets,
		})
	}
	return entries, nil
}

// resolveDetails joins a workout's slots with their catalog entries.
func (s *workoutService) resolveDetails(ctx context.Context, workout *domain.Workout) (*WorkoutDetails, error) {
	ids := make([]primitive.ObjectID, 0, len(workout.Exercises))
	for _, entry := range workout.Exercises {
		ids = append(ids, entry.ExerciseID)
	}

	catalog, err := s.exerciseRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]*domain.Exercise, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	entries := make([]ExerciseEntryDetails, 0, len(workout.Exercises))
	for _, entry := range workout.Exercises {
		entries = append(entries, ExerciseEntryDetails{
			WorkoutExercise: entry,
			Exercise:        byID[entry.ExerciseID],
		})
	}

	return &WorkoutDetails{Workout: *workout, Exercises: entries}, nil
}
