package service

import (
	"context"
	"errors"

	"trackfit/workout-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseEntryNotFound = errors.New("exercise entry not found")
	ErrNegativeActuals       = errors.New("actualReps and actualSets must be non-negative numbers")
)

// ProgressService marks completion and actuals on a single exercise slot,
// scoped to owner and workout in one conditional write.
type ProgressService interface {
	UpdateExercise(ctx context.Context, userID, workoutID, entryID primitive.ObjectID, completed bool, actualReps, actualSets *int) (*ExerciseEntryDetails, error)
}

// --- Service Implementation ---

type progressService struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(workoutRepo repository.WorkoutRepository, exerciseRepo repository.ExerciseRepository) ProgressService {
	return &progressService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
	}
}

// UpdateExercise validates the supplied actuals, then issues the single
// conditional update matching entry, workout, and owner at once. A zero
// match means not found, whatever the sub-cause. Fields not supplied keep
// their previously stored values.
func (s *progressService) UpdateExercise(ctx context.Context, userID, workoutID, entryID primitive.ObjectID, completed bool, actualReps, actualSets *int) (*ExerciseEntryDetails, error) {
	if actualReps != nil && *actualReps < 0 {
		return nil, ErrNegativeActuals
	}
	if actualSets != nil && *actualSets < 0 {
		return nil, ErrNegativeActuals
	}

	progress := repository.ExerciseProgress{
		Completed:  completed,
		ActualReps: actualReps,
		ActualSets: actualSets,
	}

	entry, err := s.workoutRepo.UpdateExerciseEntry(ctx, workoutID, userID, entryID, progress)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseEntryNotFound
		}
		return nil, err
	}

	details := &ExerciseEntryDetails{WorkoutExercise: *entry}
	exercise, err := s.exerciseRepo.GetByID(ctx, entry.ExerciseID)
	if err == nil {
		details.Exercise = exercise
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return details, nil
}
