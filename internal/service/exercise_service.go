package service

import (
	"context"

	"trackfit/workout-api/internal/domain"
	"trackfit/workout-api/internal/repository"
)

// ExerciseService exposes the read-only exercise catalog.
type ExerciseService interface {
	GetExercises(ctx context.Context) ([]domain.Exercise, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

// GetExercises lists the full catalog.
func (s *exerciseService) GetExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}
