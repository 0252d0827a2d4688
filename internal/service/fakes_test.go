package service

import (
	"context"
	"sort"
	"time"

	"trackfit/workout-api/internal/domain"
	"trackfit/workout-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes mirroring the contracts of the mongo
// implementations, including owner scoping and conditional updates.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrConflict
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

type fakeWorkoutRepo struct {
	workouts map[primitive.ObjectID]*domain.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]*domain.Workout)}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	if workout.Status == "" {
		workout.Status = domain.StatusPending
	}
	if workout.Exercises == nil {
		workout.Exercises = []domain.WorkoutExercise{}
	}
	if workout.Comments == nil {
		workout.Comments = []domain.Comment{}
	}
	stored := cloneWorkout(workout)
	r.workouts[workout.ID] = stored
	return workout.ID, nil
}

func (r *fakeWorkoutRepo) GetByIDAndOwner(_ context.Context, id, ownerID primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok || w.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	return cloneWorkout(w), nil
}

func (r *fakeWorkoutRepo) List(_ context.Context, filter repository.WorkoutFilter) ([]domain.Workout, error) {
	result := []domain.Workout{}
	for _, w := range r.workouts {
		if w.UserID != filter.OwnerID {
			continue
		}
		if filter.Status != nil && w.Status != *filter.Status {
			continue
		}
		if filter.Start != nil && w.ScheduledAt.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && w.ScheduledAt.After(*filter.End) {
			continue
		}
		result = append(result, *cloneWorkout(w))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ScheduledAt.After(result[j].ScheduledAt)
	})
	return result, nil
}

func (r *fakeWorkoutRepo) Update(_ context.Context, id, ownerID primitive.ObjectID, update repository.WorkoutUpdate) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok || w.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	if update.ScheduledAt != nil {
		w.ScheduledAt = *update.ScheduledAt
	}
	if update.Status != nil {
		w.Status = *update.Status
	}
	if update.Exercises != nil {
		w.Exercises = append([]domain.WorkoutExercise{}, update.Exercises...)
	}
	w.UpdatedAt = time.Now().UTC()
	return cloneWorkout(w), nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id, ownerID primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok || w.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	delete(r.workouts, id)
	return w, nil
}

func (r *fakeWorkoutRepo) UpdateExerciseEntry(_ context.Context, workoutID, ownerID, entryID primitive.ObjectID, progress repository.ExerciseProgress) (*domain.WorkoutExercise, error) {
	w, ok := r.workouts[workoutID]
	if !ok || w.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	for i := range w.Exercises {
		if w.Exercises[i].ID != entryID {
			continue
		}
		w.Exercises[i].Completed = progress.Completed
		if progress.ActualReps != nil {
			reps := *progress.ActualReps
			w.Exercises[i].ActualReps = &reps
		}
		if progress.ActualSets != nil {
			sets := *progress.ActualSets
			w.Exercises[i].ActualSets = &sets
		}
		entry := w.Exercises[i]
		return &entry, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWorkoutRepo) AppendComment(_ context.Context, workoutID, ownerID primitive.ObjectID, comment *domain.Comment) error {
	w, ok := r.workouts[workoutID]
	if !ok || w.UserID != ownerID {
		return repository.ErrNotFound
	}
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now().UTC()
	w.Comments = append(w.Comments, *comment)
	return nil
}

func (r *fakeWorkoutRepo) commentCount(workoutID primitive.ObjectID) int {
	w, ok := r.workouts[workoutID]
	if !ok {
		return 0
	}
	return len(w.Comments)
}

func cloneWorkout(w *domain.Workout) *domain.Workout {
	copied := *w
	copied.Exercises = append([]domain.WorkoutExercise{}, w.Exercises...)
	copied.Comments = append([]domain.Comment{}, w.Comments...)
	return &copied
}

type fakeExerciseRepo struct {
	exercises []domain.Exercise
}

func newFakeExerciseRepo(names ...string) *fakeExerciseRepo {
	repo := &fakeExerciseRepo{}
	for i, name := range names {
		repo.exercises = append(repo.exercises, domain.Exercise{
			ID:          primitive.NewObjectID(),
			Name:        name,
			DefaultReps: 10 + i,
			DefaultSets: 3,
		})
	}
	return repo
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	for i := range r.exercises {
		if r.exercises[i].ID == id {
			copied := r.exercises[i]
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeExerciseRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	found := []domain.Exercise{}
	seen := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		for i := range r.exercises {
			if r.exercises[i].ID == id {
				found = append(found, r.exercises[i])
			}
		}
	}
	return found, nil
}

func (r *fakeExerciseRepo) List(_ context.Context) ([]domain.Exercise, error) {
	return append([]domain.Exercise{}, r.exercises...), nil
}
