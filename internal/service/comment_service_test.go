package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPostComment(t *testing.T) {
	workoutRepo := newFakeWorkoutRepo()
	exerciseRepo := newFakeExerciseRepo()
	workoutSvc := NewWorkoutService(workoutRepo, exerciseRepo)
	commentSvc := NewCommentService(workoutRepo)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	created, err := workoutSvc.CreateWorkout(ctx, owner, "2026-09-01T10:00:00Z", nil)
	if err != nil {
		t.Fatalf("CreateWorkout: %v", err)
	}

	posted, err := commentSvc.PostComment(ctx, owner, created.ID, "felt strong today")
	if err != nil {
		t.Fatalf("PostComment: %v", err)
	}
	if posted.UserID != owner.Hex() {
		t.Errorf("projection userId = %q, want %q", posted.UserID, owner.Hex())
	}
	if posted.Text != "felt strong today" {
		t.Errorf("projection text = %q", posted.Text)
	}
	if posted.CreatedAt.IsZero() {
		t.Error("projection createdAt is zero")
	}
	if workoutRepo.commentCount(created.ID) != 1 {
		t.Errorf("comment count = %d, want 1", workoutRepo.commentCount(created.ID))
	}
}

func TestPostCommentMissingWorkout(t *testing.T) {
	workoutRepo := newFakeWorkoutRepo()
	exerciseRepo := newFakeExerciseRepo()
	workoutSvc := NewWorkoutService(workoutRepo, exerciseRepo)
	commentSvc := NewCommentService(workoutRepo)
	ctx := context.Background()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	created, err := workoutSvc.CreateWorkout(ctx, owner, "2026-09-01T10:00:00Z", nil)
	if err != nil {
		t.Fatalf("CreateWorkout: %v", err)
	}

	// Nonexistent workout.
	if _, err := commentSvc.PostComment(ctx, owner, primitive.NewObjectID(), "hello"); !errors.Is(err, ErrWorkoutNotFound) {
		t.Errorf("error = %v, want ErrWorkoutNotFound", err)
	}
	// Someone else's workout looks exactly the same.
	if _, err := commentSvc.PostComment(ctx, stranger, created.ID, "hello"); !errors.Is(err, ErrWorkoutNotFound) {
		t.Errorf("foreign workout error = %v, want ErrWorkoutNotFound", err)
	}
	if workoutRepo.commentCount(created.ID) != 0 {
		t.Errorf("comment count changed: %d, want 0", workoutRepo.commentCount(created.ID))
	}
}
