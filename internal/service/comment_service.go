package service

import (
	"context"
	"errors"
	"time"

	"trackfit/workout-api/internal/domain"
	"trackfit/workout-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentProjection is the shape returned after posting a comment: author,
// text, and creation time. The comment's own id is deliberately absent.
type CommentProjection struct {
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentService appends immutable text notes to workouts.
type CommentService interface {
	PostComment(ctx context.Context, userID, workoutID primitive.ObjectID, text string) (*CommentProjection, error)
}

// --- Service Implementation ---

type commentService struct {
	workoutRepo repository.WorkoutRepository
}

// NewCommentService creates a new instance of commentService.
func NewCommentService(workoutRepo repository.WorkoutRepository) CommentService {
	return &commentService{workoutRepo: workoutRepo}
}

// PostComment attaches a comment to the caller's workout. The append is a
// single conditional write on the workout document, so a concurrent delete
// of the workout cannot leave an orphaned comment behind.
func (s *commentService) PostComment(ctx context.Context, userID, workoutID primitive.ObjectID, text string) (*CommentProjection, error) {
	comment := &domain.Comment{
		UserID: userID,
		Text:   text,
	}

	if err := s.workoutRepo.AppendComment(ctx, workoutID, userID, comment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	return &CommentProjection{
		UserID:    comment.UserID.Hex(),
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}, nil
}
