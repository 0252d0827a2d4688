package api

import (
	"errors"
	"net/http"

	"trackfit/workout-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentHandler holds the comment service dependency.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// PostCommentRequest carries the comment text. Text is a pointer so a
// missing field is distinguishable from an empty string.
type PostCommentRequest struct {
	Text *string `json:"text" binding:"required"`
}

// PostComment appends an immutable note to the caller's workout.
func (h *CommentHandler) PostComment(c *gin.Context) {
	var req PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(c.Param("workoutId"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrWorkoutNotFound.Error())
		return
	}

	comment, err := h.commentService.PostComment(c.Request.Context(), userID, workoutID, *req.Text)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
		}
		return
	}
	c.JSON(http.StatusCreated, comment)
}
