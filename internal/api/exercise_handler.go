package api

import (
	"errors"
	"net/http"

	"trackfit/workout-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler serves the read-only catalog and per-slot progress
// updates.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	progressService service.ProgressService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, progressService service.ProgressService) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
		progressService: progressService,
	}
}

// --- Request DTOs ---

// MarkExerciseRequest updates completion state on a single slot. Completed
// is a pointer so that an explicit false still binds; actuals omitted here
// keep their stored values.
type MarkExerciseRequest struct {
	Completed  *bool `json:"completed" binding:"required"`
	ActualReps *int  `json:"actualReps"`
	ActualSets *int  `json:"actualSets"`
}

// --- Handler Methods ---

// GetExercises lists the exercise catalog.
func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	exercises, err := h.exerciseService.GetExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// MarkExercise sets completion and actuals on one exercise slot, scoped to
// the caller's workout.
func (h *ExerciseHandler) MarkExercise(c *gin.Context) {
	var req MarkExerciseRequest
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
		abortWithError(c, http.StatusNotFound, service.ErrExerciseEntryNotFound.Error())
		return
	}
	entryID, err := primitive.ObjectIDFromHex(c.Param("exerciseEntryId"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrExerciseEntryNotFound.Error())
		return
	}

	entry, err := h.progressService.UpdateExercise(c.Request.Context(), userID, workoutID, entryID, *req.Completed, req.ActualReps, req.ActualSets)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseEntryNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNegativeActuals):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
		}
		return
	}
	c.JSON(http.StatusOK, entry)
}
