package api

import (
	"errors"
	"net/http"

	"trackfit/workout-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler holds the workout lifecycle service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request DTOs ---

// ExerciseSlotRequest is one slot in a submitted exercise list. Order in
// the array determines the stored sequence.
type ExerciseSlotRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	TargetReps *int   `json:"targetReps" binding:"omitempty,min=0"`
	TargetSets *int   `json:"targetSets" binding:"omitempty,min=0"`
}

type CreateWorkoutRequest struct {
	ScheduledAt string                `json:"scheduledAt" binding:"required"`
	Exercises   []ExerciseSlotRequest `json:"exercises"`
}

// UpdateWorkoutRequest carries a partial update. Omitted fields keep their
// stored values; a present exercises array (even empty) replaces the
// nested list wholesale.
type UpdateWorkoutRequest struct {
	ScheduledAt *string                `json:"scheduledAt"`
	Status      *string                `json:"status"`
	Exercises   *[]ExerciseSlotRequest `json:"exercises"`
}

func mapSlots(reqs []ExerciseSlotRequest) []service.ExerciseSlot {
	slots := make([]service.ExerciseSlot, len(reqs))
	for i, r := range reqs {
		slots[i] = service.ExerciseSlot{
			ExerciseID: r.ExerciseID,
			TargetReps: r.TargetReps,
			TargetSets: r.TargetSets,
		}
	}
	return slots
}

// --- Handler Methods ---

// CreateWorkout creates a workout with its exercise slots in one write.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), userID, req.ScheduledAt, mapSlots(req.Exercises))
	if err != nil {
		respondWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// GetWorkouts lists the caller's workouts filtered by status and
// scheduled-at bounds, most recent first.
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	params := service.ListWorkoutsParams{
		Status: c.Query("status"),
		Start:  c.Query("start"),
		End:    c.Query("end"),
	}

	workouts, err := h.workoutService.GetWorkouts(c.Request.Context(), userID, params)
	if err != nil {
		respondWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout returns a single workout owned by the caller.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(c.Param("workoutId"))
	if err != nil {
		// A malformed id cannot name an existing workout.
		abortWithError(c, http.StatusNotFound, service.ErrWorkoutNotFound.Error())
		return
	}

	workout, err := h.workoutService.GetWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		respondWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// UpdateWorkout applies a partial update, replacing the nested exercise
// list when one is supplied.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var req UpdateWorkoutRequest
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

	params := service.UpdateWorkoutParams{
		ScheduledAt: req.ScheduledAt,
		Status:      req.Status,
	}
	if req.Exercises != nil {
		params.Exercises = mapSlots(*req.Exercises)
		if params.Exercises == nil {
			params.Exercises = []service.ExerciseSlot{}
		}
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), userID, workoutID, params)
	if err != nil {
		respondWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout removes a workout and returns the removed document.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
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

	workout, err := h.workoutService.DeleteWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		respondWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// respondWorkoutError maps workout service errors onto HTTP statuses.
func respondWorkoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidStatusVal),
		errors.Is(err, service.ErrExerciseRef):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
