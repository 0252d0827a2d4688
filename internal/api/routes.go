package api

import (
	"net/http"

	"trackfit/workout-api/internal/service"
	"trackfit/workout-api/internal/token"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers onto the router. Everything under the
// protected group requires a verified bearer token; only /ping and the
// auth endpoints are open.
func SetupRoutes(
	router *gin.Engine,
	issuer *token.Issuer,
	authService service.AuthService,
	workoutService service.WorkoutService,
	progressService service.ProgressService,
	commentService service.CommentService,
	exerciseService service.ExerciseService,
) {
	authHandler := NewAuthHandler(authService)
	workoutHandler := NewWorkoutHandler(workoutService)
	exerciseHandler := NewExerciseHandler(exerciseService, progressService)
	commentHandler := NewCommentHandler(commentService)

	router.Use(RequestIDMiddleware())

	// Liveness probe, outside the auth gate.
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(issuer))
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		protected.GET("/exercises", exerciseHandler.GetExercises)

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.GetWorkouts)
			workoutGroup.GET("/:workoutId", workoutHandler.GetWorkout)
			workoutGroup.PATCH("/:workoutId", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:workoutId", workoutHandler.DeleteWorkout)

			workoutGroup.PATCH("/:workoutId/exercises/:exerciseEntryId", exerciseHandler.MarkExercise)
			workoutGroup.POST("/:workoutId/comments", commentHandler.PostComment)
		}
	}
}
