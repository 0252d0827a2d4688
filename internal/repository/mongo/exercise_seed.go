package mongo

import (
	"context"
	"time"

	"trackfit/workout-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultExercises is the reference catalog inserted at startup.
var DefaultExercises = []domain.Exercise{
	{Name: "Push-up", Description: "A bodyweight pushing exercise performed on the floor, targeting chest, shoulders, and triceps.", DefaultReps: 15, DefaultSets: 3},
	{Name: "Squat", Description: "A compound lower-body movement that strengthens quads, glutes, and hamstrings.", DefaultReps: 12, DefaultSets: 4},
	{Name: "Bench Press", Description: "A barbell or dumbbell pressing exercise that targets the chest, shoulders, and triceps.", DefaultReps: 10, DefaultSets: 3},
	{Name: "Deadlift", Description: "A compound lift that targets hamstrings, glutes, lower back, and core.", DefaultReps: 8, DefaultSets: 3},
	{Name: "Pull-up", Description: "A bodyweight pulling exercise targeting the lats, biceps, and upper back.", DefaultReps: 8, DefaultSets: 3},
	{Name: "Overhead Press", Description: "A standing barbell or dumbbell press that targets shoulders and triceps.", DefaultReps: 10, DefaultSets: 3},
	{Name: "Barbell Row", Description: "A bent-over row variation that targets the mid-back, lats, and biceps.", DefaultReps: 10, DefaultSets: 3},
	{Name: "Lunge", Description: "A unilateral lower-body movement working quads, glutes, and hamstrings.", DefaultReps: 12, DefaultSets: 3},
	{Name: "Plank", Description: "An isometric core exercise that targets abs, lower back, and shoulders.", DefaultReps: 1, DefaultSets: 3},
	{Name: "Bicep Curl", Description: "A dumbbell or barbell curl that isolates the biceps.", DefaultReps: 12, DefaultSets: 3},
	{Name: "Tricep Dip", Description: "A bodyweight or bench dip targeting the triceps and chest.", DefaultReps: 12, DefaultSets: 3},
	{Name: "Chest Fly", Description: "A dumbbell flye performed on a bench to isolate the chest muscles.", DefaultReps: 12, DefaultSets: 3},
	{Name: "Leg Press", Description: "A machine-based exercise that targets quads, hamstrings, and glutes.", DefaultReps: 12, DefaultSets: 4},
	{Name: "Calf Raise", Description: "A standing or seated movement to strengthen the calf muscles.", DefaultReps: 15, DefaultSets: 4},
	{Name: "Seated Row", Description: "A cable or machine row that targets mid-back and biceps.", DefaultReps: 10, DefaultSets: 3},
	{Name: "Hip Thrust", Description: "A glute bridge variation performed with a barbell to target the glutes and hamstrings.", DefaultReps: 12, DefaultSets: 3},
}

// SeedExercises upserts the default catalog keyed by name, so repeated
// startups leave existing entries untouched.
func SeedExercises(ctx context.Context, collection *mongo.Collection) error {
	now := time.Now().UTC()
	for _, exercise := range DefaultExercises {
		filter := bson.M{"name": exercise.Name}
		update := bson.M{
			"$setOnInsert": bson.M{
				"name":        exercise.Name,
				"description": exercise.Description,
				"defaultReps": exercise.DefaultReps,
				"defaultSets": exercise.DefaultSets,
				"createdAt":   now,
				"updatedAt":   now,
			},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := collection.UpdateOne(ctx, filter, update, opts); err != nil {
			return err
		}
	}
	return nil
}
