package mongo

import (
	"context"
	"errors"
	"time"

	"trackfit/workout-api/internal/domain"
	"trackfit/workout-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository.
// Exercise slots and comments live inside the workout document, so the
// composite create, the nested replace, and the comment append are each a
// single atomic document write.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout together with its embedded exercise slots.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("workout requires an owning userId")
	}

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

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// GetByIDAndOwner retrieves a single workout scoped to its owner. A workout
// that exists but belongs to another user is indistinguishable from one
// that does not exist.
func (r *mongoWorkoutRepository) GetByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	filter := bson.M{"_id": id, "userId": ownerID}
	err := r.collection.FindOne(ctx, filter).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// List retrieves workouts matching the conjunctive filter, most recently
// scheduled first.
func (r *mongoWorkoutRepository) List(ctx context.Context, filter repository.WorkoutFilter) ([]domain.Workout, error) {
	query := bson.M{"userId": filter.OwnerID}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	scheduled := bson.M{}
	if filter.Start != nil {
		scheduled["$gte"] = *filter.Start
	}
	if filter.End != nil {
		scheduled["$lte"] = *filter.End
	}
	if len(scheduled) > 0 {
		query["scheduledAt"] = scheduled
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workouts := []domain.Workout{}
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Update applies a partial update scoped to the owner. Nil fields keep
// their stored values; a non-nil Exercises slice replaces the embedded
// list wholesale in the same write. Returns the updated workout.
func (r *mongoWorkoutRepository) Update(ctx context.Context, id, ownerID primitive.ObjectID, update repository.WorkoutUpdate) (*domain.Workout, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.ScheduledAt != nil {
		set["scheduledAt"] = *update.ScheduledAt
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Exercises != nil {
		set["exercises"] = update.Exercises
	}

	filter := bson.M{"_id": id, "userId": ownerID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, repository.ErrNotFound
	}

	return r.GetByIDAndOwner(ctx, id, ownerID)
}

// Delete removes a workout (with its embedded exercises and comments) and
// returns the removed document.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	filter := bson.M{"_id": id, "userId": ownerID}
	err := r.collection.FindOneAndDelete(ctx, filter).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// UpdateExerciseEntry performs the single scoped conditional update for
// marking progress on one slot. The filter matches entry, workout, and
// owner simultaneously, so "doesn't exist", "wrong workout", and "not
// owned" all collapse into ErrNotFound. Nil progress fields are left
// untouched (actuals are sticky across completion toggles).
func (r *mongoWorkoutRepository) UpdateExerciseEntry(ctx context.Context, workoutID, ownerID, entryID primitive.ObjectID, progress repository.ExerciseProgress) (*domain.WorkoutExercise, error) {
	set := bson.M{
		"exercises.$.completed": progress.Completed,
		"updatedAt":             time.Now().UTC(),
	}
	if progress.ActualReps != nil {
		set["exercises.$.actualReps"] = *progress.ActualReps
	}
	if progress.ActualSets != nil {
		set["exercises.$.actualSets"] = *progress.ActualSets
	}

	filter := bson.M{
		"_id":           workoutID,
		"userId":        ownerID,
		"exercises._id": entryID,
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, repository.ErrNotFound
	}

	// Re-read the updated entry.
	workout, err := r.GetByIDAndOwner(ctx, workoutID, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range workout.Exercises {
		if workout.Exercises[i].ID == entryID {
			return &workout.Exercises[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// AppendComment pushes a comment onto a workout in one conditional write;
// a zero match count means the workout is absent or not owned, so no
// comment is ever attached to a foreign workout.
func (r *mongoWorkoutRepository) AppendComment(ctx context.Context, workoutID, ownerID primitive.ObjectID, comment *domain.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now().UTC()

	filter := bson.M{"_id": workoutID, "userId": ownerID}
	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Ownership filter plus the default listing sort.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "scheduledAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
