package repository

import (
	"context"
	"fmt"

	"github.com/St1cky1/taskboard/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TaskRepository struct {
	collection *mongo.Collection
}

func NewTaskRepository(collection *mongo.Collection) *TaskRepository {
	return &TaskRepository{
		collection: collection,
	}
}

// List - вся коллекция без фильтров, порядок отдаёт хранилище
func (r *TaskRepository) List(ctx context.Context) ([]entity.Task, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: find tasks: %v", entity.ErrStoreFailure, err)
	}
	defer cursor.Close(ctx)

	tasks := []entity.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("%w: decode tasks: %v", entity.ErrStoreFailure, err)
	}

	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *entity.CreateTaskRequest) (*entity.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("%w: insert task: %v", entity.ErrStoreFailure, err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected inserted id type %T", entity.ErrStoreFailure, result.InsertedID)
	}

	return &entity.InsertResult{InsertedID: insertedID.Hex()}, nil
}

// Update - частичное обновление через $set, нулевое совпадение не ошибка
func (r *TaskRepository) Update(ctx context.Context, id string, updates map[string]any) (*entity.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", entity.ErrInvalidTaskID, id, err)
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updates},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: update task: %v", entity.ErrStoreFailure, err)
	}

	return &entity.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// Delete - нулевое совпадение тоже не ошибка
func (r *TaskRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", entity.ErrInvalidTaskID, id, err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("%w: delete task: %v", entity.ErrStoreFailure, err)
	}

	return &entity.DeleteResult{DeletedCount: result.DeletedCount}, nil
}
