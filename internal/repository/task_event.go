package repository

import (
	"context"
	"fmt"

	"github.com/St1cky1/taskboard/internal/entity"
	"go.mongodb.org/mongo-driver/mongo"
)

type TaskEventRepository struct {
	collection *mongo.Collection
}

func NewTaskEventRepository(collection *mongo.Collection) *TaskEventRepository {
	return &TaskEventRepository{
		collection: collection,
	}
}

func (r *TaskEventRepository) Create(ctx context.Context, event *entity.TaskEvent) error {
	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("%w: insert task event: %v", entity.ErrStoreFailure, err)
	}
	return nil
}
