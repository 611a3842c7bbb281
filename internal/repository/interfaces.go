package repository

import (
	"context"

	"github.com/St1cky1/taskboard/internal/entity"
)

// ITaskRepository - интерфейс для TaskRepository
type ITaskRepository interface {
	List(ctx context.Context) ([]entity.Task, error)
	Create(ctx context.Context, task *entity.CreateTaskRequest) (*entity.InsertResult, error)
	Update(ctx context.Context, id string, updates map[string]any) (*entity.UpdateResult, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
}

// ITaskEventRepository - интерфейс для TaskEventRepository
type ITaskEventRepository interface {
	Create(ctx context.Context, event *entity.TaskEvent) error
}
