package client_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/St1cky1/taskboard/internal/api"
	"github.com/St1cky1/taskboard/internal/client"
	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/St1cky1/taskboard/internal/repository"
	"github.com/St1cky1/taskboard/internal/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memRepository - хранилище в памяти вместо MongoDB для сквозных тестов
type memRepository struct {
	mu    sync.Mutex
	tasks []entity.Task
}

var _ repository.ITaskRepository = (*memRepository)(nil)

func (r *memRepository) List(ctx context.Context) ([]entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *memRepository) Create(ctx context.Context, req *entity.CreateTaskRequest) (*entity.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task := entity.Task{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	}
	r.tasks = append(r.tasks, task)
	return &entity.InsertResult{InsertedID: task.ID.Hex()}, nil
}

func (r *memRepository) Update(ctx context.Context, id string, updates map[string]any) (*entity.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, entity.ErrInvalidTaskID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := &entity.UpdateResult{}
	for i := range r.tasks {
		if r.tasks[i].ID.Hex() != id {
			continue
		}
		result.MatchedCount = 1
		result.ModifiedCount = 1
		for field, value := range updates {
			switch field {
			case "title":
				r.tasks[i].Title = value.(string)
			case "description":
				r.tasks[i].Description = value.(string)
			case "priority":
				r.tasks[i].Priority = value.(entity.TaskPriority)
			case "status":
				r.tasks[i].Status = value.(entity.TaskStatus)
			}
		}
	}
	return result, nil
}

func (r *memRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, entity.ErrInvalidTaskID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := &entity.DeleteResult{}
	kept := r.tasks[:0]
	for _, t := range r.tasks {
		if t.ID.Hex() == id {
			result.DeletedCount++
			continue
		}
		kept = append(kept, t)
	}
	r.tasks = kept
	return result, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *client.Client) {
	t.Helper()

	server := httptest.NewServer(api.NewRouter(usecase.NewTaskService(&memRepository{}, nil)))
	t.Cleanup(server.Close)
	return server, client.New(server.URL)
}

func TestCreateListRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, c := newTestServer(t)

	result, err := c.CreateTask(ctx, &entity.CreateTaskRequest{
		Title:       "Write spec",
		Description: "Draft section 8",
		Priority:    entity.PriorityHigh,
		Status:      entity.StatusPending,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.InsertedID == "" {
		t.Fatal("Expected a store-assigned id")
	}

	tasks, err := c.ListTasks(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(tasks) != 1 {
		t.Fatalf("Expected exactly one task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.ID.Hex() != result.InsertedID {
		t.Errorf("Expected id %s, got %s", result.InsertedID, task.ID.Hex())
	}
	if task.Title != "Write spec" || task.Description != "Draft section 8" ||
		task.Priority != entity.PriorityHigh || task.Status != entity.StatusPending {
		t.Errorf("Expected the submitted fields back, got %+v", task)
	}
}

func TestPartialUpdatePreservesFields(t *testing.T) {
	ctx := context.Background()
	_, c := newTestServer(t)

	created, err := c.CreateTask(ctx, &entity.CreateTaskRequest{
		Title:       "A",
		Description: "B",
		Priority:    entity.PriorityLow,
		Status:      entity.StatusPending,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	status := entity.StatusCompleted
	updated, err := c.UpdateTask(ctx, created.InsertedID, &entity.TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.MatchedCount != 1 || updated.ModifiedCount != 1 {
		t.Errorf("Expected counts 1/1, got %d/%d", updated.MatchedCount, updated.ModifiedCount)
	}

	tasks, err := c.ListTasks(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	task := tasks[0]
	if task.Status != entity.StatusCompleted {
		t.Errorf("Expected completed status, got %s", task.Status)
	}
	if task.Title != "A" || task.Description != "B" || task.Priority != entity.PriorityLow {
		t.Errorf("Expected untouched fields preserved, got %+v", task)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	_, c := newTestServer(t)

	created, err := c.CreateTask(ctx, &entity.CreateTaskRequest{
		Title:       "A",
		Description: "B",
		Priority:    entity.PriorityLow,
		Status:      entity.StatusPending,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	first, err := c.DeleteTask(ctx, created.InsertedID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first.DeletedCount != 1 {
		t.Errorf("Expected one deletion, got %d", first.DeletedCount)
	}

	// Повторное удаление - успех с нулевым счетчиком, не ошибка
	second, err := c.DeleteTask(ctx, created.InsertedID)
	if err != nil {
		t.Fatalf("Expected repeated delete to succeed, got %v", err)
	}
	if second.DeletedCount != 0 {
		t.Errorf("Expected zero deleted count, got %d", second.DeletedCount)
	}
}

func TestEndToEndScenario(t *testing.T) {
	ctx := context.Background()
	_, c := newTestServer(t)

	created, err := c.CreateTask(ctx, &entity.CreateTaskRequest{
		Title:       "Write spec",
		Description: "Draft section 8",
		Priority:    entity.PriorityHigh,
		Status:      entity.StatusPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tasks, err := c.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID.Hex() != created.InsertedID {
		t.Fatalf("Expected the created task in the list, got %v", tasks)
	}

	status := entity.StatusCompleted
	if _, err := c.UpdateTask(ctx, created.InsertedID, &entity.TaskPatch{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}

	tasks, err = c.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list after update: %v", err)
	}
	task := tasks[0]
	if task.Status != entity.StatusCompleted ||
		task.Title != "Write spec" || task.Description != "Draft section 8" || task.Priority != entity.PriorityHigh {
		t.Fatalf("Expected only the status to change, got %+v", task)
	}

	if _, err := c.DeleteTask(ctx, created.InsertedID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	tasks, err = c.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	for _, task := range tasks {
		if task.ID.Hex() == created.InsertedID {
			t.Errorf("Expected the task to be gone, still present: %+v", task)
		}
	}
}
