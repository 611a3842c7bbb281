package client

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/St1cky1/taskboard/internal/entity"
)

const defaultRefreshDelay = time.Second

// TaskCache - локальное зеркало коллекции задач.
// Истина всегда в хранилище, кэш пересобирается из List.
type TaskCache struct {
	api          TaskAPI
	notifier     Notifier
	refreshDelay time.Duration

	mu    sync.RWMutex
	tasks []entity.Task

	pending sync.WaitGroup
}

func NewTaskCache(api TaskAPI, notifier Notifier) *TaskCache {
	return &TaskCache{
		api:          api,
		notifier:     notifier,
		refreshDelay: defaultRefreshDelay,
	}
}

// Tasks возвращает копию текущего содержимого кэша
func (c *TaskCache) Tasks() []entity.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tasks := make([]entity.Task, len(c.tasks))
	copy(tasks, c.tasks)
	return tasks
}

// Refresh - полная замена кэша результатом List
func (c *TaskCache) Refresh(ctx context.Context) error {
	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.tasks = tasks
	c.mu.Unlock()

	return nil
}

// Delete - оптимистичное удаление: кэш правим только после успеха сервера
func (c *TaskCache) Delete(ctx context.Context, id string) error {
	if _, err := c.api.DeleteTask(ctx, id); err != nil {
		c.notifier.Error("Failed to delete task")
		return err
	}

	c.mu.Lock()
	filtered := make([]entity.Task, 0, len(c.tasks))
	for _, t := range c.tasks {
		if t.ID.Hex() != id {
			filtered = append(filtered, t)
		}
	}
	c.tasks = filtered
	c.mu.Unlock()

	c.notifier.Success("Task deleted successfully!")
	return nil
}

// MarkCompleted - точечный перевод статуса, остальные поля не трогаем
func (c *TaskCache) MarkCompleted(ctx context.Context, id string) error {
	status := entity.StatusCompleted
	if _, err := c.api.UpdateTask(ctx, id, &entity.TaskPatch{Status: &status}); err != nil {
		c.notifier.Error("Failed to mark task as completed")
		return err
	}

	c.mu.Lock()
	for i := range c.tasks {
		if c.tasks[i].ID.Hex() == id {
			c.tasks[i].Status = entity.StatusCompleted
		}
	}
	c.mu.Unlock()

	c.notifier.Success("Task marked as completed!")
	return nil
}

// SaveNew - создание задачи: проверка полей до любого сетевого вызова,
// уведомление в три состояния и отложенная сверка с хранилищем
func (c *TaskCache) SaveNew(ctx context.Context, req *entity.CreateTaskRequest) error {
	if err := req.Validate(); err != nil {
		c.notifier.Error("All fields must be filled")
		return err
	}

	// Сверка планируется сразу, исход сохранения на неё не влияет
	c.scheduleRefresh()

	c.notifier.Loading("Saving task...")
	if _, err := c.api.CreateTask(ctx, req); err != nil {
		c.notifier.Error(fmt.Sprintf("Error: %v", err))
		return err
	}

	c.notifier.Success("Task has been created successfully!")
	return nil
}

// SaveEdit - полное редактирование всех четырех полей по id
func (c *TaskCache) SaveEdit(ctx context.Context, id string, req *entity.CreateTaskRequest) error {
	if err := req.Validate(); err != nil {
		c.notifier.Error("All fields must be filled")
		return err
	}

	c.scheduleRefresh()

	patch := &entity.TaskPatch{
		Title:       &req.Title,
		Description: &req.Description,
		Priority:    &req.Priority,
		Status:      &req.Status,
	}

	c.notifier.Loading("Saving task...")
	if _, err := c.api.UpdateTask(ctx, id, patch); err != nil {
		c.notifier.Error(fmt.Sprintf("Error: %v", err))
		return err
	}

	c.notifier.Success("Task has been updated successfully!")
	return nil
}

func (c *TaskCache) scheduleRefresh() {
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		time.Sleep(c.refreshDelay)
		if err := c.Refresh(context.Background()); err != nil {
			log.Printf("refresh after save: %v", err)
		}
	}()
}

// Wait блокирует до завершения всех запланированных сверок
func (c *TaskCache) Wait() {
	c.pending.Wait()
}
