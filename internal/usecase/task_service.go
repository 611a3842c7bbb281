package usecase

import (
	"context"
	"log"
	"time"

	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/St1cky1/taskboard/internal/repository"
	"github.com/google/uuid"
)

// EventPublisher интерфейс для публикации событий в RabbitMQ
type EventPublisher interface {
	PublishTaskEvent(ctx context.Context, event *entity.TaskEvent) error
}

type TaskService struct {
	taskRepo repository.ITaskRepository
	events   EventPublisher
}

func NewTaskService(taskRepo repository.ITaskRepository, events EventPublisher) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		events:   events,
	}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]entity.Task, error) {
	return s.taskRepo.List(ctx)
}

func (s *TaskService) CreateTask(ctx context.Context, req *entity.CreateTaskRequest) (*entity.InsertResult, error) {
	// Вставляем ровно те поля, что прислал клиент
	result, err := s.taskRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.sendTaskEvent(entity.ActionCreate, result.InsertedID, map[string]any{
		"title":       req.Title,
		"description": req.Description,
		"priority":    req.Priority,
		"status":      req.Status,
	})

	return result, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, patch *entity.TaskPatch) (*entity.UpdateResult, error) {
	// 1. Собираем $set только из присутствующих полей патча
	updates := make(map[string]any)

	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Priority != nil {
		updates["priority"] = *patch.Priority
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}

	// 2. Обновляем задачу, нулевое совпадение отдаем как успех
	result, err := s.taskRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	// 3. Асинхронно отправляем событие
	s.sendTaskEvent(entity.ActionUpdate, id, updates)

	return result, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := s.taskRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.sendTaskEvent(entity.ActionDelete, id, nil)

	return result, nil
}

// Вспомогательный метод для отправки события
func (s *TaskService) sendTaskEvent(action entity.ActionType, taskID string, fields map[string]any) {
	if s.events == nil {
		return
	}

	event := &entity.TaskEvent{
		EventID:   uuid.NewString(),
		Action:    action,
		TaskID:    taskID,
		Fields:    fields,
		Timestamp: time.Now(),
	}

	// Асинхронная отправка в RabbitMQ, результат операции от неё не зависит
	go func() {
		if err := s.events.PublishTaskEvent(context.Background(), event); err != nil {
			log.Printf("❌ Ошибка отправки события в RabbitMQ: %v", err)
		}
	}()
}
