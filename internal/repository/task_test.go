package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/St1cky1/taskboard/internal/entity"
)

// Кривой id отсекается до обращения к коллекции, поэтому коллекция не нужна

func TestUpdateInvalidID(t *testing.T) {
	repo := NewTaskRepository(nil)

	_, err := repo.Update(context.Background(), "not-a-hex-id", map[string]any{"status": entity.StatusCompleted})
	if !errors.Is(err, entity.ErrInvalidTaskID) {
		t.Errorf("Expected ErrInvalidTaskID, got %v", err)
	}
}

func TestDeleteInvalidID(t *testing.T) {
	repo := NewTaskRepository(nil)

	_, err := repo.Delete(context.Background(), "12345")
	if !errors.Is(err, entity.ErrInvalidTaskID) {
		t.Errorf("Expected ErrInvalidTaskID, got %v", err)
	}
}
