package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Priority    TaskPriority       `bson:"priority" json:"priority"`
	Status      TaskStatus         `bson:"status" json:"status"`
}

// сервер поля не проверяет, валидация только на клиенте
type CreateTaskRequest struct {
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	Priority    TaskPriority `bson:"priority" json:"priority"`
	Status      TaskStatus   `bson:"status" json:"status"`
}

// Validate - клиентская проверка перед отправкой формы
func (r *CreateTaskRequest) Validate() error {
	if r.Title == "" || r.Description == "" || r.Priority == "" || r.Status == "" {
		return ErrMissingFields
	}
	return nil
}

// TaskPatch - частичное обновление, nil-поля не трогаем
type TaskPatch struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
}

func (p *TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil && p.Status == nil
}

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
