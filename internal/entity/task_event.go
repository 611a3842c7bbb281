package entity

import (
	"time"
)

type ActionType string

const (
	ActionCreate ActionType = "Create"
	ActionUpdate ActionType = "Update"
	ActionDelete ActionType = "Delete"
)

// TaskEvent - сообщение об изменении задачи, уходит в очередь
type TaskEvent struct {
	EventID   string         `bson:"event_id" json:"event_id"`
	Action    ActionType     `bson:"action" json:"action"`
	TaskID    string         `bson:"task_id" json:"task_id"`
	Fields    map[string]any `bson:"fields,omitempty" json:"fields,omitempty"`
	Timestamp time.Time      `bson:"timestamp" json:"timestamp"`
}
