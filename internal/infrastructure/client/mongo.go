package client

import (
	"context"
	"fmt"
	"time"

	"github.com/St1cky1/taskboard/internal/entity"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	tasksCollection      = "tasks"
	taskEventsCollection = "task_events"
)

type MongoClient struct {
	client *mongo.Client
	db     *mongo.Database
}

type Config struct {
	URI      string
	Database string
}

func NewMongoClient(cfg Config) (*MongoClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: connect to mongodb: %v", entity.ErrConnectionFailure, err)
	}

	// Проверяем соединение
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("%w: ping mongodb: %v", entity.ErrConnectionFailure, err)
	}

	return &MongoClient{
		client: mongoClient,
		db:     mongoClient.Database(cfg.Database),
	}, nil
}

// Tasks возвращает коллекцию задач для использования в репозиториях
func (c *MongoClient) Tasks() *mongo.Collection {
	return c.db.Collection(tasksCollection)
}

// TaskEvents возвращает коллекцию событий для воркера
func (c *MongoClient) TaskEvents() *mongo.Collection {
	return c.db.Collection(taskEventsCollection)
}

// HealthCheck проверяет состояние базы данных
func (c *MongoClient) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

func (c *MongoClient) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}
