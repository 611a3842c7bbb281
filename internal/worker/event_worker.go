package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/St1cky1/taskboard/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
)

type EventWorker struct {
	rabbitMQURL string
	eventRepo   repository.ITaskEventRepository
}

func NewEventWorker(rabbitMQURL string, eventRepo repository.ITaskEventRepository) *EventWorker {
	return &EventWorker{
		rabbitMQURL: rabbitMQURL,
		eventRepo:   eventRepo,
	}
}

func (w *EventWorker) Start(ctx context.Context) {
	// Отдельное соединение и канал для consumer'а
	conn, err := amqp.Dial(w.rabbitMQURL)
	if err != nil {
		log.Printf("❌ Ошибка подключения к RabbitMQ для воркера: %v", err)
		return
	}
	defer conn.Close()

	channel, err := conn.Channel()
	if err != nil {
		log.Printf("❌ Ошибка создания канала для воркера: %v", err)
		return
	}
	defer channel.Close()

	// Убеждаемся, что очередь существует
	queueName := "task_events"
	_, err = channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		log.Printf("❌ Ошибка объявления очереди: %v", err)
		return
	}

	msgs, err := channel.Consume(
		queueName,      // queue
		"event_worker", // consumer tag
		false,          // auto-ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // args
	)
	if err != nil {
		log.Printf("❌ Ошибка создания consumer: %v", err)
		return
	}

	fmt.Println("✅ Event Worker запущен. Ожидаем сообщения...")

	for {
		select {
		case <-ctx.Done():
			fmt.Println("🛑 Event Worker остановлен")
			return
		case msg, ok := <-msgs:
			if !ok {
				fmt.Println("📨 Канал сообщений закрыт")
				return
			}
			w.processMessage(msg)
		}
	}
}

func (w *EventWorker) processMessage(msg amqp.Delivery) {
	ctx := context.Background()

	// 1. Парсим сообщение
	var event entity.TaskEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("❌ Ошибка парсинга события: %v", err)
		msg.Nack(false, false) // Не возвращаем в очередь
		return
	}

	// 2. Сохраняем в коллекцию событий
	if err := w.eventRepo.Create(ctx, &event); err != nil {
		log.Printf("❌ Ошибка сохранения события: %v", err)
		msg.Nack(false, true) // Возвращаем в очередь для повторной обработки
		return
	}

	// 3. Подтверждаем обработку
	msg.Ack(false)
	log.Printf("✅ Событие сохранено: %s задача ID=%s", event.Action, event.TaskID)
}
