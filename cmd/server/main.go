package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/St1cky1/taskboard/internal/api"
	"github.com/St1cky1/taskboard/internal/infrastructure/client"
	"github.com/St1cky1/taskboard/internal/repository"
	"github.com/St1cky1/taskboard/internal/usecase"
	"github.com/St1cky1/taskboard/internal/worker"
)

func main() {
	var wg sync.WaitGroup

	// Строка подключения обязательна, без неё не стартуем
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI не задан, добавьте строку подключения в окружение")
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "taskboard"
	}

	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	// Подключаемся к БД
	mongoClient, err := client.NewMongoClient(client.Config{URI: mongoURI, Database: dbName})
	if err != nil {
		log.Fatal("❌ Ошибка подключения к MongoDB:", err)
	}
	defer mongoClient.Close()
	fmt.Println("✅ Подключение к MongoDB установлено")

	taskRepo := repository.NewTaskRepository(mongoClient.Tasks())

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	// RabbitMQ опционален: без него события просто не публикуются
	var events usecase.EventPublisher
	if rabbitMQURL := os.Getenv("RABBITMQ_URL"); rabbitMQURL != "" {
		rabbitMQ, err := client.NewRabbitMQClient(rabbitMQURL)
		if err != nil {
			log.Fatal("❌ Ошибка подключения к RabbitMQ:", err)
		}
		defer rabbitMQ.Close()
		fmt.Println("✅ Подключение к RabbitMQ установлено")
		events = rabbitMQ

		// Запускаем воркер для сохранения событий задач
		eventRepo := repository.NewTaskEventRepository(mongoClient.TaskEvents())
		eventWorker := worker.NewEventWorker(rabbitMQURL, eventRepo)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fmt.Println("Запуск Event Worker...")
			eventWorker.Start(workerCtx)
		}()
	}

	taskService := usecase.NewTaskService(taskRepo, events)

	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: api.NewRouter(taskService),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		fmt.Printf("Запуск HTTP сервера на порту %s...\n", httpPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ HTTP server error: %v", err)
		}
	}()

	fmt.Println("✅ taskboard готов к работе!")
	fmt.Printf(" REST API: http://localhost:%s/api/tasks\n", httpPort)
	fmt.Println("Для остановки нажмите Ctrl+C")

	waitForShutdown(server, workerCancel)
	wg.Wait()
}

func waitForShutdown(server *http.Server, workerCancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan

	fmt.Println("Завершение работы...")

	// Останавливаем воркер и HTTP сервер
	workerCancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Ошибка остановки HTTP сервера: %v", err)
	}

	fmt.Println("✅ Приложение завершено корректно")
}
