package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/St1cky1/taskboard/internal/client"
	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/spf13/cobra"
)

var serverURL string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskctl",
		Short:         "Command-line client for the taskboard service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&serverURL, "server", defaultServerURL(), "taskboard server base URL")

	root.AddCommand(newListCmd(), newAddCmd(), newEditCmd(), newDoneCmd(), newRmCmd())
	return root
}

func defaultServerURL() string {
	if url := os.Getenv("TASKBOARD_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func newCache() *client.TaskCache {
	return client.NewTaskCache(client.New(serverURL), client.NewTerminalNotifier(os.Stderr))
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache := newCache()
			if err := cache.Refresh(context.Background()); err != nil {
				return err
			}
			printTasks(cache.Tasks())
			return nil
		},
	}
}

func taskFlags(cmd *cobra.Command, req *entity.CreateTaskRequest) {
	cmd.Flags().StringVarP(&req.Title, "title", "t", "", "task title")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "task description")
	cmd.Flags().StringVarP((*string)(&req.Priority), "priority", "p", "", "task priority (low|medium|high)")
	cmd.Flags().StringVarP((*string)(&req.Status), "status", "s", "", "task status (pending|completed)")
}

func newAddCmd() *cobra.Command {
	var req entity.CreateTaskRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache := newCache()
			if err := cache.SaveNew(context.Background(), &req); err != nil {
				return err
			}
			// Дожидаемся отложенной сверки, чтобы показать таблицу с сервера
			cache.Wait()
			printTasks(cache.Tasks())
			return nil
		},
	}
	taskFlags(cmd, &req)
	return cmd
}

func newEditCmd() *cobra.Command {
	var req entity.CreateTaskRequest
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit all fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cache := newCache()
			if err := cache.SaveEdit(context.Background(), args[0], &req); err != nil {
				return err
			}
			cache.Wait()
			printTasks(cache.Tasks())
			return nil
		},
	}
	taskFlags(cmd, &req)
	return cmd
}

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cache := newCache()
			if err := cache.Refresh(ctx); err != nil {
				return err
			}
			if err := cache.MarkCompleted(ctx, args[0]); err != nil {
				return err
			}
			printTasks(cache.Tasks())
			return nil
		},
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cache := newCache()
			if err := cache.Refresh(ctx); err != nil {
				return err
			}
			if err := cache.Delete(ctx, args[0]); err != nil {
				return err
			}
			printTasks(cache.Tasks())
			return nil
		},
	}
}

func printTasks(tasks []entity.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tSTATUS")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID.Hex(), t.Title, t.Priority, t.Status)
	}
	w.Flush()
}
