package service

import (
	"context"
	"log/slog"

	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/internal/metrics"
)

// TaskService discovers pending social tasks and verifies them one by one
type TaskService struct {
	api    QuestAPI
	pacer  *Pacer
	logger *slog.Logger
}

// NewTaskService creates a new task verification service
func NewTaskService(api QuestAPI, pacer *Pacer, logger *slog.Logger) *TaskService {
	return &TaskService{api: api, pacer: pacer, logger: logger}
}

// Run fetches the task list and verifies every pending task in its
// original order. One task's failure never aborts the loop; it is logged
// and counted as not-completed.
func (s *TaskService) Run(ctx context.Context) core.TaskReport {
	tasks, err := s.api.SocialTasks(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch task list", "error", err)
		return core.TaskReport{}
	}
	if len(tasks) == 0 {
		s.logger.Info("no social tasks available")
		return core.TaskReport{}
	}

	var pending []core.Task
	for _, task := range tasks {
		if !task.Completed {
			pending = append(pending, task)
		}
	}

	report := core.TaskReport{
		Success:          true,
		Total:            len(tasks),
		AlreadyCompleted: len(tasks) - len(pending),
	}
	if len(pending) == 0 {
		s.logger.Info("all social tasks already completed", "total", report.Total)
		return report
	}

	s.logger.Info("verifying social tasks",
		"pending", len(pending),
		"already_completed", report.AlreadyCompleted)

	for _, task := range pending {
		if ctx.Err() != nil {
			break
		}
		s.pacer.BeforeTask(ctx)

		ok, err := s.api.VerifyTask(ctx, task.ID)
		switch {
		case err != nil:
			metrics.TasksVerified.WithLabelValues("error").Inc()
			s.logger.Warn("task verification failed",
				"task", task.Name,
				"platform", task.Platform,
				"error", err)
		case ok:
			metrics.TasksVerified.WithLabelValues("completed").Inc()
			report.Completed++
			s.logger.Info("task verified", "task", task.Name, "platform", task.Platform)
		default:
			metrics.TasksVerified.WithLabelValues("unverified").Inc()
			s.logger.Info("task not verified", "task", task.Name, "platform", task.Platform)
		}

		s.pacer.AfterTask(ctx)
	}

	return report
}
