package notifications

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/metrics"
	"Backend-FormCraft/src/models"
)

// Enqueuer is the part of *asynq.Client the dispatcher uses.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Dispatcher hands submission notices to the queue, or runs the handler in
// a goroutine when no queue is configured. It never reports failure to the
// caller.
type Dispatcher struct {
	queue   Enqueuer
	handler asynq.HandlerFunc
	timeout time.Duration
}

// NewDispatcher accepts a nil queue and a nil handler. With neither,
// notifications are dropped.
func NewDispatcher(queue Enqueuer, handler asynq.HandlerFunc) *Dispatcher {
	return &Dispatcher{queue: queue, handler: handler, timeout: time.Minute}
}

// NotifySubmission is fire-and-forget.
func (d *Dispatcher) NotifySubmission(form *models.Form, resp *models.Response) {
	if d == nil || !form.Settings.NotifyOnSubmission || form.Settings.NotificationEmail == "" {
		return
	}
	responseID := resp.ID.Hex()
	task, err := NewNotifySubmissionTask(form.ID.Hex(), responseID, form.Settings.NotificationEmail)
	if err != nil {
		logger.Errorf("❌ [notify] build task: %v", err)
		return
	}

	if d.queue != nil {
		if _, err := d.queue.Enqueue(task, asynq.TaskID(SubmissionTaskID(responseID)), asynq.MaxRetry(3)); err != nil {
			metrics.Notifications.WithLabelValues("failed").Inc()
			logger.Errorf("❌ [notify] enqueue submission %s: %v", responseID, err)
			return
		}
		metrics.Notifications.WithLabelValues("enqueued").Inc()
		return
	}

	if d.handler == nil {
		metrics.Notifications.WithLabelValues("skipped").Inc()
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.handler(ctx, task); err != nil {
			logger.Errorf("❌ [notify] inline delivery for %s: %v", responseID, err)
		}
	}()
}
