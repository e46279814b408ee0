package jobs

import (
	"context"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/models"
	"Backend-FormCraft/src/services/notifications"
)

type nopSender struct{ sent int }

func (s *nopSender) Send(to, subject, html string) error {
	s.sent++
	return nil
}

type missingStore struct{}

func (missingStore) Form(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	return nil, notifications.ErrMissing
}

func (missingStore) Response(ctx context.Context, id primitive.ObjectID) (*models.Response, error) {
	return nil, notifications.ErrMissing
}

func TestRegisterHandlersRoutesSubmissionTask(t *testing.T) {
	mux := asynq.NewServeMux()
	sender := &nopSender{}
	RegisterHandlers(mux, sender, missingStore{}, func(string) string { return "" })

	task, err := notifications.NewNotifySubmissionTask(primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), "a@b.co")
	assert.NoError(t, err)

	h, pattern := mux.Handler(task)
	assert.Equal(t, notifications.TypeNotifySubmission, pattern)
	assert.NoError(t, h.ProcessTask(context.Background(), task))
	assert.Zero(t, sender.sent)
}
