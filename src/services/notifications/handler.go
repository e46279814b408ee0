package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/metrics"
)

// HandleNotifySubmission mails one response to the form's notification
// address. Deleted forms or responses are skipped, not retried.
func HandleNotifySubmission(sender MailSender, store Store, resultsURL func(formID string) string) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p SubmissionPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		p.Normalize()
		if p.To == "" {
			metrics.Notifications.WithLabelValues("skipped").Inc()
			return nil
		}

		formID, err := primitive.ObjectIDFromHex(p.FormID)
		if err != nil {
			return fmt.Errorf("bad form id %q: %w", p.FormID, asynq.SkipRetry)
		}
		responseID, err := primitive.ObjectIDFromHex(p.ResponseID)
		if err != nil {
			return fmt.Errorf("bad response id %q: %w", p.ResponseID, asynq.SkipRetry)
		}

		form, err := store.Form(ctx, formID)
		if err == nil {
			resp, rerr := store.Response(ctx, responseID)
			if rerr == nil {
				return deliver(sender, p.To, SubmissionEmailData{
					FormTitle:   form.Title,
					SubmittedAt: resp.SubmittedAt,
					Rows:        BuildSubmissionRows(form, resp),
					ResultsLink: resultsURL(p.FormID),
				})
			}
			err = rerr
		}
		if errors.Is(err, ErrMissing) {
			logger.Warnf("⚠️ [notify] form %s or response %s no longer exists. Skipping", p.FormID, p.ResponseID)
			metrics.Notifications.WithLabelValues("skipped").Inc()
			return nil
		}
		return err
	}
}

func deliver(sender MailSender, to string, data SubmissionEmailData) error {
	html, err := RenderSubmissionHTML(data)
	if err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		return fmt.Errorf("render submission email: %v: %w", err, asynq.SkipRetry)
	}
	if err := sender.Send(to, "New response: "+data.FormTitle, html); err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		logger.Errorf("❌ [notify] send mail to %s: %v", to, err)
		return err
	}
	metrics.Notifications.WithLabelValues("sent").Inc()
	logger.Infof("✅ [notify] submission mailed to %s", to)
	return nil
}
