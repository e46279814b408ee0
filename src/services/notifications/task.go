package notifications

import (
	"encoding/json"
	"strings"

	"github.com/hibiken/asynq"
)

const TypeNotifySubmission = "notifications:submission"

type SubmissionPayload struct {
	FormID     string `json:"formId"`
	ResponseID string `json:"responseId"`
	To         string `json:"to"`
}

func (p *SubmissionPayload) Normalize() {
	p.FormID = strings.TrimSpace(p.FormID)
	p.ResponseID = strings.TrimSpace(p.ResponseID)
	p.To = strings.TrimSpace(p.To)
}

func NewNotifySubmissionTask(formID, responseID, to string) (*asynq.Task, error) {
	payload := SubmissionPayload{FormID: formID, ResponseID: responseID, To: to}
	payload.Normalize()

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifySubmission, b), nil
}

// SubmissionTaskID dedupes retries of the same response.
func SubmissionTaskID(responseID string) string {
	return "notify-submission-" + strings.TrimSpace(responseID)
}
