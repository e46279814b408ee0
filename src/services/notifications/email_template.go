package notifications

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"Backend-FormCraft/src/models"
)

type SubmissionRow struct {
	Label string
	Value string
}

type SubmissionEmailData struct {
	FormTitle   string
	SubmittedAt time.Time
	Rows        []SubmissionRow
	ResultsLink string
}

//go:embed submission_email.html
var submissionEmailHTML string

var submissionEmailTmpl = template.Must(
	template.New("submission").
		Funcs(template.FuncMap{
			"formatTime": func(t time.Time) string {
				return t.UTC().Format("02 Jan 2006 15:04 MST")
			},
		}).
		Parse(submissionEmailHTML),
)

// BuildSubmissionRows lists the form's fields in order with the submitted
// value of each. Lists are joined with ", ".
func BuildSubmissionRows(form *models.Form, resp *models.Response) []SubmissionRow {
	rows := make([]SubmissionRow, 0, len(form.Fields))
	for _, f := range form.Fields {
		row := SubmissionRow{Label: f.Label}
		if v, ok := resp.AnswerByField(f.ID); ok {
			row.Value = v.String()
		}
		rows = append(rows, row)
	}
	return rows
}

func RenderSubmissionHTML(data SubmissionEmailData) (string, error) {
	var buf bytes.Buffer
	if err := submissionEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
