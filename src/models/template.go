package models

// FormTemplate is a read-only starting point for a new form.
type FormTemplate struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Form        FormTemplateBody `json:"form"`
}

type FormTemplateBody struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Fields      []Field      `json:"fields"`
	Settings    FormSettings `json:"settings"`
}

// TemplateSummary is the list view of a template.
type TemplateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
