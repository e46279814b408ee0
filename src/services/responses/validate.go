package responses

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"Backend-FormCraft/src/models"
	"Backend-FormCraft/src/services/logic"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SanitizeAnswers keeps only answers for fields the form currently has, one
// per field, in submission order.
func SanitizeAnswers(form *models.Form, answers []models.Answer) []models.Answer {
	ids := form.FieldIDs()
	seen := make(map[string]bool, len(answers))
	out := make([]models.Answer, 0, len(answers))
	for _, a := range answers {
		id := strings.TrimSpace(a.FieldID)
		if _, ok := ids[id]; !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, models.Answer{FieldID: id, Value: a.Value})
	}
	return out
}

// ValidateAnswers checks sanitized answers against the form. Hidden fields
// are neither required nor validated.
func ValidateAnswers(form *models.Form, answers []models.Answer) error {
	values := logic.AnswerMap(answers)
	visible := logic.Resolve(form.Fields, values)

	var errs models.ValidationErrors
	for _, f := range form.Fields {
		if !visible[f.ID] {
			continue
		}
		v, ok := values[f.ID]
		if !ok || v.Empty() {
			if f.Required {
				errs.Add(f.ID, f.Label+" is required")
			}
			continue
		}
		if msg := checkValue(f, v); msg != "" {
			if f.Validation != nil && f.Validation.ErrorMessage != "" {
				msg = f.Validation.ErrorMessage
			}
			errs.Add(f.ID, msg)
		}
	}
	return errs.Err()
}

func checkValue(f models.Field, v models.AnswerValue) string {
	rules := f.Validation
	if rules == nil {
		rules = &models.FieldValidation{}
	}

	switch f.Type {
	case models.FieldEmail:
		if !emailPattern.MatchString(strings.TrimSpace(v.String())) {
			return "must be a valid email address"
		}
	case models.FieldNumber:
		n, ok := v.Number()
		if !ok {
			return "must be a number"
		}
		if rules.Min != nil && n < *rules.Min {
			return fmt.Sprintf("must be at least %g", *rules.Min)
		}
		if rules.Max != nil && n > *rules.Max {
			return fmt.Sprintf("must be at most %g", *rules.Max)
		}
		return ""
	case models.FieldShortText, models.FieldLongText:
		length := float64(utf8.RuneCountInString(v.String()))
		if rules.Min != nil && length < *rules.Min {
			return fmt.Sprintf("must be at least %g characters", *rules.Min)
		}
		if rules.Max != nil && length > *rules.Max {
			return fmt.Sprintf("must be at most %g characters", *rules.Max)
		}
	default:
		return ""
	}

	if rules.Regex != "" {
		re, err := regexp.Compile(rules.Regex)
		if err == nil && !re.MatchString(v.String()) {
			return "has an invalid format"
		}
	}
	return ""
}
