// Package logic evaluates conditional display rules between form fields.
package logic

import (
	"strings"

	"Backend-FormCraft/src/models"
)

// Matches reports whether rule holds for the referenced field's value.
// A missing or null value never matches. For list values equals and
// not_equals look only at the first element, contains tests membership.
func Matches(rule *models.FieldLogic, value models.AnswerValue, answered bool) bool {
	if !answered || value.IsNull() {
		return false
	}
	target := rule.Value

	if value.Kind() == models.ValueList {
		items := value.List()
		first := len(items) > 0 && items[0] == target
		switch rule.Operator {
		case models.OpContains:
			for _, it := range items {
				if it == target {
					return true
				}
			}
			return false
		case models.OpNotEquals:
			return !first
		default:
			return first
		}
	}

	s := value.String()
	switch rule.Operator {
	case models.OpContains:
		return strings.Contains(s, target)
	case models.OpNotEquals:
		return s != target
	default:
		return s == target
	}
}

// IsVisible evaluates a single field against the given answers without
// looking at the referenced field's own visibility.
func IsVisible(field models.Field, answers map[string]models.AnswerValue) bool {
	if field.Logic == nil || field.Logic.ShowWhenFieldID == "" {
		return true
	}
	v, ok := answers[field.Logic.ShowWhenFieldID]
	return Matches(field.Logic, v, ok)
}

// Resolve computes visibility for every field of the form. A field whose
// referenced field is itself hidden is hidden too. Self references and
// cycles resolve to hidden instead of recursing forever.
func Resolve(fields []models.Field, answers map[string]models.AnswerValue) map[string]bool {
	byID := make(map[string]models.Field, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(fields))
	visible := make(map[string]bool, len(fields))

	var visit func(id string) bool
	visit = func(id string) bool {
		switch state[id] {
		case done:
			return visible[id]
		case visiting:
			return false
		}
		f, ok := byID[id]
		if !ok {
			return false
		}
		state[id] = visiting
		res := IsVisible(f, answers)
		if res && f.Logic != nil && f.Logic.ShowWhenFieldID != "" {
			res = visit(f.Logic.ShowWhenFieldID)
		}
		state[id] = done
		visible[id] = res
		return res
	}

	for _, f := range fields {
		visit(f.ID)
	}
	return visible
}

// AnswerMap indexes answers by field id, keeping the first answer per field.
func AnswerMap(answers []models.Answer) map[string]models.AnswerValue {
	m := make(map[string]models.AnswerValue, len(answers))
	for _, a := range answers {
		if _, seen := m[a.FieldID]; !seen {
			m[a.FieldID] = a.Value
		}
	}
	return m
}

// FindCycle returns the id of a field that participates in a logic cycle,
// or "" when the dependency graph is acyclic.
func FindCycle(fields []models.Field) string {
	next := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.Logic != nil && f.Logic.ShowWhenFieldID != "" {
			next[f.ID] = f.Logic.ShowWhenFieldID
		}
	}
	for _, f := range fields {
		seen := map[string]bool{}
		for id := f.ID; id != ""; id = next[id] {
			if seen[id] {
				return id
			}
			seen[id] = true
		}
	}
	return ""
}
