package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Backend-FormCraft/src/models"
)

func conditional(id, ref string, op models.LogicOperator, value string) models.Field {
	return models.Field{
		ID:    id,
		Type:  models.FieldShortText,
		Label: id,
		Logic: &models.FieldLogic{ShowWhenFieldID: ref, Operator: op, Value: value},
	}
}

func TestIsVisibleEqualsScenario(t *testing.T) {
	a := models.Field{ID: "a", Type: models.FieldRadio, Label: "A", Options: []string{"yes", "no"}}
	b := conditional("b", "a", models.OpEquals, "yes")

	assert.True(t, IsVisible(a, nil), "field without logic is always visible")

	assert.False(t, IsVisible(b, map[string]models.AnswerValue{}), "unanswered reference hides the field")
	assert.False(t, IsVisible(b, map[string]models.AnswerValue{"a": models.NullValue()}), "null reference hides the field")
	assert.True(t, IsVisible(b, map[string]models.AnswerValue{"a": models.StringValue("yes")}))
	assert.False(t, IsVisible(b, map[string]models.AnswerValue{"a": models.StringValue("no")}))
}

func TestMatchesOperators(t *testing.T) {
	tests := []struct {
		name  string
		op    models.LogicOperator
		rule  string
		value models.AnswerValue
		want  bool
	}{
		{"not_equals differs", models.OpNotEquals, "yes", models.StringValue("no"), true},
		{"not_equals same", models.OpNotEquals, "yes", models.StringValue("yes"), false},
		{"contains substring", models.OpContains, "ell", models.StringValue("hello"), true},
		{"contains missing", models.OpContains, "xyz", models.StringValue("hello"), false},
		{"number coerced to string", models.OpEquals, "5", models.NumberValue(5), true},
		{"empty operator means equals", "", "yes", models.StringValue("yes"), true},
		{"list contains member", models.OpContains, "B", models.ListValue("A", "B"), true},
		{"list contains non member", models.OpContains, "C", models.ListValue("A", "B"), false},
		{"list equals first element", models.OpEquals, "A", models.ListValue("A", "B"), true},
		{"list equals ignores later elements", models.OpEquals, "B", models.ListValue("A", "B"), false},
		{"list not_equals first element", models.OpNotEquals, "B", models.ListValue("A", "B"), true},
		{"empty list equals", models.OpEquals, "A", models.ListValue(), false},
		{"empty list not_equals", models.OpNotEquals, "A", models.ListValue(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &models.FieldLogic{ShowWhenFieldID: "x", Operator: tt.op, Value: tt.rule}
			assert.Equal(t, tt.want, Matches(rule, tt.value, true))
		})
	}
}

func TestResolveChainsThroughHiddenFields(t *testing.T) {
	fields := []models.Field{
		{ID: "a", Type: models.FieldShortText, Label: "A"},
		conditional("b", "a", models.OpEquals, "yes"),
		conditional("c", "b", models.OpEquals, "go"),
	}

	// c's own condition holds, but b is hidden so c is hidden too
	vis := Resolve(fields, map[string]models.AnswerValue{
		"a": models.StringValue("no"),
		"b": models.StringValue("go"),
	})
	assert.True(t, vis["a"])
	assert.False(t, vis["b"])
	assert.False(t, vis["c"])

	vis = Resolve(fields, map[string]models.AnswerValue{
		"a": models.StringValue("yes"),
		"b": models.StringValue("go"),
	})
	assert.True(t, vis["b"])
	assert.True(t, vis["c"])
}

func TestResolveTerminatesOnCycles(t *testing.T) {
	fields := []models.Field{
		conditional("a", "b", models.OpEquals, "1"),
		conditional("b", "a", models.OpEquals, "1"),
		conditional("self", "self", models.OpEquals, "1"),
	}
	answers := map[string]models.AnswerValue{
		"a":    models.StringValue("1"),
		"b":    models.StringValue("1"),
		"self": models.StringValue("1"),
	}

	vis := Resolve(fields, answers)
	assert.False(t, vis["a"])
	assert.False(t, vis["b"])
	assert.False(t, vis["self"])
}

func TestFindCycle(t *testing.T) {
	acyclic := []models.Field{
		{ID: "a", Type: models.FieldShortText, Label: "A"},
		conditional("b", "a", models.OpEquals, "x"),
		conditional("c", "b", models.OpEquals, "x"),
	}
	assert.Empty(t, FindCycle(acyclic))

	cyclic := []models.Field{
		conditional("a", "c", models.OpEquals, "x"),
		conditional("b", "a", models.OpEquals, "x"),
		conditional("c", "b", models.OpEquals, "x"),
	}
	assert.NotEmpty(t, FindCycle(cyclic))

	assert.Equal(t, "s", FindCycle([]models.Field{conditional("s", "s", models.OpEquals, "x")}))
}

func TestAnswerMapKeepsFirstAnswer(t *testing.T) {
	m := AnswerMap([]models.Answer{
		{FieldID: "a", Value: models.StringValue("first")},
		{FieldID: "a", Value: models.StringValue("second")},
	})
	assert.Equal(t, "first", m["a"].String())
}
