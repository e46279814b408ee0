package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/models"
)

func respond(answers ...models.Answer) models.Response {
	return models.Response{ID: primitive.NewObjectID(), Answers: answers, SubmittedAt: time.Now()}
}

func ans(fieldID string, v models.AnswerValue) models.Answer {
	return models.Answer{FieldID: fieldID, Value: v}
}

func formWith(fields ...models.Field) *models.Form {
	return &models.Form{ID: primitive.NewObjectID(), Title: "Survey", Fields: fields}
}

func TestAggregateRadioScenario(t *testing.T) {
	form := formWith(models.Field{ID: "q", Type: models.FieldRadio, Label: "Pick", Options: []string{"A", "B"}})
	responses := []models.Response{
		respond(ans("q", models.StringValue("A"))),
		respond(ans("q", models.StringValue("A"))),
		respond(ans("q", models.StringValue("B"))),
	}

	r := AggregateFields(form, responses)["q"]
	require.NotNil(t, r)
	require.NotNil(t, r.ChartData)
	assert.Equal(t, []string{"A", "B"}, r.ChartData.Labels)
	assert.Equal(t, []int{2, 1}, r.ChartData.Data)
	assert.Equal(t, 3, r.TotalResponses)
	assert.Equal(t, 100.0, r.CompletionRate)
	assert.Nil(t, r.Stats)
	assert.Nil(t, r.UniqueCount)
}

func TestAggregateCheckboxCountsEachElementOnce(t *testing.T) {
	form := formWith(models.Field{ID: "c", Type: models.FieldCheckbox, Label: "Tags", Options: []string{"A", "B", "C"}})
	responses := []models.Response{respond(ans("c", models.ListValue("A", "B")))}

	r := AggregateFields(form, responses)["c"]
	assert.Equal(t, 1, r.TotalResponses)
	assert.Equal(t, []string{"A", "B"}, r.ChartData.Labels)
	assert.Equal(t, []int{1, 1}, r.ChartData.Data)
	assert.Equal(t, []string{"A", "B", "C"}, r.ChartData.Options)
}

func TestAggregateRatingEmitsEveryBucket(t *testing.T) {
	form := formWith(models.Field{ID: "r", Type: models.FieldRating, Label: "Stars"})

	r := AggregateFields(form, nil)["r"]
	require.NotNil(t, r.ChartData)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, r.ChartData.Labels)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, r.ChartData.Data)
	assert.Equal(t, 0.0, r.CompletionRate)

	responses := []models.Response{
		respond(ans("r", models.NumberValue(4))),
		respond(ans("r", models.StringValue("4"))),
		respond(ans("r", models.StringValue("9"))),
	}
	r = AggregateFields(form, responses)["r"]
	assert.Equal(t, []int{0, 0, 0, 2, 0}, r.ChartData.Data)
	assert.Equal(t, 3, r.TotalResponses)
}

func TestAggregateNumberSkipsUnparseable(t *testing.T) {
	form := formWith(models.Field{ID: "n", Type: models.FieldNumber, Label: "Age"})
	responses := []models.Response{
		respond(ans("n", models.StringValue("10"))),
		respond(ans("n", models.StringValue("abc"))),
		respond(ans("n", models.StringValue("20"))),
	}

	r := AggregateFields(form, responses)["n"]
	require.NotNil(t, r.Stats)
	assert.Equal(t, 10.0, r.Stats.Min)
	assert.Equal(t, 20.0, r.Stats.Max)
	assert.Equal(t, 15.0, r.Stats.Avg)
	assert.Equal(t, 30.0, r.Stats.Total)
	assert.Equal(t, 3, r.TotalResponses)
}

func TestAggregateNumberWithoutValuesOmitsStats(t *testing.T) {
	form := formWith(models.Field{ID: "n", Type: models.FieldNumber, Label: "Age"})
	responses := []models.Response{respond(ans("n", models.StringValue("n/a")))}

	r := AggregateFields(form, responses)["n"]
	assert.Nil(t, r.Stats)
}

func TestAggregateNumberAverageRounded(t *testing.T) {
	form := formWith(models.Field{ID: "n", Type: models.FieldNumber, Label: "Score"})
	responses := []models.Response{
		respond(ans("n", models.NumberValue(1))),
		respond(ans("n", models.NumberValue(1))),
		respond(ans("n", models.NumberValue(2))),
	}
	assert.Equal(t, 1.33, AggregateFields(form, responses)["n"].Stats.Avg)
}

func TestAggregateTextUniqueCount(t *testing.T) {
	form := formWith(models.Field{ID: "t", Type: models.FieldShortText, Label: "Name"})
	responses := []models.Response{
		respond(ans("t", models.StringValue("Ann"))),
		respond(ans("t", models.StringValue("Ann"))),
		respond(ans("t", models.StringValue("Bob"))),
	}

	r := AggregateFields(form, responses)["t"]
	require.NotNil(t, r.UniqueCount)
	assert.Equal(t, 2, *r.UniqueCount)
	assert.Nil(t, r.ChartData)
}

func TestAggregateUnansweredFieldIsZero(t *testing.T) {
	form := formWith(
		models.Field{ID: "a", Type: models.FieldShortText, Label: "A"},
		models.Field{ID: "b", Type: models.FieldEmail, Label: "B"},
	)
	responses := []models.Response{
		respond(ans("a", models.StringValue("x"))),
		respond(ans("b", models.NullValue())),
	}

	reports := AggregateFields(form, responses)
	require.Len(t, reports, 2)
	assert.Equal(t, 0, reports["b"].TotalResponses)
	assert.Equal(t, 0.0, reports["b"].CompletionRate)
	assert.Equal(t, 50.0, reports["a"].CompletionRate)
}

func TestAggregateIgnoresStaleAndDuplicateAnswers(t *testing.T) {
	form := formWith(models.Field{ID: "q", Type: models.FieldDropdown, Label: "Q", Options: []string{"x", "y"}})
	responses := []models.Response{
		respond(ans("removed", models.StringValue("x")), ans("q", models.StringValue("x")), ans("q", models.StringValue("y"))),
		respond(ans("removed", models.StringValue("y"))),
	}

	reports := AggregateFields(form, responses)
	require.Len(t, reports, 1)
	r := reports["q"]
	assert.Equal(t, 1, r.TotalResponses)
	assert.Equal(t, []string{"x"}, r.ChartData.Labels)
	assert.Equal(t, 50.0, r.CompletionRate)
}

func TestAggregateTotalNeverExceedsResponseCount(t *testing.T) {
	form := formWith(
		models.Field{ID: "a", Type: models.FieldCheckbox, Label: "A", Options: []string{"1", "2"}},
		models.Field{ID: "b", Type: models.FieldNumber, Label: "B"},
		models.Field{ID: "c", Type: "legacy_type", Label: "C"},
	)
	responses := []models.Response{
		respond(ans("a", models.ListValue("1", "2")), ans("a", models.ListValue("1")), ans("b", models.NumberValue(3))),
		respond(ans("c", models.StringValue("z"))),
		respond(),
	}

	for id, r := range AggregateFields(form, responses) {
		assert.LessOrEqual(t, r.TotalResponses, len(responses), id)
		assert.LessOrEqual(t, r.CompletionRate, 100.0, id)
	}
}
