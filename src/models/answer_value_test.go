package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAnswerValueUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want AnswerValue
	}{
		{"String", `"Pizza"`, StringValue("Pizza")},
		{"EmptyString", `""`, StringValue("")},
		{"Integer", `4`, NumberValue(4)},
		{"Float", `-2.5`, NumberValue(-2.5)},
		{"List", `["A","B"]`, ListValue("A", "B")},
		{"MixedList", `["A",2,true,null]`, ListValue("A", "2", "true", "")},
		{"EmptyList", `[]`, ListValue()},
		{"Null", `null`, NullValue()},
		{"Bool", `true`, StringValue("true")},
		{"Object", `{ "row1": "col2" }`, StringValue(`{"row1":"col2"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Answer
			require.NoError(t, json.Unmarshal([]byte(`{"fieldId":"q","value":`+tt.raw+`}`), &a))
			assert.Equal(t, tt.want, a.Value)
		})
	}

	t.Run("MissingValueIsNull", func(t *testing.T) {
		var a Answer
		require.NoError(t, json.Unmarshal([]byte(`{"fieldId":"q"}`), &a))
		assert.True(t, a.Value.IsNull())
	})

	t.Run("Malformed", func(t *testing.T) {
		var a Answer
		assert.Error(t, json.Unmarshal([]byte(`{"fieldId":"q","value":[1,}`), &a))
	})
}

func TestAnswerValueMarshalJSON(t *testing.T) {
	raw, err := json.Marshal([]Answer{
		{FieldID: "s", Value: StringValue("x")},
		{FieldID: "n", Value: NumberValue(2)},
		{FieldID: "l", Value: ListValue("A", "B")},
		{FieldID: "z", Value: NullValue()},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"fieldId":"s","value":"x"},
		{"fieldId":"n","value":2},
		{"fieldId":"l","value":["A","B"]},
		{"fieldId":"z","value":null}
	]`, string(raw))
}

func TestAnswerValueBSONRoundTrip(t *testing.T) {
	for _, v := range []AnswerValue{StringValue("hello"), NumberValue(3.25), ListValue("A", "B"), NullValue()} {
		raw, err := bson.Marshal(Answer{FieldID: "q", Value: v})
		require.NoError(t, err)

		var out Answer
		require.NoError(t, bson.Unmarshal(raw, &out))
		assert.Equal(t, "q", out.FieldID)
		assert.Equal(t, v, out.Value)
	}
}

func TestAnswerValueUnmarshalBSONTypes(t *testing.T) {
	tests := []struct {
		name string
		doc  bson.M
		want AnswerValue
	}{
		{"Int32", bson.M{"value": int32(7)}, NumberValue(7)},
		{"Int64", bson.M{"value": int64(1) << 40}, NumberValue(float64(int64(1) << 40))},
		{"Double", bson.M{"value": 1.5}, NumberValue(1.5)},
		{"Array", bson.M{"value": bson.A{"A", int32(2), int64(3), 0.5}}, ListValue("A", "2", "3", "0.5")},
		{"Null", bson.M{"value": nil}, NullValue()},
		{"Bool", bson.M{"value": false}, StringValue("false")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(tt.doc)
			require.NoError(t, err)
			var out Answer
			require.NoError(t, bson.Unmarshal(raw, &out))
			assert.Equal(t, tt.want, out.Value)
		})
	}

	t.Run("EmbeddedDocument", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"value": bson.M{"row1": "col2"}})
		require.NoError(t, err)
		var out Answer
		require.NoError(t, bson.Unmarshal(raw, &out))
		assert.Equal(t, ValueString, out.Value.Kind())
		assert.Contains(t, out.Value.String(), "row1")
	})
}

func TestAnswerValueAccessors(t *testing.T) {
	n, ok := StringValue(" 12.5 ").Number()
	assert.True(t, ok)
	assert.Equal(t, 12.5, n)
	_, ok = ListValue("1").Number()
	assert.False(t, ok)

	assert.Equal(t, "A, B", ListValue("A", "B").String())
	assert.Equal(t, []string{"3"}, NumberValue(3).Items())
	assert.Nil(t, NullValue().Items())

	assert.True(t, StringValue("  ").Empty())
	assert.True(t, ListValue().Empty())
	assert.False(t, NumberValue(0).Empty())

	assert.Equal(t, StringValue("1").Key(), StringValue("1").Key())
	assert.NotEqual(t, StringValue("1").Key(), NumberValue(1).Key())
}
