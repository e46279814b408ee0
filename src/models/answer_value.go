package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ValueKind tags the variant held by an AnswerValue.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueString
	ValueNumber
	ValueList
)

// AnswerValue is string | number | string-list | null.
// Booleans are stored as "true"/"false"; JSON objects (matrix answers) are
// stored as their compact JSON text.
type AnswerValue struct {
	kind ValueKind
	str  string
	num  float64
	list []string
}

func NullValue() AnswerValue            { return AnswerValue{} }
func StringValue(s string) AnswerValue  { return AnswerValue{kind: ValueString, str: s} }
func NumberValue(n float64) AnswerValue { return AnswerValue{kind: ValueNumber, num: n} }
func ListValue(items ...string) AnswerValue {
	if items == nil {
		items = []string{}
	}
	return AnswerValue{kind: ValueList, list: items}
}

func (v AnswerValue) Kind() ValueKind { return v.kind }
func (v AnswerValue) IsNull() bool    { return v.kind == ValueNull }
func (v AnswerValue) List() []string  { return v.list }

// Number returns the numeric value, parsing strings. Lists and nulls never parse.
func (v AnswerValue) Number() (float64, bool) {
	switch v.kind {
	case ValueNumber:
		return v.num, true
	case ValueString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// String coerces scalars to their string form; lists are joined with ", ".
func (v AnswerValue) String() string {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case ValueList:
		return strings.Join(v.list, ", ")
	}
	return ""
}

// Items returns list elements, or the scalar as a single element.
func (v AnswerValue) Items() []string {
	switch v.kind {
	case ValueList:
		return v.list
	case ValueString, ValueNumber:
		return []string{v.String()}
	}
	return nil
}

// Empty is true for null, blank strings and empty lists.
func (v AnswerValue) Empty() bool {
	switch v.kind {
	case ValueNull:
		return true
	case ValueString:
		return strings.TrimSpace(v.str) == ""
	case ValueList:
		return len(v.list) == 0
	}
	return false
}

// Key is a canonical representation used for distinct counting.
func (v AnswerValue) Key() string {
	switch v.kind {
	case ValueString:
		return "s:" + v.str
	case ValueNumber:
		return "n:" + strconv.FormatFloat(v.num, 'g', -1, 64)
	case ValueList:
		b, _ := json.Marshal(v.list)
		return "l:" + string(b)
	}
	return "null"
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueString:
		return json.Marshal(v.str)
	case ValueNumber:
		return json.Marshal(v.num)
	case ValueList:
		return json.Marshal(v.list)
	}
	return []byte("null"), nil
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = NullValue()
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	case '[':
		var raw []any
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		items := make([]string, 0, len(raw))
		for _, it := range raw {
			items = append(items, scalarString(it))
		}
		*v = ListValue(items...)
	case '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*v = StringValue(buf.String())
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = StringValue(strconv.FormatBool(b))
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("answer value: %w", err)
		}
		*v = NumberValue(n)
	}
	return nil
}

func scalarString(it any) string {
	switch x := it.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	b, _ := json.Marshal(it)
	return string(b)
}

func (v AnswerValue) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch v.kind {
	case ValueString:
		return bson.MarshalValue(v.str)
	case ValueNumber:
		return bson.MarshalValue(v.num)
	case ValueList:
		return bson.MarshalValue(v.list)
	}
	return bson.TypeNull, nil, nil
}

func (v *AnswerValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*v = NullValue()
	case bson.TypeString:
		*v = StringValue(rv.StringValue())
	case bson.TypeDouble:
		*v = NumberValue(rv.Double())
	case bson.TypeInt32:
		*v = NumberValue(float64(rv.Int32()))
	case bson.TypeInt64:
		*v = NumberValue(float64(rv.Int64()))
	case bson.TypeBoolean:
		*v = StringValue(strconv.FormatBool(rv.Boolean()))
	case bson.TypeArray:
		values, err := rv.Array().Values()
		if err != nil {
			return err
		}
		items := make([]string, 0, len(values))
		for _, el := range values {
			switch el.Type {
			case bson.TypeString:
				items = append(items, el.StringValue())
			case bson.TypeDouble:
				items = append(items, strconv.FormatFloat(el.Double(), 'f', -1, 64))
			case bson.TypeInt32:
				items = append(items, strconv.Itoa(int(el.Int32())))
			case bson.TypeInt64:
				items = append(items, strconv.FormatInt(el.Int64(), 10))
			default:
				items = append(items, el.String())
			}
		}
		*v = ListValue(items...)
	default:
		// embedded documents and anything else keep their extended-JSON text
		*v = StringValue(rv.String())
	}
	return nil
}
