package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response is one submission of answers to a form. Answers are never
// mutated after insert.
type Response struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Form        primitive.ObjectID `bson:"form" json:"form"`
	Answers     []Answer           `bson:"answers" json:"answers"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
	Meta        RequestMeta        `bson:"meta" json:"meta"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type Answer struct {
	FieldID string      `bson:"fieldId" json:"fieldId"`
	Value   AnswerValue `bson:"value" json:"value"`
}

type RequestMeta struct {
	IP        string `bson:"ip" json:"ip"`
	UserAgent string `bson:"userAgent" json:"userAgent"`
}

// AnswerByField returns the first answer for fieldID.
func (r *Response) AnswerByField(fieldID string) (AnswerValue, bool) {
	for _, a := range r.Answers {
		if a.FieldID == fieldID {
			return a.Value, true
		}
	}
	return AnswerValue{}, false
}

// SubmitResponseRequest is the public submission body.
type SubmitResponseRequest struct {
	Answers []Answer `json:"answers"`
}
