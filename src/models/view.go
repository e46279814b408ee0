package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// View is one page load of a public form. Views are never deduplicated.
type View struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Form      primitive.ObjectID `bson:"form" json:"form"`
	Meta      RequestMeta        `bson:"meta" json:"meta"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
