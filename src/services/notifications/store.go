package notifications

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	DB "Backend-FormCraft/src/database"
	"Backend-FormCraft/src/models"
)

// ErrMissing means the form or response was deleted before delivery.
var ErrMissing = errors.New("submission source not found")

// Store loads what a notification needs.
type Store interface {
	Form(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
	Response(ctx context.Context, id primitive.ObjectID) (*models.Response, error)
}

type mongoStore struct {
	forms     *mongo.Collection
	responses *mongo.Collection
}

func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{
		forms:     db.Collection(DB.FormsCollection),
		responses: db.Collection(DB.ResponsesCollection),
	}
}

func (s *mongoStore) Form(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	if err := s.forms.FindOne(ctx, bson.M{"_id": id}).Decode(&form); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMissing
		}
		return nil, err
	}
	return &form, nil
}

func (s *mongoStore) Response(ctx context.Context, id primitive.ObjectID) (*models.Response, error) {
	var resp models.Response
	if err := s.responses.FindOne(ctx, bson.M{"_id": id}).Decode(&resp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMissing
		}
		return nil, err
	}
	return &resp, nil
}
