package views

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	DB "Backend-FormCraft/src/database"
	"Backend-FormCraft/src/metrics"
	"Backend-FormCraft/src/models"
)

type FormGetter interface {
	Get(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
}

// Inserter is the part of *mongo.Collection that Record writes through.
type Inserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type CacheInvalidator interface {
	Bump(ctx context.Context, formID string)
}

// Service records one view per public page load. Views are never deduped.
type Service struct {
	views Inserter
	forms FormGetter
	cache CacheInvalidator
	now   func() time.Time
}

func NewService(db *mongo.Database, forms FormGetter, cache CacheInvalidator) *Service {
	return &Service{
		views: db.Collection(DB.ViewsCollection),
		forms: forms,
		cache: cache,
		now:   time.Now,
	}
}

// Record stores a view of formID. It returns forms.ErrFormNotFound for an
// unknown form.
func (s *Service) Record(ctx context.Context, formID primitive.ObjectID, meta models.RequestMeta) (*models.View, error) {
	form, err := s.forms.Get(ctx, formID)
	if err != nil {
		return nil, err
	}
	view := &models.View{
		ID:        primitive.NewObjectID(),
		Form:      form.ID,
		Meta:      meta,
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.views.InsertOne(ctx, view); err != nil {
		return nil, fmt.Errorf("insert view: %w", err)
	}
	metrics.ViewsRecorded.Inc()
	if s.cache != nil {
		s.cache.Bump(ctx, form.ID.Hex())
	}
	return view, nil
}
