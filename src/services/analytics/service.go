package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	DB "Backend-FormCraft/src/database"
	"Backend-FormCraft/src/models"
)

var ErrFieldNotFound = errors.New("field not found")

// FormFinder resolves forms for an owner. forms.Service satisfies it.
type FormFinder interface {
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Form, error)
	GetOwned(ctx context.Context, owner, id primitive.ObjectID) (*models.Form, error)
}

// Service loads raw records and hands them to the aggregators. Ownership is
// always resolved through FormFinder before anything is aggregated.
type Service struct {
	forms     FormFinder
	responses *mongo.Collection
	views     *mongo.Collection
	cache     *Cache
	now       func() time.Time
}

func NewService(db *mongo.Database, forms FormFinder, cache *Cache) *Service {
	return &Service{
		forms:     forms,
		responses: db.Collection(DB.ResponsesCollection),
		views:     db.Collection(DB.ViewsCollection),
		cache:     cache,
		now:       time.Now,
	}
}

// Overview builds the dashboard rollup for every form of owner.
func (s *Service) Overview(ctx context.Context, owner primitive.ObjectID) (*models.Overview, error) {
	forms, err := s.forms.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(forms))
	for i := range forms {
		ids[i] = forms[i].ID
	}

	var responses []models.Response
	var views []models.View
	if len(ids) > 0 {
		filter := bson.M{"form": bson.M{"$in": ids}}
		respOpts := options.Find().SetProjection(bson.M{"form": 1, "submittedAt": 1})
		if err := findAll(ctx, s.responses, filter, respOpts, &responses); err != nil {
			return nil, fmt.Errorf("load responses: %w", err)
		}
		viewOpts := options.Find().SetProjection(bson.M{"form": 1, "createdAt": 1})
		if err := findAll(ctx, s.views, filter, viewOpts, &views); err != nil {
			return nil, fmt.Errorf("load views: %w", err)
		}
	}
	return BuildOverview(forms, responses, views, s.now()), nil
}

// FormAnalytics returns stats, per-field reports and a timeline for one form.
func (s *Service) FormAnalytics(ctx context.Context, owner, formID primitive.ObjectID, g GroupBy) (*models.FormAnalytics, error) {
	form, err := s.forms.GetOwned(ctx, owner, formID)
	if err != nil {
		return nil, err
	}
	key := s.cache.Key(ctx, form, g)
	if cached, ok := s.cache.Get(ctx, key, s.now()); ok {
		return cached, nil
	}

	responses, err := s.loadResponses(ctx, form.ID)
	if err != nil {
		return nil, err
	}
	views, err := s.views.CountDocuments(ctx, bson.M{"form": form.ID})
	if err != nil {
		return nil, fmt.Errorf("count views: %w", err)
	}

	report := &models.FormAnalytics{
		FormID:         form.ID,
		Title:          form.Title,
		Stats:          BuildFormStats(responses, int(views), s.now()),
		FieldAnalytics: AggregateFields(form, responses),
		Timeline:       Timeline(responses, g),
		GroupBy:        string(g),
	}
	s.cache.Set(ctx, key, report, responses)
	return report, nil
}

// FieldAnalytics returns the report of a single field.
func (s *Service) FieldAnalytics(ctx context.Context, owner, formID primitive.ObjectID, fieldID string) (*models.FieldReport, error) {
	form, err := s.forms.GetOwned(ctx, owner, formID)
	if err != nil {
		return nil, err
	}
	field, ok := form.FieldByID(fieldID)
	if !ok {
		return nil, ErrFieldNotFound
	}
	responses, err := s.loadResponses(ctx, form.ID)
	if err != nil {
		return nil, err
	}
	single := *form
	single.Fields = []models.Field{field}
	return AggregateFields(&single, responses)[fieldID], nil
}

// FormResponses pages through the raw responses of one form by submission time.
func (s *Service) FormResponses(ctx context.Context, owner, formID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	form, err := s.forms.GetOwned(ctx, owner, formID)
	if err != nil {
		return nil, err
	}
	params.SortBy = "submittedAt"
	params.Normalize()

	filter := bson.M{"form": form.ID}
	total, err := s.responses.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: params.SortBy, Value: params.SortDirection()}}).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	responses := []models.Response{}
	if err := findAll(ctx, s.responses, filter, opts, &responses); err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(responses, total, params), nil
}

func (s *Service) loadResponses(ctx context.Context, formID primitive.ObjectID) ([]models.Response, error) {
	opts := options.Find().
		SetProjection(bson.M{"answers": 1, "submittedAt": 1, "form": 1}).
		SetSort(bson.D{{Key: "submittedAt", Value: 1}})
	var responses []models.Response
	if err := findAll(ctx, s.responses, bson.M{"form": formID}, opts, &responses); err != nil {
		return nil, fmt.Errorf("load responses: %w", err)
	}
	return responses, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions, out any) error {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}
