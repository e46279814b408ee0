package responses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	DB "Backend-FormCraft/src/database"
	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/metrics"
	"Backend-FormCraft/src/models"
	"Backend-FormCraft/src/services/forms"
)

var (
	ErrFormUnavailable     = errors.New("form not found or not accepting responses")
	ErrDuplicateSubmission = errors.New("a response from this address was already recorded")
	ErrResponseNotFound    = errors.New("response not found")
)

type FormSource interface {
	GetPublic(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
	GetOwned(ctx context.Context, owner, id primitive.ObjectID) (*models.Form, error)
}

type Notifier interface {
	NotifySubmission(form *models.Form, resp *models.Response)
}

// CacheInvalidator drops cached analytics for a form.
type CacheInvalidator interface {
	Bump(ctx context.Context, formID string)
}

type noopCache struct{}

func (noopCache) Bump(context.Context, string) {}

type Service struct {
	responses *mongo.Collection
	forms     FormSource
	notifier  Notifier
	cache     CacheInvalidator
	now       func() time.Time
}

func NewService(db *mongo.Database, forms FormSource, notifier Notifier, cache CacheInvalidator) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	return &Service{
		responses: db.Collection(DB.ResponsesCollection),
		forms:     forms,
		notifier:  notifier,
		cache:     cache,
		now:       time.Now,
	}
}

// Submit stores a public submission. Notification runs after the insert
// and cannot fail the call.
func (s *Service) Submit(ctx context.Context, formID primitive.ObjectID, req *models.SubmitResponseRequest, meta models.RequestMeta) (*models.Response, error) {
	form, err := s.forms.GetPublic(ctx, formID)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return nil, ErrFormUnavailable
		}
		return nil, err
	}

	answers := SanitizeAnswers(form, req.Answers)
	if err := ValidateAnswers(form, answers); err != nil {
		return nil, err
	}

	meta.IP = strings.TrimSpace(meta.IP)
	if !form.Settings.AllowMultipleSubmissions && meta.IP != "" {
		n, err := s.responses.CountDocuments(ctx, bson.M{"form": form.ID, "meta.ip": meta.IP}, options.Count().SetLimit(1))
		if err != nil {
			return nil, fmt.Errorf("check previous submissions: %w", err)
		}
		if n > 0 {
			return nil, ErrDuplicateSubmission
		}
	}

	now := s.now().UTC()
	resp := &models.Response{
		ID:          primitive.NewObjectID(),
		Form:        form.ID,
		Answers:     answers,
		SubmittedAt: now,
		Meta:        meta,
		CreatedAt:   now,
	}
	if _, err := s.responses.InsertOne(ctx, resp); err != nil {
		return nil, fmt.Errorf("insert response: %w", err)
	}

	metrics.ResponsesSubmitted.Inc()
	s.cache.Bump(ctx, form.ID.Hex())
	if s.notifier != nil {
		s.notifier.NotifySubmission(form, resp)
	}
	logger.Infof("[responses] stored id=%s form=%s answers=%d", resp.ID.Hex(), form.ID.Hex(), len(answers))
	return resp, nil
}

// ListForForm returns an owned form with its responses, newest first.
func (s *Service) ListForForm(ctx context.Context, owner, formID primitive.ObjectID) (*models.Form, []models.Response, error) {
	form, err := s.forms.GetOwned(ctx, owner, formID)
	if err != nil {
		return nil, nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := s.responses.Find(ctx, bson.M{"form": form.ID}, opts)
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	list := []models.Response{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, nil, err
	}
	return form, list, nil
}

// Delete removes a response when owner owns its form.
func (s *Service) Delete(ctx context.Context, owner, responseID primitive.ObjectID) error {
	var resp models.Response
	err := s.responses.FindOne(ctx, bson.M{"_id": responseID}, options.FindOne().SetProjection(bson.M{"form": 1})).Decode(&resp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrResponseNotFound
		}
		return err
	}
	if _, err := s.forms.GetOwned(ctx, owner, resp.Form); err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return ErrResponseNotFound
		}
		return err
	}
	if _, err := s.responses.DeleteOne(ctx, bson.M{"_id": responseID}); err != nil {
		return err
	}
	s.cache.Bump(ctx, resp.Form.Hex())
	return nil
}
