package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	DB "Backend-FormCraft/src/database"
	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/models"
)

var ErrFormNotFound = errors.New("form not found")

var defaultTheme = models.FormTheme{
	PrimaryColor: "#6366f1",
	AccentColor:  "#22c55e",
	Background:   "#0f172a",
}

// DefaultSettings are applied when a form is created without settings.
func DefaultSettings() models.FormSettings {
	return models.FormSettings{
		IsPublic:                 true,
		Theme:                    defaultTheme,
		AllowMultipleSubmissions: true,
	}
}

type Service struct {
	forms     *mongo.Collection
	responses *mongo.Collection
	views     *mongo.Collection
	now       func() time.Time
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		forms:     db.Collection(DB.FormsCollection),
		responses: db.Collection(DB.ResponsesCollection),
		views:     db.Collection(DB.ViewsCollection),
		now:       time.Now,
	}
}

// Create stores a new form owned by owner.
func (s *Service) Create(ctx context.Context, owner primitive.ObjectID, in *models.FormPayload) (*models.Form, error) {
	now := s.now().UTC()
	form := &models.Form{
		ID:            primitive.NewObjectID(),
		User:          owner,
		Title:         "Untitled Form",
		CustomDetails: []models.CustomDetail{},
		Fields:        []models.Field{},
		Settings:      DefaultSettings(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := applyPayload(form, in); err != nil {
		return nil, err
	}

	if _, err := s.forms.InsertOne(ctx, form); err != nil {
		return nil, fmt.Errorf("insert form: %w", err)
	}
	logger.Infof("[forms] created id=%s owner=%s fields=%d", form.ID.Hex(), owner.Hex(), len(form.Fields))
	return form, nil
}

// CreateFromTemplate copies a template into a new form with fresh field ids.
func (s *Service) CreateFromTemplate(ctx context.Context, owner primitive.ObjectID, tpl *models.FormTemplate) (*models.Form, error) {
	fields := InstantiateFields(tpl.Form.Fields)
	title, desc := tpl.Form.Title, tpl.Form.Description
	settings := tpl.Form.Settings
	return s.Create(ctx, owner, &models.FormPayload{
		Title:       &title,
		Description: &desc,
		Fields:      fields,
		Settings:    &settings,
	})
}

// InstantiateFields assigns new uuid ids and rewrites logic references.
func InstantiateFields(src []models.Field) []models.Field {
	remap := make(map[string]string, len(src))
	for _, f := range src {
		remap[f.ID] = uuid.NewString()
	}
	out := make([]models.Field, len(src))
	for i, f := range src {
		f.ID = remap[f.ID]
		f.Options = append([]string(nil), f.Options...)
		if f.Logic != nil {
			rule := *f.Logic
			if id, ok := remap[rule.ShowWhenFieldID]; ok {
				rule.ShowWhenFieldID = id
			}
			f.Logic = &rule
		}
		out[i] = f
	}
	return out
}

// ListByOwner returns the owner's forms, most recently updated first.
func (s *Service) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Form, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := s.forms.Find(ctx, bson.M{"user": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	forms := []models.Form{}
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

// GetOwned returns the form only if owner owns it.
func (s *Service) GetOwned(ctx context.Context, owner, id primitive.ObjectID) (*models.Form, error) {
	return s.findOne(ctx, bson.M{"_id": id, "user": owner})
}

// Get returns a form regardless of owner or visibility.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

// GetPublic returns the form only while it is public.
func (s *Service) GetPublic(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	form, err := s.findOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if !form.Settings.IsPublic {
		return nil, ErrFormNotFound
	}
	return form, nil
}

func (s *Service) findOne(ctx context.Context, filter bson.M) (*models.Form, error) {
	var form models.Form
	err := s.forms.FindOne(ctx, filter).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

// Update applies the non-nil parts of in to an owned form.
func (s *Service) Update(ctx context.Context, owner, id primitive.ObjectID, in *models.FormPayload) (*models.Form, error) {
	form, err := s.GetOwned(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if err := applyPayload(form, in); err != nil {
		return nil, err
	}
	form.UpdatedAt = s.now().UTC()

	res, err := s.forms.ReplaceOne(ctx, bson.M{"_id": id, "user": owner}, form)
	if err != nil {
		return nil, fmt.Errorf("update form: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrFormNotFound
	}
	return form, nil
}

// Delete removes an owned form and cascades to its responses and views.
func (s *Service) Delete(ctx context.Context, owner, id primitive.ObjectID) error {
	res, err := s.forms.DeleteOne(ctx, bson.M{"_id": id, "user": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrFormNotFound
	}

	respRes, err := s.responses.DeleteMany(ctx, bson.M{"form": id})
	if err != nil {
		return fmt.Errorf("delete responses of form %s: %w", id.Hex(), err)
	}
	viewRes, err := s.views.DeleteMany(ctx, bson.M{"form": id})
	if err != nil {
		return fmt.Errorf("delete views of form %s: %w", id.Hex(), err)
	}
	logger.Infof("[forms] deleted id=%s responses=%d views=%d", id.Hex(), respRes.DeletedCount, viewRes.DeletedCount)
	return nil
}

func applyPayload(form *models.Form, in *models.FormPayload) error {
	if in == nil {
		return nil
	}
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setString(&form.Title, in.Title)
	if form.Title == "" {
		form.Title = "Untitled Form"
	}
	setString(&form.Description, in.Description)
	setString(&form.Subtitle, in.Subtitle)
	setString(&form.Date, in.Date)
	setString(&form.Time, in.Time)
	setString(&form.Location, in.Location)
	setString(&form.OrganizerName, in.OrganizerName)
	setString(&form.OrganizerEmail, in.OrganizerEmail)
	setString(&form.OrganizerPhone, in.OrganizerPhone)

	if in.CustomDetails != nil {
		form.CustomDetails = in.CustomDetails
	}
	if in.Fields != nil {
		if err := ValidateFields(in.Fields); err != nil {
			return err
		}
		form.Fields = normalizeFields(in.Fields)
	}
	if in.Settings != nil {
		settings := *in.Settings
		if settings.Theme.PrimaryColor == "" {
			settings.Theme.PrimaryColor = defaultTheme.PrimaryColor
		}
		if settings.Theme.AccentColor == "" {
			settings.Theme.AccentColor = defaultTheme.AccentColor
		}
		if settings.Theme.Background == "" {
			settings.Theme.Background = defaultTheme.Background
		}
		settings.NotificationEmail = strings.TrimSpace(settings.NotificationEmail)
		form.Settings = settings
	}
	return nil
}
