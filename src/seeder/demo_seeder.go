// Package seeder fills a development database with a demo account, forms
// built from the template catalogue, and a few weeks of responses and views.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	DB "Backend-FormCraft/src/database"
	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/models"
	"Backend-FormCraft/src/services/auth"
	"Backend-FormCraft/src/services/forms"
	"Backend-FormCraft/src/services/templates"
)

const (
	DemoName     = "Demo Owner"
	DemoEmail    = "demo@formcraft.local"
	DemoPassword = "demo1234"
)

type Options struct {
	ResponsesPerForm int
	ViewsPerResponse int
	Days             int
	Seed             int64
}

func DefaultOptions() Options {
	return Options{ResponsesPerForm: 40, ViewsPerResponse: 3, Days: 45, Seed: time.Now().UnixNano()}
}

// SeedDemo is idempotent: when the demo owner already has forms nothing is
// written.
func SeedDemo(ctx context.Context, db *mongo.Database, catalogue *templates.Catalogue, opts Options) error {
	authSvc := auth.NewService(db)
	formSvc := forms.NewService(db)

	owner, err := demoOwner(ctx, authSvc)
	if err != nil {
		return err
	}
	existing, err := formSvc.ListByOwner(ctx, owner)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Infof("[seed] demo owner already has %d forms, skipping", len(existing))
		return nil
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	now := time.Now().UTC()
	responses := db.Collection(DB.ResponsesCollection)
	views := db.Collection(DB.ViewsCollection)

	for _, summary := range catalogue.List() {
		tpl, err := catalogue.Get(summary.ID)
		if err != nil {
			return err
		}
		form, err := formSvc.CreateFromTemplate(ctx, owner, tpl)
		if err != nil {
			logger.Errorf("❌ [seed] create form %q: %v", tpl.Name, err)
			continue
		}

		docs := SampleResponses(rng, form, opts.ResponsesPerForm, opts.Days, now)
		if err := insertAll(ctx, responses, docs); err != nil {
			return fmt.Errorf("seed responses of %s: %w", form.ID.Hex(), err)
		}
		viewDocs := SampleViews(rng, form.ID, len(docs)*opts.ViewsPerResponse, opts.Days, now)
		if err := insertAll(ctx, views, viewDocs); err != nil {
			return fmt.Errorf("seed views of %s: %w", form.ID.Hex(), err)
		}
		logger.Infof("✅ [seed] form %q (ID: %s) responses=%d views=%d", form.Title, form.ID.Hex(), len(docs), len(viewDocs))
	}
	logger.Infof("✅ [seed] log in as %s / %s", DemoEmail, DemoPassword)
	return nil
}

func demoOwner(ctx context.Context, svc *auth.Service) (primitive.ObjectID, error) {
	res, err := svc.Register(ctx, &models.RegisterRequest{Name: DemoName, Email: DemoEmail, Password: DemoPassword})
	if errors.Is(err, auth.ErrEmailTaken) || errors.Is(err, auth.ErrNameTaken) {
		res, err = svc.Login(ctx, &models.LoginRequest{Email: DemoEmail, Password: DemoPassword})
	}
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("demo owner: %w", err)
	}
	return res.User.ID, nil
}

func insertAll[T any](ctx context.Context, coll *mongo.Collection, docs []T) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, len(docs))
	for i := range docs {
		batch[i] = docs[i]
	}
	_, err := coll.InsertMany(ctx, batch)
	return err
}

// SampleResponses spreads n responses over the last days days.
func SampleResponses(rng *rand.Rand, form *models.Form, n, days int, now time.Time) []models.Response {
	out := make([]models.Response, 0, n)
	for i := 0; i < n; i++ {
		at := randomInstant(rng, days, now)
		out = append(out, models.Response{
			ID:          primitive.NewObjectID(),
			Form:        form.ID,
			Answers:     SampleAnswers(rng, form.Fields, i),
			SubmittedAt: at,
			Meta:        models.RequestMeta{IP: fmt.Sprintf("10.0.%d.%d", i/250, i%250+1), UserAgent: "formcraft-seed"},
			CreatedAt:   at,
		})
	}
	return out
}

func SampleViews(rng *rand.Rand, formID primitive.ObjectID, n, days int, now time.Time) []models.View {
	out := make([]models.View, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.View{
			ID:        primitive.NewObjectID(),
			Form:      formID,
			Meta:      models.RequestMeta{UserAgent: "formcraft-seed"},
			CreatedAt: randomInstant(rng, days, now),
		})
	}
	return out
}

func randomInstant(rng *rand.Rand, days int, now time.Time) time.Time {
	if days < 1 {
		days = 1
	}
	return now.Add(-time.Duration(rng.Int63n(int64(days) * int64(24*time.Hour))))
}

// SampleAnswers fills roughly four of five fields with a plausible value for
// the field type. File, signature and matrix fields are left unanswered.
func SampleAnswers(rng *rand.Rand, fields []models.Field, seq int) []models.Answer {
	out := make([]models.Answer, 0, len(fields))
	for _, f := range fields {
		if !f.Required && rng.Intn(5) == 0 {
			continue
		}
		v, ok := sampleValue(rng, f, seq)
		if !ok {
			continue
		}
		out = append(out, models.Answer{FieldID: f.ID, Value: v})
	}
	return out
}

func sampleValue(rng *rand.Rand, f models.Field, seq int) (models.AnswerValue, bool) {
	switch f.Type {
	case models.FieldShortText:
		return models.StringValue(fmt.Sprintf("Guest %d", seq+1)), true
	case models.FieldLongText:
		return models.StringValue(fmt.Sprintf("Sample comment number %d.", seq+1)), true
	case models.FieldEmail:
		return models.StringValue(fmt.Sprintf("guest%d@example.com", seq+1)), true
	case models.FieldDate:
		return models.StringValue(time.Now().UTC().AddDate(0, 0, rng.Intn(60)).Format("2006-01-02")), true
	case models.FieldNumber:
		lo, hi := 0.0, 10.0
		if f.Validation != nil && f.Validation.Min != nil {
			lo = *f.Validation.Min
		}
		if f.Validation != nil && f.Validation.Max != nil {
			hi = *f.Validation.Max
		}
		if hi < lo {
			hi = lo
		}
		return models.NumberValue(lo + float64(rng.Intn(int(hi-lo)+1))), true
	case models.FieldRating:
		opts := f.RatingOptions()
		return models.StringValue(opts[rng.Intn(len(opts))]), true
	case models.FieldDropdown, models.FieldRadio, models.FieldImageChoice:
		if len(f.Options) == 0 {
			return models.AnswerValue{}, false
		}
		return models.StringValue(f.Options[rng.Intn(len(f.Options))]), true
	case models.FieldCheckbox:
		if len(f.Options) == 0 {
			return models.AnswerValue{}, false
		}
		var picked []string
		for _, o := range f.Options {
			if rng.Intn(2) == 0 {
				picked = append(picked, o)
			}
		}
		if len(picked) == 0 {
			picked = append(picked, f.Options[0])
		}
		return models.ListValue(picked...), true
	}
	return models.AnswerValue{}, false
}
