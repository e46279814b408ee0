package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/middleware"
	"Backend-FormCraft/src/models"
	"Backend-FormCraft/src/services/analytics"
	"Backend-FormCraft/src/services/forms"
	"Backend-FormCraft/src/services/responses"
	"Backend-FormCraft/src/services/templates"
	"Backend-FormCraft/src/utils"
)

type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) Create(ctx context.Context, owner primitive.ObjectID, in *models.FormPayload) (*models.Form, error) {
	args := m.Called(owner, in)
	return formOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFormService) CreateFromTemplate(ctx context.Context, owner primitive.ObjectID, tpl *models.FormTemplate) (*models.Form, error) {
	args := m.Called(owner, tpl.ID)
	return formOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFormService) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Form, error) {
	args := m.Called(owner)
	return args.Get(0).([]models.Form), args.Error(1)
}

func (m *MockFormService) GetOwned(ctx context.Context, owner, id primitive.ObjectID) (*models.Form, error) {
	args := m.Called(owner, id)
	return formOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFormService) GetPublic(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	args := m.Called(id)
	return formOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFormService) Update(ctx context.Context, owner, id primitive.ObjectID, in *models.FormPayload) (*models.Form, error) {
	args := m.Called(owner, id, in)
	return formOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFormService) Delete(ctx context.Context, owner, id primitive.ObjectID) error {
	return m.Called(owner, id).Error(0)
}

func formOrNil(v any) *models.Form {
	if v == nil {
		return nil
	}
	return v.(*models.Form)
}

type MockResponseService struct {
	mock.Mock
}

func (m *MockResponseService) Submit(ctx context.Context, formID primitive.ObjectID, req *models.SubmitResponseRequest, meta models.RequestMeta) (*models.Response, error) {
	args := m.Called(formID, len(req.Answers))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Response), args.Error(1)
}

func (m *MockResponseService) ListForForm(ctx context.Context, owner, formID primitive.ObjectID) (*models.Form, []models.Response, error) {
	args := m.Called(owner, formID)
	return formOrNil(args.Get(0)), nil, args.Error(1)
}

func (m *MockResponseService) Delete(ctx context.Context, owner, responseID primitive.ObjectID) error {
	return m.Called(owner, responseID).Error(0)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Overview(ctx context.Context, owner primitive.ObjectID) (*models.Overview, error) {
	args := m.Called(owner)
	return args.Get(0).(*models.Overview), args.Error(1)
}

func (m *MockAnalyticsService) FormAnalytics(ctx context.Context, owner, formID primitive.ObjectID, g analytics.GroupBy) (*models.FormAnalytics, error) {
	args := m.Called(owner, formID, g)
	return args.Get(0).(*models.FormAnalytics), args.Error(1)
}

func (m *MockAnalyticsService) FieldAnalytics(ctx context.Context, owner, formID primitive.ObjectID, fieldID string) (*models.FieldReport, error) {
	args := m.Called(owner, formID, fieldID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FieldReport), args.Error(1)
}

func (m *MockAnalyticsService) FormResponses(ctx context.Context, owner, formID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	args := m.Called(owner, formID, params)
	return args.Get(0).(*models.PaginatedResponse), args.Error(1)
}

type MockViewRecorder struct {
	mock.Mock
}

func (m *MockViewRecorder) Record(ctx context.Context, formID primitive.ObjectID, meta models.RequestMeta) (*models.View, error) {
	args := m.Called(formID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.View), args.Error(1)
}

type testApp struct {
	app       *fiber.App
	forms     *MockFormService
	responses *MockResponseService
	analytics *MockAnalyticsService
	views     *MockViewRecorder
	owner     primitive.ObjectID
	token     string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	catalogue, err := templates.Load()
	require.NoError(t, err)

	ta := &testApp{
		forms:     new(MockFormService),
		responses: new(MockResponseService),
		analytics: new(MockAnalyticsService),
		views:     new(MockViewRecorder),
		owner:     primitive.NewObjectID(),
	}
	ta.token, err = utils.GenerateJWT(ta.owner.Hex(), "owner@example.com")
	require.NoError(t, err)

	formCtl := NewFormController(ta.forms, catalogue)
	tplCtl := NewTemplateController(catalogue)
	respCtl := NewResponseController(ta.responses)
	anaCtl := NewAnalyticsController(ta.analytics, ta.views)
	shareCtl := NewShareController(ta.forms, func(id string) string { return "http://localhost:5173/public/" + id })

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/forms/:id/public", formCtl.GetPublicForm)
	app.Post("/forms", middleware.AuthJWT, formCtl.CreateForm)
	app.Post("/forms/from-template/:templateId", middleware.AuthJWT, formCtl.CreateFromTemplate)
	app.Get("/forms/:id/share", middleware.AuthJWT, shareCtl.GetShareLink)
	app.Get("/forms/:id/qrcode", middleware.AuthJWT, shareCtl.GetShareQRCode)
	app.Get("/forms/:id", middleware.AuthJWT, formCtl.GetForm)
	app.Get("/templates", middleware.AuthJWT, tplCtl.ListTemplates)
	app.Get("/templates/:id", middleware.AuthJWT, tplCtl.GetTemplate)
	app.Post("/responses/:formId", respCtl.SubmitResponse)
	app.Post("/analytics/forms/:formId/view", anaCtl.RecordView)
	app.Get("/analytics/forms/:formId/analytics", middleware.AuthJWT, anaCtl.GetFormAnalytics)
	app.Get("/analytics/forms/:formId/analytics/field/:fieldId", middleware.AuthJWT, anaCtl.GetFieldAnalytics)
	ta.app = app
	return ta
}

func (ta *testApp) do(t *testing.T, method, path, body string, authed bool) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+ta.token)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func decodeError(t *testing.T, body string) models.ErrorResponse {
	t.Helper()
	var out models.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func TestTemplatesRequireAuth(t *testing.T) {
	ta := newTestApp(t)

	status, _ := ta.do(t, fiber.MethodGet, "/templates", "", false)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body := ta.do(t, fiber.MethodGet, "/templates", "", true)
	require.Equal(t, fiber.StatusOK, status)
	var list []models.TemplateSummary
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.NotEmpty(t, list)
}

func TestUnknownTemplateIs404(t *testing.T) {
	ta := newTestApp(t)

	status, body := ta.do(t, fiber.MethodGet, "/templates/does-not-exist", "", true)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, templates.ErrTemplateNotFound.Error(), decodeError(t, body).Message)

	status, _ = ta.do(t, fiber.MethodPost, "/forms/from-template/does-not-exist", "", true)
	assert.Equal(t, fiber.StatusNotFound, status)
	ta.forms.AssertNotCalled(t, "CreateFromTemplate", mock.Anything, mock.Anything)
}

func TestInvalidObjectIDIs400(t *testing.T) {
	ta := newTestApp(t)

	status, body := ta.do(t, fiber.MethodGet, "/forms/not-an-id", "", true)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid id", decodeError(t, body).Message)

	status, _ = ta.do(t, fiber.MethodPost, "/responses/nope", `{"answers":[]}`, false)
	assert.Equal(t, fiber.StatusBadRequest, status)
	ta.responses.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestServiceErrorsMapToStatus(t *testing.T) {
	ta := newTestApp(t)
	formID := primitive.NewObjectID()

	ta.forms.On("GetOwned", ta.owner, formID).Return(nil, forms.ErrFormNotFound).Once()
	status, _ := ta.do(t, fiber.MethodGet, "/forms/"+formID.Hex(), "", true)
	assert.Equal(t, fiber.StatusNotFound, status)

	ta.forms.On("GetOwned", ta.owner, formID).Return(nil, errors.New("mongo exploded")).Once()
	status, body := ta.do(t, fiber.MethodGet, "/forms/"+formID.Hex(), "", true)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.NotContains(t, body, "mongo exploded")

	ta.forms.On("GetPublic", formID).Return(nil, forms.ErrFormNotFound).Once()
	status, _ = ta.do(t, fiber.MethodGet, "/forms/"+formID.Hex()+"/public", "", false)
	assert.Equal(t, fiber.StatusNotFound, status)
	ta.forms.AssertExpectations(t)
}

func TestSubmitResponseErrors(t *testing.T) {
	ta := newTestApp(t)
	formID := primitive.NewObjectID()
	body := `{"answers":[{"fieldId":"email","value":"nope"}]}`

	ta.responses.On("Submit", formID, 1).Return(nil, responses.ErrDuplicateSubmission).Once()
	status, _ := ta.do(t, fiber.MethodPost, "/responses/"+formID.Hex(), body, false)
	assert.Equal(t, fiber.StatusConflict, status)

	var verrs models.ValidationErrors
	verrs.Add("email", "must be a valid email")
	ta.responses.On("Submit", formID, 1).Return(nil, verrs).Once()
	status, raw := ta.do(t, fiber.MethodPost, "/responses/"+formID.Hex(), body, false)
	require.Equal(t, fiber.StatusBadRequest, status)
	er := decodeError(t, raw)
	require.Len(t, er.Errors, 1)
	assert.Equal(t, "email", er.Errors[0].Field)

	ta.responses.On("Submit", formID, 1).Return(nil, responses.ErrFormUnavailable).Once()
	status, _ = ta.do(t, fiber.MethodPost, "/responses/"+formID.Hex(), body, false)
	assert.Equal(t, fiber.StatusNotFound, status)

	saved := &models.Response{ID: primitive.NewObjectID(), Form: formID, Answers: []models.Answer{{FieldID: "email"}}}
	ta.responses.On("Submit", formID, 1).Return(saved, nil).Once()
	status, _ = ta.do(t, fiber.MethodPost, "/responses/"+formID.Hex(), body, false)
	assert.Equal(t, fiber.StatusCreated, status)
	ta.responses.AssertExpectations(t)
}

func TestFormAnalyticsGroupBy(t *testing.T) {
	ta := newTestApp(t)
	formID := primitive.NewObjectID()

	status, body := ta.do(t, fiber.MethodGet, "/analytics/forms/"+formID.Hex()+"/analytics?groupBy=hourly", "", true)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decodeError(t, body).Message, "groupBy")
	ta.analytics.AssertNotCalled(t, "FormAnalytics", mock.Anything, mock.Anything, mock.Anything)

	report := &models.FormAnalytics{FormID: formID, GroupBy: "weekly"}
	ta.analytics.On("FormAnalytics", ta.owner, formID, analytics.Weekly).Return(report, nil).Once()
	status, _ = ta.do(t, fiber.MethodGet, "/analytics/forms/"+formID.Hex()+"/analytics?groupBy=weekly", "", true)
	assert.Equal(t, fiber.StatusOK, status)

	ta.analytics.On("FieldAnalytics", ta.owner, formID, "ghost").Return(nil, analytics.ErrFieldNotFound).Once()
	status, _ = ta.do(t, fiber.MethodGet, "/analytics/forms/"+formID.Hex()+"/analytics/field/ghost", "", true)
	assert.Equal(t, fiber.StatusNotFound, status)
	ta.analytics.AssertExpectations(t)
}

func TestRecordViewIsPublic(t *testing.T) {
	ta := newTestApp(t)
	formID := primitive.NewObjectID()

	ta.views.On("Record", formID).Return(&models.View{Form: formID}, nil).Once()
	status, _ := ta.do(t, fiber.MethodPost, "/analytics/forms/"+formID.Hex()+"/view", "", false)
	assert.Equal(t, fiber.StatusCreated, status)

	ta.views.On("Record", formID).Return(nil, forms.ErrFormNotFound).Once()
	status, _ = ta.do(t, fiber.MethodPost, "/analytics/forms/"+formID.Hex()+"/view", "", false)
	assert.Equal(t, fiber.StatusNotFound, status)
	ta.views.AssertExpectations(t)
}

func TestShareLinkAndQRCode(t *testing.T) {
	ta := newTestApp(t)
	form := &models.Form{ID: primitive.NewObjectID(), User: ta.owner, Settings: models.FormSettings{IsPublic: true}}
	ta.forms.On("GetOwned", ta.owner, form.ID).Return(form, nil)

	status, body := ta.do(t, fiber.MethodGet, "/forms/"+form.ID.Hex()+"/share", "", true)
	require.Equal(t, fiber.StatusOK, status)
	var link ShareLink
	require.NoError(t, json.Unmarshal([]byte(body), &link))
	assert.Equal(t, "http://localhost:5173/public/"+form.ID.Hex(), link.URL)
	assert.True(t, link.IsPublic)
	assert.True(t, strings.HasPrefix(link.QRCode, "data:image/png;base64,"))

	req := httptest.NewRequest(fiber.MethodGet, "/forms/"+form.ID.Hex()+"/qrcode?size=128", nil)
	req.Header.Set("Authorization", "Bearer "+ta.token)
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	png, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(png), "\x89PNG"))

	status, _ = ta.do(t, fiber.MethodGet, "/forms/"+form.ID.Hex()+"/share", "", false)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
