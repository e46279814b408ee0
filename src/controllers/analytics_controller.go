package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/models"
	"Backend-FormCraft/src/services/analytics"
)

type AnalyticsService interface {
	Overview(ctx context.Context, owner primitive.ObjectID) (*models.Overview, error)
	FormAnalytics(ctx context.Context, owner, formID primitive.ObjectID, g analytics.GroupBy) (*models.FormAnalytics, error)
	FieldAnalytics(ctx context.Context, owner, formID primitive.ObjectID, fieldID string) (*models.FieldReport, error)
	FormResponses(ctx context.Context, owner, formID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error)
}

type ViewRecorder interface {
	Record(ctx context.Context, formID primitive.ObjectID, meta models.RequestMeta) (*models.View, error)
}

type AnalyticsController struct {
	analytics AnalyticsService
	views     ViewRecorder
}

func NewAnalyticsController(analytics AnalyticsService, views ViewRecorder) *AnalyticsController {
	return &AnalyticsController{analytics: analytics, views: views}
}

// RecordView godoc
// @Summary      Record a page load of a public form
// @Tags         analytics
// @Param        formId  path  string  true  "Form ID"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /analytics/forms/{formId}/view [post]
func (ctl *AnalyticsController) RecordView(c *fiber.Ctx) error {
	formID, err := parseID(c, "formId")
	if err != nil {
		return err
	}
	if _, err := ctl.views.Record(c.UserContext(), formID, requestMeta(c)); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "View recorded"})
}

// GetOverview godoc
// @Summary      Dashboard overview of all my forms
// @Description  Daily series cover the last 30 days and monthly series the last 6 months, zero-filled.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Overview
// @Router       /analytics/overview [get]
func (ctl *AnalyticsController) GetOverview(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	ov, err := ctl.analytics.Overview(c.UserContext(), owner)
	if err != nil {
		return err
	}
	return c.JSON(ov)
}

// GetFormAnalytics godoc
// @Summary      Analytics of one form
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        formId   path   string  true   "Form ID"
// @Param        groupBy  query  string  false  "daily, weekly or monthly" default(daily)
// @Success      200  {object}  models.FormAnalytics
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /analytics/forms/{formId}/analytics [get]
func (ctl *AnalyticsController) GetFormAnalytics(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	formID, err := parseID(c, "formId")
	if err != nil {
		return err
	}
	g, err := analytics.ParseGroupBy(c.Query("groupBy"))
	if err != nil {
		return err
	}
	report, err := ctl.analytics.FormAnalytics(c.UserContext(), owner, formID, g)
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// GetFieldAnalytics godoc
// @Summary      Analytics of one field
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        formId   path  string  true  "Form ID"
// @Param        fieldId  path  string  true  "Field ID"
// @Success      200  {object}  models.FieldReport
// @Failure      404  {object}  models.ErrorResponse
// @Router       /analytics/forms/{formId}/analytics/field/{fieldId} [get]
func (ctl *AnalyticsController) GetFieldAnalytics(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	formID, err := parseID(c, "formId")
	if err != nil {
		return err
	}
	report, err := ctl.analytics.FieldAnalytics(c.UserContext(), owner, formID, c.Params("fieldId"))
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// GetFormResponsesPage godoc
// @Summary      Paginated responses of one form
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        formId  path   string  true   "Form ID"
// @Param        page    query  int     false  "Page number" default(1)
// @Param        limit   query  int     false  "Items per page" default(10)
// @Param        order   query  string  false  "asc or desc" default(desc)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /analytics/forms/{formId}/analytics/responses [get]
func (ctl *AnalyticsController) GetFormResponsesPage(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	formID, err := parseID(c, "formId")
	if err != nil {
		return err
	}
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	page, err := ctl.analytics.FormResponses(c.UserContext(), owner, formID, params)
	if err != nil {
		return err
	}
	return c.JSON(page)
}
