package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/models"
)

func TestOverviewSeriesAreZeroFilled(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	ov := BuildOverview(nil, nil, nil, now)

	require.Len(t, ov.DailyResponseSeries, OverviewDays)
	require.Len(t, ov.DailyViewSeries, OverviewDays)
	require.Len(t, ov.MonthlyResponseSeries, OverviewMonths)
	require.Len(t, ov.MonthlyViewSeries, OverviewMonths)
	assert.Equal(t, "2024-02-15", ov.DailyResponseSeries[0].Date)
	assert.Equal(t, "2024-03-15", ov.DailyResponseSeries[OverviewDays-1].Date)
	assert.Equal(t, "2023-10", ov.MonthlyViewSeries[0].Month)
	assert.Equal(t, "2024-03", ov.MonthlyViewSeries[OverviewMonths-1].Month)
	for _, p := range ov.DailyViewSeries {
		assert.Zero(t, p.Count)
	}
	assert.Empty(t, ov.PerForm)
}

func TestOverviewTwoFormsWithoutResponses(t *testing.T) {
	public := models.Form{ID: primitive.NewObjectID(), Title: "Open", Settings: models.FormSettings{IsPublic: true}}
	draft := models.Form{ID: primitive.NewObjectID(), Settings: models.FormSettings{IsPublic: false}}

	ov := BuildOverview([]models.Form{public, draft}, nil, nil, time.Now())
	require.Len(t, ov.PerForm, 2)
	assert.Equal(t, 2, ov.TotalForms)
	assert.Equal(t, 1, ov.ActiveForms)

	assert.Equal(t, "Active", ov.PerForm[0].Status)
	assert.Equal(t, 0, ov.PerForm[0].Conversion)
	assert.Equal(t, "Draft", ov.PerForm[1].Status)
	assert.Equal(t, 0, ov.PerForm[1].Conversion)
	assert.Equal(t, "Untitled", ov.PerForm[1].Name)
}

func TestOverviewCountsAndConversion(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	form := models.Form{ID: primitive.NewObjectID(), Title: "Event", Settings: models.FormSettings{IsPublic: true}}
	other := primitive.NewObjectID()

	responses := []models.Response{
		{Form: form.ID, SubmittedAt: now},
		{Form: form.ID, SubmittedAt: now.AddDate(0, 0, -1)},
		{Form: form.ID, SubmittedAt: now.AddDate(0, -8, 0)}, // outside both windows
		{Form: other, SubmittedAt: now},
	}
	views := []models.View{
		{Form: form.ID, CreatedAt: now},
		{Form: form.ID, CreatedAt: now},
		{Form: form.ID, CreatedAt: now.AddDate(0, -2, 0)},
	}

	ov := BuildOverview([]models.Form{form}, responses, views, now)
	assert.Equal(t, 3, ov.TotalResponses)
	assert.Equal(t, 3, ov.TotalViews)
	assert.Equal(t, 1, ov.DailyResponseSeries[OverviewDays-1].Count)
	assert.Equal(t, 1, ov.DailyResponseSeries[OverviewDays-2].Count)
	assert.Equal(t, 2, ov.DailyViewSeries[OverviewDays-1].Count)
	assert.Equal(t, 2, ov.MonthlyResponseSeries[OverviewMonths-1].Count)
	assert.Equal(t, 1, ov.MonthlyViewSeries[OverviewMonths-3].Count)

	row := ov.PerForm[0]
	assert.Equal(t, 3, row.Responses)
	assert.Equal(t, 3, row.Views)
	assert.Equal(t, 100, row.Conversion)
}

func TestConversionRounds(t *testing.T) {
	assert.Equal(t, 0, conversion(5, 0))
	assert.Equal(t, 33, conversion(1, 3))
	assert.Equal(t, 67, conversion(2, 3))
}

func TestBuildFormStats(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	responses := []models.Response{
		{SubmittedAt: now.Add(-time.Hour)},
		{SubmittedAt: now.AddDate(0, 0, -3)},
		{SubmittedAt: now.AddDate(0, 0, -20)},
	}

	stats := BuildFormStats(responses, 7, now)
	assert.Equal(t, 7, stats.TotalViews)
	assert.Equal(t, 3, stats.TotalResponses)
	assert.Equal(t, 42.86, stats.CompletionRate)
	assert.Equal(t, 1, stats.RespondentsToday)
	assert.Equal(t, 2, stats.RespondentsThisWeek)
	assert.Equal(t, 3, stats.RespondentsThisMonth)

	empty := BuildFormStats(nil, 0, now)
	assert.Equal(t, 0.0, empty.CompletionRate)
}
