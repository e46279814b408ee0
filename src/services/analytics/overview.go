package analytics

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormCraft/src/models"
)

const (
	OverviewDays   = 30
	OverviewMonths = 6
)

// BuildOverview rolls up every form of one owner. Records that belong to
// none of the given forms are ignored. Daily and monthly series are always
// zero-filled to OverviewDays and OverviewMonths entries ending at now.
func BuildOverview(forms []models.Form, responses []models.Response, views []models.View, now time.Time) *models.Overview {
	owned := make(map[primitive.ObjectID]struct{}, len(forms))
	for _, f := range forms {
		owned[f.ID] = struct{}{}
	}

	today := bucketStart(now, Daily)
	firstDay := today.AddDate(0, 0, -(OverviewDays - 1))
	thisMonth := bucketStart(now, Monthly)
	firstMonth := thisMonth.AddDate(0, -(OverviewMonths - 1), 0)

	respByForm := map[primitive.ObjectID]int{}
	viewByForm := map[primitive.ObjectID]int{}
	dailyResp, dailyView := map[string]int{}, map[string]int{}
	monthlyResp, monthlyView := map[string]int{}, map[string]int{}

	tally := func(at time.Time, daily, monthly map[string]int) {
		if at.IsZero() {
			return
		}
		d := bucketStart(at, Daily)
		if !d.Before(firstDay) && !d.After(today) {
			daily[bucketKey(d, Daily)]++
		}
		m := bucketStart(at, Monthly)
		if !m.Before(firstMonth) && !m.After(thisMonth) {
			monthly[bucketKey(m, Monthly)]++
		}
	}

	ov := &models.Overview{TotalForms: len(forms)}
	for i := range responses {
		r := &responses[i]
		if _, ok := owned[r.Form]; !ok {
			continue
		}
		respByForm[r.Form]++
		ov.TotalResponses++
		tally(r.SubmittedAt, dailyResp, monthlyResp)
	}
	for i := range views {
		v := &views[i]
		if _, ok := owned[v.Form]; !ok {
			continue
		}
		viewByForm[v.Form]++
		ov.TotalViews++
		tally(v.CreatedAt, dailyView, monthlyView)
	}

	ov.DailyResponseSeries = fillDaily(firstDay, dailyResp)
	ov.DailyViewSeries = fillDaily(firstDay, dailyView)
	ov.MonthlyResponseSeries = fillMonthly(firstMonth, monthlyResp)
	ov.MonthlyViewSeries = fillMonthly(firstMonth, monthlyView)

	ov.PerForm = make([]models.FormSummaryRow, 0, len(forms))
	for i := range forms {
		f := &forms[i]
		if f.Settings.IsPublic {
			ov.ActiveForms++
		}
		name := f.Title
		if name == "" {
			name = "Untitled"
		}
		nResp, nViews := respByForm[f.ID], viewByForm[f.ID]
		ov.PerForm = append(ov.PerForm, models.FormSummaryRow{
			ID:         f.ID,
			Name:       name,
			Responses:  nResp,
			Views:      nViews,
			Status:     f.Status(),
			Conversion: conversion(nResp, nViews),
		})
	}
	return ov
}

func fillDaily(first time.Time, counts map[string]int) []models.TimelinePoint {
	out := make([]models.TimelinePoint, OverviewDays)
	for i := range out {
		key := first.AddDate(0, 0, i).Format(dayLayout)
		out[i] = models.TimelinePoint{Date: key, Count: counts[key]}
	}
	return out
}

func fillMonthly(first time.Time, counts map[string]int) []models.MonthPoint {
	out := make([]models.MonthPoint, OverviewMonths)
	for i := range out {
		key := first.AddDate(0, i, 0).Format(monthLayout)
		out[i] = models.MonthPoint{Month: key, Count: counts[key]}
	}
	return out
}

// conversion is responses per view as a whole percentage.
func conversion(responses, views int) int {
	if views == 0 {
		return 0
	}
	return int(math.Round(float64(responses) / float64(views) * 100))
}

// BuildFormStats summarises one form's activity relative to now.
func BuildFormStats(responses []models.Response, views int, now time.Time) models.FormStats {
	submitted := make([]time.Time, len(responses))
	for i := range responses {
		submitted[i] = responses[i].SubmittedAt
	}
	return statsAt(submitted, views, now)
}

func statsAt(submitted []time.Time, views int, now time.Time) models.FormStats {
	stats := models.FormStats{TotalViews: views, TotalResponses: len(submitted)}
	if views > 0 {
		stats.CompletionRate = round2(float64(len(submitted)) / float64(views) * 100)
	}
	dayAgo, weekAgo, monthAgo := now.AddDate(0, 0, -1), now.AddDate(0, 0, -7), now.AddDate(0, 0, -30)
	for _, at := range submitted {
		if at.After(dayAgo) {
			stats.RespondentsToday++
		}
		if at.After(weekAgo) {
			stats.RespondentsThisWeek++
		}
		if at.After(monthAgo) {
			stats.RespondentsThisMonth++
		}
	}
	return stats
}
