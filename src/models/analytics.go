package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FieldReport is the per-field result of the field analytics aggregator.
type FieldReport struct {
	FieldID        string       `json:"fieldId"`
	Label          string       `json:"label"`
	Type           FieldType    `json:"type"`
	TotalResponses int          `json:"totalResponses"`
	CompletionRate float64      `json:"completionRate"`
	ChartData      *ChartData   `json:"chartData,omitempty"`
	Stats          *NumberStats `json:"stats,omitempty"`
	UniqueCount    *int         `json:"uniqueCount,omitempty"`
}

type ChartData struct {
	Type    string   `json:"type"`
	Labels  []string `json:"labels"`
	Data    []int    `json:"data"`
	Options []string `json:"options,omitempty"`
}

type NumberStats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Avg   float64 `json:"avg"`
	Total float64 `json:"total"`
}

// TimelinePoint is one bucket of a date series.
type TimelinePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// MonthPoint is one bucket of a monthly series.
type MonthPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type FormSummaryRow struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	Responses  int                `json:"responses"`
	Views      int                `json:"views"`
	Status     string             `json:"status"`
	Conversion int                `json:"conversion"`
}

// Overview is the dashboard rollup across a user's forms.
type Overview struct {
	TotalForms            int              `json:"totalForms"`
	ActiveForms           int              `json:"activeForms"`
	TotalResponses        int              `json:"totalResponses"`
	TotalViews            int              `json:"totalViews"`
	DailyViewSeries       []TimelinePoint  `json:"dailyViewSeries"`
	DailyResponseSeries   []TimelinePoint  `json:"dailyResponseSeries"`
	MonthlyViewSeries     []MonthPoint     `json:"monthlyViewSeries"`
	MonthlyResponseSeries []MonthPoint     `json:"monthlyResponseSeries"`
	PerForm               []FormSummaryRow `json:"perForm"`
}

type FormStats struct {
	TotalViews           int     `json:"totalViews"`
	TotalResponses       int     `json:"totalResponses"`
	CompletionRate       float64 `json:"completionRate"`
	RespondentsToday     int     `json:"respondentsToday"`
	RespondentsThisWeek  int     `json:"respondentsThisWeek"`
	RespondentsThisMonth int     `json:"respondentsThisMonth"`
}

// FormAnalytics is the full analytics report for one form.
type FormAnalytics struct {
	FormID         primitive.ObjectID      `json:"formId"`
	Title          string                  `json:"title"`
	Stats          FormStats               `json:"stats"`
	FieldAnalytics map[string]*FieldReport `json:"fieldAnalytics"`
	Timeline       []TimelinePoint         `json:"timeline"`
	GroupBy        string                  `json:"groupBy"`
}
