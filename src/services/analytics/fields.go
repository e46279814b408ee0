package analytics

import (
	"math"

	"Backend-FormCraft/src/models"
)

// fieldCollector accumulates answers for one field and writes its
// type-specific payload into the report.
type fieldCollector interface {
	add(v models.AnswerValue)
	fill(r *models.FieldReport)
}

func newCollector(f models.Field) fieldCollector {
	switch f.Type.Kind() {
	case models.KindChoice:
		return &choiceCollector{field: f, counts: map[string]int{}}
	case models.KindRating:
		return &ratingCollector{field: f, counts: map[string]int{}}
	case models.KindNumeric:
		return &numberCollector{}
	default:
		return &textCollector{seen: map[string]struct{}{}}
	}
}

// choiceCollector counts options in first-observed order; list answers
// count every element.
type choiceCollector struct {
	field  models.Field
	order  []string
	counts map[string]int
}

func (c *choiceCollector) add(v models.AnswerValue) {
	for _, item := range v.Items() {
		if _, ok := c.counts[item]; !ok {
			c.order = append(c.order, item)
		}
		c.counts[item]++
	}
}

func (c *choiceCollector) fill(r *models.FieldReport) {
	labels := make([]string, 0, len(c.order))
	data := make([]int, 0, len(c.order))
	for _, label := range c.order {
		labels = append(labels, label)
		data = append(data, c.counts[label])
	}
	options := c.field.Options
	if options == nil {
		options = []string{}
	}
	r.ChartData = &models.ChartData{Type: "pie", Labels: labels, Data: data, Options: options}
}

// ratingCollector always reports every configured bucket.
type ratingCollector struct {
	field  models.Field
	counts map[string]int
}

func (c *ratingCollector) add(v models.AnswerValue) {
	for _, item := range v.Items() {
		c.counts[item]++
	}
}

func (c *ratingCollector) fill(r *models.FieldReport) {
	opts := c.field.RatingOptions()
	labels := append([]string(nil), opts...)
	data := make([]int, len(opts))
	for i, opt := range opts {
		data[i] = c.counts[opt]
	}
	r.ChartData = &models.ChartData{Type: "bar", Labels: labels, Data: data}
}

// numberCollector keeps only values that parse as numbers.
type numberCollector struct {
	n        int
	min, max float64
	total    float64
}

func (c *numberCollector) add(v models.AnswerValue) {
	x, ok := v.Number()
	if !ok || math.IsNaN(x) || math.IsInf(x, 0) {
		return
	}
	if c.n == 0 || x < c.min {
		c.min = x
	}
	if c.n == 0 || x > c.max {
		c.max = x
	}
	c.total += x
	c.n++
}

func (c *numberCollector) fill(r *models.FieldReport) {
	if c.n == 0 {
		return
	}
	r.Stats = &models.NumberStats{
		Min:   c.min,
		Max:   c.max,
		Avg:   round2(c.total / float64(c.n)),
		Total: c.total,
	}
}

type textCollector struct {
	seen map[string]struct{}
}

func (c *textCollector) add(v models.AnswerValue) {
	c.seen[v.Key()] = struct{}{}
}

func (c *textCollector) fill(r *models.FieldReport) {
	n := len(c.seen)
	r.UniqueCount = &n
}

// AggregateFields builds a report for every field of the form. Answers for
// unknown field ids and null answers are skipped; each response counts at
// most once per field.
func AggregateFields(form *models.Form, responses []models.Response) map[string]*models.FieldReport {
	reports := make(map[string]*models.FieldReport, len(form.Fields))
	collectors := make(map[string]fieldCollector, len(form.Fields))
	for _, f := range form.Fields {
		reports[f.ID] = &models.FieldReport{FieldID: f.ID, Label: f.Label, Type: f.Type}
		collectors[f.ID] = newCollector(f)
	}

	for i := range responses {
		counted := make(map[string]bool, len(responses[i].Answers))
		for _, a := range responses[i].Answers {
			c, ok := collectors[a.FieldID]
			if !ok || counted[a.FieldID] || a.Value.IsNull() {
				continue
			}
			counted[a.FieldID] = true
			reports[a.FieldID].TotalResponses++
			c.add(a.Value)
		}
	}

	total := len(responses)
	for id, r := range reports {
		r.CompletionRate = completionRate(r.TotalResponses, total)
		collectors[id].fill(r)
	}
	return reports
}

func completionRate(answered, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(answered) / float64(total) * 100
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
