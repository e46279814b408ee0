package analytics

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"Backend-FormCraft/src/models"
)

// GroupBy selects the bucket width of a timeline.
type GroupBy string

const (
	Daily   GroupBy = "daily"
	Weekly  GroupBy = "weekly"
	Monthly GroupBy = "monthly"
)

var ErrInvalidGroupBy = errors.New("groupBy must be daily, weekly or monthly")

// ParseGroupBy defaults to daily for an empty value.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(s) {
	case "":
		return Daily, nil
	case Daily, Weekly, Monthly:
		return GroupBy(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGroupBy, s)
}

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// bucketStart truncates t (in UTC) to the start of its bucket. Weeks start
// on Sunday.
func bucketStart(t time.Time, g GroupBy) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch g {
	case Weekly:
		return day.AddDate(0, 0, -int(day.Weekday()))
	case Monthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return day
}

func bucketKey(start time.Time, g GroupBy) string {
	if g == Monthly {
		return start.Format(monthLayout)
	}
	return start.Format(dayLayout)
}

// Timeline counts responses per bucket. Only non-empty buckets are
// returned, ordered by date.
func Timeline(responses []models.Response, g GroupBy) []models.TimelinePoint {
	counts := map[time.Time]int{}
	for i := range responses {
		ts := responses[i].SubmittedAt
		if ts.IsZero() {
			continue
		}
		counts[bucketStart(ts, g)]++
	}

	starts := make([]time.Time, 0, len(counts))
	for s := range counts {
		starts = append(starts, s)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	out := make([]models.TimelinePoint, 0, len(starts))
	for _, s := range starts {
		out = append(out, models.TimelinePoint{Date: bucketKey(s, g), Count: counts[s]})
	}
	return out
}
