// Package testsupport times subtests and prints a per-suite summary.
package testsupport

import (
	"fmt"
	"testing"
	"time"
)

type Result struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// Suite collects the results of subtests run through it.
type Suite struct {
	Name    string
	Results []Result
}

func NewSuite(name string) *Suite {
	return &Suite{Name: name}
}

// Run executes fn as a subtest and records its duration and outcome.
func (s *Suite) Run(t *testing.T, name string, fn func(t *testing.T)) bool {
	t.Helper()
	return t.Run(name, func(t *testing.T) {
		start := time.Now()
		defer func() {
			s.Results = append(s.Results, Result{Name: name, Duration: time.Since(start), Passed: !t.Failed()})
		}()
		fn(t)
	})
}

func (s *Suite) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Passed {
			n++
		}
	}
	return n
}

func (s *Suite) TotalTime() time.Duration {
	var total time.Duration
	for _, r := range s.Results {
		total += r.Duration
	}
	return total
}

// PrintSummary is meant to be deferred at the top of a test function.
func (s *Suite) PrintSummary() {
	if len(s.Results) == 0 {
		return
	}
	passed := s.Passed()
	fmt.Printf("\n📊 Test Suite Summary: %s\n", s.Name)
	fmt.Printf("   Passed: %d ✅  Failed: %d ❌\n", passed, len(s.Results)-passed)
	fmt.Printf("   Total Time: %v  Average: %v\n", s.TotalTime(), s.TotalTime()/time.Duration(len(s.Results)))
	for _, r := range s.Results {
		status := "✅"
		if !r.Passed {
			status = "❌"
		}
		fmt.Printf("   %s %s: %v\n", status, r.Name, r.Duration)
	}
	fmt.Println()
}
