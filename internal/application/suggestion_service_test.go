package application

import (
	"strings"
	"testing"
)

func TestBuildPrompt_PerType(t *testing.T) {
	t.Parallel()

	ctxStr := "User: alex. Today is Sunday, August 30, 2026."

	cases := []struct {
		name     string
		sugType  string
		event    *SuggestionEvent
		contains string
	}{
		{"greeting", SuggestionGeneralGreeting, nil, "friendly, and positive greeting"},
		{"task tip plain", SuggestionTaskTip, nil, "productivity tip specifically related to managing tasks"},
		{"task tip added", SuggestionTaskTip, &SuggestionEvent{Action: "added", ItemName: "Write report"}, `just added a new task: "Write report"`},
		{"task tip completed", SuggestionTaskTip, &SuggestionEvent{Action: "completed", ItemName: "Write report"}, "brief praise"},
		{"expense plain", SuggestionExpenseInsight, nil, "personal finance awareness"},
		{"expense threshold", SuggestionExpenseInsight, &SuggestionEvent{Action: "threshold_reached", Currency: "$", ExpenseAmount: 120, ItemCategory: "dining"}, "significant expense"},
		{"habit plain", SuggestionHabitMotivation, nil, "building or maintaining good habits"},
		{"habit streak", SuggestionHabitMotivation, &SuggestionEvent{Action: "streak_update", ItemName: "Run", HabitStreakLength: 7}, "7-day streak"},
		{"daily summary", SuggestionDailySummary, nil, "open-ended question"},
		{"unknown type", "something_else", nil, "piece of wisdom"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := buildPrompt(tc.sugType, ctxStr, tc.event)
			if !strings.Contains(got, tc.contains) {
				t.Fatalf("prompt for %s missing %q:\n%s", tc.sugType, tc.contains, got)
			}
			if !strings.Contains(got, ctxStr) {
				t.Fatalf("prompt for %s does not embed the user context", tc.sugType)
			}
		})
	}
}

func TestSuggestionEvent_Empty(t *testing.T) {
	t.Parallel()

	var nilEvent *SuggestionEvent
	if !nilEvent.empty() {
		t.Fatal("nil event should be empty")
	}
	if !(&SuggestionEvent{}).empty() {
		t.Fatal("zero event should be empty")
	}
	if (&SuggestionEvent{Action: "added"}).empty() {
		t.Fatal("event with action should not be empty")
	}
}
