package usecase

import (
	"context"
	"testing"
	"time"

	"studybuddy/model"
)

func logFor(day time.Time, minutes int) *model.ProgressLog {
	return &model.ProgressLog{
		UserID:  "user-1",
		Date:    day.Format(dayFormat),
		Minutes: minutes,
	}
}

func TestSummarizeTotals(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	logs := []*model.ProgressLog{
		logFor(now, 30),
		logFor(now.AddDate(0, 0, -1), 45),
		logFor(now.AddDate(0, 0, -10), 25),
	}

	summary := Summarize(logs, now, 365)
	if summary.TotalMinutes != 100 {
		t.Errorf("expected total 100, got %d", summary.TotalMinutes)
	}
}

func TestStreakCountsBackFromToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	logs := []*model.ProgressLog{
		logFor(now, 30),
		logFor(now.AddDate(0, 0, -1), 20),
		logFor(now.AddDate(0, 0, -2), 10),
		// Gap at -3 breaks the run.
		logFor(now.AddDate(0, 0, -4), 15),
	}

	if got := Summarize(logs, now, 365).Streak; got != 3 {
		t.Errorf("expected streak 3, got %d", got)
	}
}

func TestStreakSurvivesMissingToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	logs := []*model.ProgressLog{
		logFor(now.AddDate(0, 0, -1), 20),
		logFor(now.AddDate(0, 0, -2), 10),
	}

	// No activity yet today; the streak through yesterday still counts.
	if got := Summarize(logs, now, 365).Streak; got != 2 {
		t.Errorf("expected streak 2, got %d", got)
	}
}

func TestStreakZeroWhenYesterdayMissing(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	logs := []*model.ProgressLog{
		logFor(now.AddDate(0, 0, -2), 10),
	}

	if got := Summarize(logs, now, 365).Streak; got != 0 {
		t.Errorf("expected streak 0, got %d", got)
	}
}

func TestStreakCountsCounterOnlyDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	logs := []*model.ProgressLog{
		{UserID: "user-1", Date: now.Format(dayFormat), NotesCreated: 1},
		logFor(now.AddDate(0, 0, -1), 20),
	}

	if got := Summarize(logs, now, 365).Streak; got != 2 {
		t.Errorf("expected streak 2, got %d", got)
	}
}

func TestWeeklyIsSevenChronologicalZeroFilledEntries(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) // a Tuesday
	logs := []*model.ProgressLog{
		logFor(now, 30),
		logFor(now.AddDate(0, 0, -3), 45),
		// A log outside the window must not appear.
		logFor(now.AddDate(0, 0, -9), 99),
	}

	weekly := Summarize(logs, now, 365).Weekly
	if len(weekly) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(weekly))
	}

	if weekly[6].Date != now.Format(dayFormat) {
		t.Errorf("expected last entry to be today, got %s", weekly[6].Date)
	}
	if weekly[0].Date != now.AddDate(0, 0, -6).Format(dayFormat) {
		t.Errorf("expected first entry six days back, got %s", weekly[0].Date)
	}

	for i := 1; i < 7; i++ {
		if weekly[i].Date <= weekly[i-1].Date {
			t.Fatalf("entries not chronological: %s before %s", weekly[i-1].Date, weekly[i].Date)
		}
	}

	total := 0
	for _, e := range weekly {
		total += e.Minutes
	}
	if total != 75 {
		t.Errorf("expected window total 75, got %d", total)
	}

	if weekly[6].Minutes != 30 {
		t.Errorf("expected today's 30 minutes, got %d", weekly[6].Minutes)
	}
	if weekly[3].Minutes != 45 {
		t.Errorf("expected 45 minutes three days back, got %d", weekly[3].Minutes)
	}
	if weekly[1].Minutes != 0 {
		t.Errorf("expected zero-filled day, got %d", weekly[1].Minutes)
	}

	if weekly[6].Label != "Tue" {
		t.Errorf("expected label Tue, got %s", weekly[6].Label)
	}
}

func TestSessionsPerDayDividesRowsByActiveDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	logs := []*model.ProgressLog{
		logFor(now, 30),
		// A day with a row but no minutes still counts as an active day.
		logFor(now.AddDate(0, 0, -1), 0),
	}

	if got := Summarize(logs, now, 30).SessionsPerDay; got != 1.0 {
		t.Errorf("expected 1.0 sessions per day, got %f", got)
	}
}

func TestSummarizeIgnoresRowsOutsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	logs := []*model.ProgressLog{
		logFor(now, 10),
		logFor(now.AddDate(0, 0, -400), 50),
	}

	summary := Summarize(logs, now, 7)
	if summary.TotalMinutes != 10 {
		t.Errorf("expected total 10 within the window, got %d", summary.TotalMinutes)
	}
	if summary.SessionsPerDay != 1.0 {
		t.Errorf("expected 1.0 sessions per day, got %f", summary.SessionsPerDay)
	}
}

func TestSummaryRejectsUnsupportedRange(t *testing.T) {
	svc := &ProgressService{}
	if _, err := svc.Summary(context.Background(), "user-1", 14); err != ErrInvalidRange {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestSummarizeEmptyHistory(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	summary := Summarize(nil, now, 7)

	if summary.TotalMinutes != 0 || summary.Streak != 0 {
		t.Errorf("expected zeroed summary, got %+v", summary)
	}
	if len(summary.Weekly) != 7 {
		t.Errorf("expected 7 weekly entries even with no logs, got %d", len(summary.Weekly))
	}
	if summary.SessionsPerDay != 0 {
		t.Errorf("expected 0 sessions per day, got %f", summary.SessionsPerDay)
	}
}
