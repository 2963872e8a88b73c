package usecase

import (
	"context"
	"errors"
	"time"

	"studybuddy/dto"
	"studybuddy/model"
	"studybuddy/repository"
)

const dayFormat = "2006-01-02"

// ErrInvalidRange is returned when the summary window is not one of the
// supported day counts.
var ErrInvalidRange = errors.New("range must be 7, 30 or 365 days")

var summaryRanges = map[int]bool{7: true, 30: true, 365: true}

type ProgressService struct {
	ProgressRepo *repository.ProgressRepo
}

// AddMinutes records study time against today's log row.
func (svc *ProgressService) AddMinutes(ctx context.Context, userID string, minutes int) error {
	if userID == "" {
		return errors.New("user ID is required")
	}
	if minutes <= 0 {
		return errors.New("minutes must be positive")
	}

	date := time.Now().Format(dayFormat)
	return svc.ProgressRepo.AddMinutes(ctx, userID, date, minutes)
}

// RecordQuizDone bumps today's quiz counter. Best effort; callers log
// and ignore failures.
func (svc *ProgressService) RecordQuizDone(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.New("user ID is required")
	}
	date := time.Now().Format(dayFormat)
	return svc.ProgressRepo.IncrementCounter(ctx, userID, date, "quizzes_done")
}

// Summary aggregates the user's progress over the trailing window of
// days, which must be 7, 30 or 365.
func (svc *ProgressService) Summary(ctx context.Context, userID string, days int) (*dto.ProgressSummary, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if !summaryRanges[days] {
		return nil, ErrInvalidRange
	}

	now := time.Now()
	since := now.AddDate(0, 0, -days).Format(dayFormat)

	logs, err := svc.ProgressRepo.GetUserLogs(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	return Summarize(logs, now, days), nil
}

// Summarize computes totals, the current streak and the weekly series
// from raw log rows, ignoring rows older than the window. Pure; now
// determines which day counts as "today".
func Summarize(logs []*model.ProgressLog, now time.Time, days int) *dto.ProgressSummary {
	cutoff := now.AddDate(0, 0, -days).Format(dayFormat)

	byDate := make(map[string]*model.ProgressLog, len(logs))
	total := 0
	rows := 0
	for _, l := range logs {
		if l.Date < cutoff {
			continue
		}
		byDate[l.Date] = l
		total += l.Minutes
		rows++
	}

	return &dto.ProgressSummary{
		TotalMinutes:   total,
		Streak:         streak(byDate, now),
		SessionsPerDay: sessionsPerDay(rows, byDate),
		Weekly:         weekly(byDate, now),
	}
}

// streak counts consecutive days with activity, walking back from
// today. A day counts when it has minutes or any counter activity.
// Today is optional: a streak kept alive through yesterday is not
// broken by a day that has only just begun.
func streak(byDate map[string]*model.ProgressLog, now time.Time) int {
	active := func(day time.Time) bool {
		l, ok := byDate[day.Format(dayFormat)]
		if !ok {
			return false
		}
		return l.Minutes > 0 || l.NotesCreated > 0 || l.QuizzesDone > 0
	}

	day := now
	if !active(day) {
		day = day.AddDate(0, 0, -1)
	}

	count := 0
	for active(day) {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

// weekly builds the last seven days in chronological order, ending on
// today. Days without a row contribute zero.
func weekly(byDate map[string]*model.ProgressLog, now time.Time) []dto.DayEntry {
	entries := make([]dto.DayEntry, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := day.Format(dayFormat)

		minutes := 0
		if l, ok := byDate[date]; ok {
			minutes = l.Minutes
		}

		entries = append(entries, dto.DayEntry{
			Label:   day.Weekday().String()[:3],
			Date:    date,
			Minutes: minutes,
		})
	}
	return entries
}

// sessionsPerDay is the number of log rows divided by the number of
// distinct days that have one.
func sessionsPerDay(rows int, byDate map[string]*model.ProgressLog) float64 {
	if len(byDate) == 0 {
		return 0
	}
	return float64(rows) / float64(len(byDate))
}
