// Package progress derives learning progress: lesson completion, daily
// streaks and achievements.
package progress

import (
	"slices"
	"time"

	"github.com/rcliao/yijing/internal/model"
)

// LessonMinutes is the study time credited for completing one lesson.
const LessonMinutes = 30

// DateLayout is how the last study date is persisted.
const DateLayout = "2006-01-02"

// legacyDateLayout matches dates written by older clients.
const legacyDateLayout = "Mon Jan 02 2006"

// CompleteLesson marks lessonID complete as of today. Completing an
// already-completed lesson changes nothing. The first completion credits
// LessonMinutes, advances or resets the daily streak, records today as the
// last study date and unlocks any newly reached achievements.
func CompleteLesson(state model.Progress, lessonID int, today time.Time) model.Progress {
	if slices.Contains(state.CompletedLessons, lessonID) {
		return state
	}

	next := state.Clone()
	next.CompletedLessons = append(next.CompletedLessons, lessonID)
	next.StudyTime += LessonMinutes

	if next.LastStudyDate == nil || *next.LastStudyDate == "" {
		next.Streak = 1
	} else if last, ok := parseDate(*next.LastStudyDate); ok {
		switch delta := daysBetween(last, today); {
		case delta == 1:
			next.Streak++
		case delta > 1:
			next.Streak = 1
		}
	}

	day := today.Format(DateLayout)
	next.LastStudyDate = &day

	return DeriveAchievements(next)
}

// LearnHexagram records a hexagram as studied. Idempotent.
func LearnHexagram(state model.Progress, hexagramID int) model.Progress {
	if slices.Contains(state.HexagramsLearned, hexagramID) {
		return state
	}
	next := state.Clone()
	next.HexagramsLearned = append(next.HexagramsLearned, hexagramID)
	return next
}

// Overall returns completed lessons as a whole percentage of total.
func Overall(state model.Progress, totalLessons int) int {
	if totalLessons <= 0 {
		return 0
	}
	pct := float64(len(state.CompletedLessons)) * 100 / float64(totalLessons)
	return int(pct + 0.5)
}

// parseDate reads a stored study date. An unreadable date leaves the
// streak untouched.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{DateLayout, legacyDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// daysBetween counts calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
