// Package reminder computes study reminder times from user settings.
package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rcliao/yijing/internal/model"
)

// Kind names a reminder.
type Kind string

const (
	KindStudy  Kind = "study"
	KindWeekly Kind = "weekly_report"
)

// Reminder is one scheduled reminder.
type Reminder struct {
	Kind Kind      `json:"kind"`
	Spec string    `json:"spec"`
	Next time.Time `json:"next"`
}

// DailySpec converts an "HH:MM" time into a daily cron expression.
func DailySpec(hhmm string) (string, error) {
	h, m, err := parseClock(hhmm)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * *", m, h), nil
}

// WeeklySpec converts an "HH:MM" time into a Sunday cron expression.
func WeeklySpec(hhmm string) (string, error) {
	h, m, err := parseClock(hhmm)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * 0", m, h), nil
}

func parseClock(hhmm string) (int, int, error) {
	hs, ms, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, 0, fmt.Errorf("reminder time %q: want HH:MM", hhmm)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("reminder time %q: bad hour", hhmm)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("reminder time %q: bad minute", hhmm)
	}
	return h, m, nil
}

// Next returns the upcoming reminders after now, in now's location. Disabled
// reminders are omitted.
func Next(s model.Settings, now time.Time) ([]Reminder, error) {
	var out []Reminder
	add := func(kind Kind, spec func(string) (string, error)) error {
		expr, err := spec(s.ReminderTime)
		if err != nil {
			return err
		}
		sched, err := cron.ParseStandard(expr)
		if err != nil {
			return fmt.Errorf("parse %q: %w", expr, err)
		}
		out = append(out, Reminder{Kind: kind, Spec: expr, Next: sched.Next(now)})
		return nil
	}

	if s.StudyReminder {
		if err := add(KindStudy, DailySpec); err != nil {
			return nil, err
		}
	}
	if s.WeeklyReport {
		if err := add(KindWeekly, WeeklySpec); err != nil {
			return nil, err
		}
	}
	return out, nil
}
