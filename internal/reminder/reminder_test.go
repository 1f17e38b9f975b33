package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/yijing/internal/model"
)

func TestSpecs(t *testing.T) {
	spec, err := DailySpec("07:05")
	require.NoError(t, err)
	assert.Equal(t, "5 7 * * *", spec)

	spec, err = WeeklySpec("19:30")
	require.NoError(t, err)
	assert.Equal(t, "30 19 * * 0", spec)

	for _, bad := range []string{"", "7", "24:00", "12:60", "ab:cd"} {
		_, err := DailySpec(bad)
		assert.Error(t, err, bad)
	}
}

func TestNext(t *testing.T) {
	// Monday.
	now := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)

	s := model.DefaultSettings()
	s.StudyReminder = true
	s.WeeklyReport = true
	s.ReminderTime = "19:00"

	got, err := Next(s, now)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, KindStudy, got[0].Kind)
	assert.Equal(t, time.Date(2026, 10, 20, 19, 0, 0, 0, time.UTC), got[0].Next)

	assert.Equal(t, KindWeekly, got[1].Kind)
	assert.Equal(t, time.Date(2026, 10, 25, 19, 0, 0, 0, time.UTC), got[1].Next)
	assert.Equal(t, time.Sunday, got[1].Next.Weekday())
}

func TestNextSameDay(t *testing.T) {
	now := time.Date(2026, 10, 19, 6, 30, 0, 0, time.UTC)
	s := model.DefaultSettings()
	s.StudyReminder = true
	s.WeeklyReport = false
	s.ReminderTime = "07:00"

	got, err := Next(s, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC), got[0].Next)
}

func TestNextDisabled(t *testing.T) {
	s := model.DefaultSettings()
	s.StudyReminder = false
	s.WeeklyReport = false

	got, err := Next(s, time.Now())
	require.NoError(t, err)
	assert.Empty(t, got)
}
