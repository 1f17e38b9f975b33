package progress

import (
	"slices"

	"github.com/rcliao/yijing/internal/model"
)

// Achievement describes one unlockable achievement.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	reached func(model.Progress) bool
}

// Achievements is the fixed catalog, in unlock-check order.
var Achievements = []Achievement{
	{ID: "study_1h", Title: "初学者", Description: "累计学习1小时", Icon: "📚",
		reached: func(p model.Progress) bool { return p.StudyTime >= 60 }},
	{ID: "study_5h", Title: "勤奋学者", Description: "累计学习5小时", Icon: "📖",
		reached: func(p model.Progress) bool { return p.StudyTime >= 300 }},
	{ID: "study_10h", Title: "易学达人", Description: "累计学习10小时", Icon: "🎓",
		reached: func(p model.Progress) bool { return p.StudyTime >= 600 }},
	{ID: "streak_3", Title: "三日不辍", Description: "连续学习3天", Icon: "🔥",
		reached: func(p model.Progress) bool { return p.Streak >= 3 }},
	{ID: "streak_7", Title: "七日精进", Description: "连续学习7天", Icon: "⭐",
		reached: func(p model.Progress) bool { return p.Streak >= 7 }},
	{ID: "streak_30", Title: "月圆功成", Description: "连续学习30天", Icon: "🏆",
		reached: func(p model.Progress) bool { return p.Streak >= 30 }},
	{ID: "lessons_5", Title: "入门有成", Description: "完成5个课程", Icon: "✅",
		reached: func(p model.Progress) bool { return len(p.CompletedLessons) >= 5 }},
	{ID: "lessons_10", Title: "小有所成", Description: "完成10个课程", Icon: "🎯",
		reached: func(p model.Progress) bool { return len(p.CompletedLessons) >= 10 }},
}

// DeriveAchievements appends every reached achievement not yet unlocked.
// Achievements are never removed, so re-running on the same state is a no-op.
func DeriveAchievements(state model.Progress) model.Progress {
	var unlocked []string
	for _, a := range Achievements {
		if a.reached(state) && !slices.Contains(state.Achievements, a.ID) {
			unlocked = append(unlocked, a.ID)
		}
	}
	if len(unlocked) == 0 {
		return state
	}
	next := state.Clone()
	next.Achievements = append(next.Achievements, unlocked...)
	return next
}

// Lookup returns the catalog entry for id, or a placeholder for ids the
// catalog does not know.
func Lookup(id string) Achievement {
	for _, a := range Achievements {
		if a.ID == id {
			return a
		}
	}
	return Achievement{ID: id, Title: "未知成就", Icon: "🏅"}
}
