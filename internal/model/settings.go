package model

import (
	"errors"
	"fmt"
	"regexp"
)

// Settings holds the user preferences. JSON names match the persisted layout.
type Settings struct {
	// Display
	Theme          string `json:"theme"`
	FontSize       int    `json:"fontSize"`
	Language       string `json:"language"`
	ShowAnimations bool   `json:"showAnimations"`
	CompactMode    bool   `json:"compactMode"`

	// Audio
	EnableSound bool    `json:"enableSound"`
	SoundVolume int     `json:"soundVolume"`
	VoiceSpeed  float64 `json:"voiceSpeed"`
	VoiceGender string  `json:"voiceGender"`

	// Notifications
	EnableNotifications bool   `json:"enableNotifications"`
	StudyReminder       bool   `json:"studyReminder"`
	ReminderTime        string `json:"reminderTime"`
	WeeklyReport        bool   `json:"weeklyReport"`

	// Study
	AutoSave        bool   `json:"autoSave"`
	ShowProgress    bool   `json:"showProgress"`
	DifficultyLevel string `json:"difficultyLevel"`
	StudyGoal       int    `json:"studyGoal"` // minutes per day

	// Divination
	DefaultDivinationMethod string `json:"defaultDivinationMethod"`
	SaveHistory             bool   `json:"saveHistory"`
	ShowFortune             bool   `json:"showFortune"`
	DetailedExplanation     bool   `json:"detailedExplanation"`

	// Privacy
	DataCollection bool `json:"dataCollection"`
	ShareUsage     bool `json:"shareUsage"`
	CloudSync      bool `json:"cloudSync"`
}

// DefaultSettings returns the hardcoded defaults.
func DefaultSettings() Settings {
	return Settings{
		Theme:                   "light",
		FontSize:                14,
		Language:                "zh-CN",
		ShowAnimations:          true,
		EnableSound:             true,
		SoundVolume:             70,
		VoiceSpeed:              1.0,
		VoiceGender:             "female",
		EnableNotifications:     true,
		StudyReminder:           true,
		ReminderTime:            "20:00",
		WeeklyReport:            true,
		AutoSave:                true,
		ShowProgress:            true,
		DifficultyLevel:         "auto",
		StudyGoal:               30,
		DefaultDivinationMethod: "quick",
		SaveHistory:             true,
		ShowFortune:             true,
		DetailedExplanation:     true,
	}
}

var (
	validThemes      = map[string]bool{"light": true, "dark": true}
	validLanguages   = map[string]bool{"zh-CN": true, "zh-TW": true, "en-US": true}
	validGenders     = map[string]bool{"female": true, "male": true}
	validDifficulty  = map[string]bool{"beginner": true, "intermediate": true, "advanced": true, "auto": true}
	validDivinations = map[string]bool{"quick": true, "coin": true, "ai": true}

	clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// Validate reports every out-of-range preference.
func (s Settings) Validate() error {
	var errs []error

	if !validThemes[s.Theme] {
		errs = append(errs, fmt.Errorf("theme must be light or dark, got %q", s.Theme))
	}
	if s.FontSize < 12 || s.FontSize > 20 {
		errs = append(errs, fmt.Errorf("fontSize must be within 12..20, got %d", s.FontSize))
	}
	if !validLanguages[s.Language] {
		errs = append(errs, fmt.Errorf("language %q is not supported", s.Language))
	}
	if s.SoundVolume < 0 || s.SoundVolume > 100 {
		errs = append(errs, fmt.Errorf("soundVolume must be within 0..100, got %d", s.SoundVolume))
	}
	if s.VoiceSpeed < 0.5 || s.VoiceSpeed > 1.5 {
		errs = append(errs, fmt.Errorf("voiceSpeed must be within 0.5..1.5, got %g", s.VoiceSpeed))
	}
	if !validGenders[s.VoiceGender] {
		errs = append(errs, fmt.Errorf("voiceGender must be female or male, got %q", s.VoiceGender))
	}
	if !clockRe.MatchString(s.ReminderTime) {
		errs = append(errs, fmt.Errorf("reminderTime must be HH:MM, got %q", s.ReminderTime))
	}
	if !validDifficulty[s.DifficultyLevel] {
		errs = append(errs, fmt.Errorf("difficultyLevel %q is not supported", s.DifficultyLevel))
	}
	if s.StudyGoal < 10 || s.StudyGoal > 120 {
		errs = append(errs, fmt.Errorf("studyGoal must be within 10..120 minutes, got %d", s.StudyGoal))
	}
	if !validDivinations[s.DefaultDivinationMethod] {
		errs = append(errs, fmt.Errorf("defaultDivinationMethod must be quick, coin or ai, got %q", s.DefaultDivinationMethod))
	}

	return errors.Join(errs...)
}
