package model

// Progress is the learning progress state kept in one namespace.
type Progress struct {
	CompletedLessons []int    `json:"completedLessons"`
	StudyTime        int      `json:"studyTime"`
	Streak           int      `json:"streak"`
	LastStudyDate    *string  `json:"lastStudyDate"`
	Achievements     []string `json:"achievements"`
	HexagramsLearned []int    `json:"hexagramsLearned"`
}

// NewProgress returns the empty progress state.
func NewProgress() Progress {
	return Progress{
		CompletedLessons: []int{},
		Achievements:     []string{},
		HexagramsLearned: []int{},
	}
}

// Clone returns a deep copy so callers can derive a new state without aliasing.
func (p Progress) Clone() Progress {
	out := p
	out.CompletedLessons = append([]int{}, p.CompletedLessons...)
	out.Achievements = append([]string{}, p.Achievements...)
	out.HexagramsLearned = append([]int{}, p.HexagramsLearned...)
	if p.LastStudyDate != nil {
		d := *p.LastStudyDate
		out.LastStudyDate = &d
	}
	return out
}
