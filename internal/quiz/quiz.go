// Package quiz builds trigram name quizzes and grades them.
package quiz

import (
	"errors"
	"math/rand"

	"github.com/rcliao/yijing/internal/model"
)

// OptionCount is the number of choices per question.
const OptionCount = 4

// Question asks for the name of a trigram given its symbol.
type Question struct {
	Symbol  string   `json:"symbol"`
	Meaning string   `json:"meaning"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// Correct reports whether choice is the right answer.
func (q Question) Correct(choice string) bool { return choice == q.Answer }

// Generate draws n questions from shuffled trigrams. n is capped at the
// number of trigrams.
func Generate(rng *rand.Rand, trigrams []model.Trigram, n int) ([]Question, error) {
	if len(trigrams) < OptionCount {
		return nil, errors.New("quiz needs at least four trigrams")
	}
	if n <= 0 || n > len(trigrams) {
		n = len(trigrams)
	}

	order := rng.Perm(len(trigrams))
	questions := make([]Question, 0, n)
	for _, idx := range order[:n] {
		t := trigrams[idx]
		options := []string{t.Name}
		for _, j := range rng.Perm(len(trigrams)) {
			if len(options) == OptionCount {
				break
			}
			if j != idx && trigrams[j].Name != t.Name {
				options = append(options, trigrams[j].Name)
			}
		}
		rng.Shuffle(len(options), func(a, b int) { options[a], options[b] = options[b], options[a] })
		questions = append(questions, Question{
			Symbol:  t.Symbol,
			Meaning: t.Meaning,
			Options: options,
			Answer:  t.Name,
		})
	}
	return questions, nil
}

// Grade is a letter grade with its title.
type Grade struct {
	Letter  string `json:"grade"`
	Title   string `json:"title"`
	Percent int    `json:"percent"`
}

var bands = []struct {
	min    int
	letter string
	title  string
}{
	{90, "A+", "易学大师"},
	{80, "A", "八卦高手"},
	{70, "B+", "进步神速"},
	{60, "B", "继续努力"},
}

// Score grades score correct answers out of total.
func Score(score, total int) Grade {
	pct := 0
	if total > 0 {
		pct = score * 100 / total
	}
	for _, b := range bands {
		if pct >= b.min {
			return Grade{Letter: b.letter, Title: b.title, Percent: pct}
		}
	}
	return Grade{Letter: "C", Title: "需要加强", Percent: pct}
}
