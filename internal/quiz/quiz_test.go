package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/yijing/internal/corpus"
)

func TestGenerate(t *testing.T) {
	trigrams := corpus.Default().Trigrams
	qs, err := Generate(rand.New(rand.NewSource(7)), trigrams, 5)
	require.NoError(t, err)
	require.Len(t, qs, 5)

	seen := map[string]bool{}
	for _, q := range qs {
		assert.False(t, seen[q.Answer], "duplicate question %s", q.Answer)
		seen[q.Answer] = true

		require.Len(t, q.Options, OptionCount)
		assert.Contains(t, q.Options, q.Answer)
		distinct := map[string]bool{}
		for _, o := range q.Options {
			distinct[o] = true
		}
		assert.Len(t, distinct, OptionCount)
		assert.True(t, q.Correct(q.Answer))
	}
}

func TestGenerateCapsCount(t *testing.T) {
	trigrams := corpus.Default().Trigrams
	qs, err := Generate(rand.New(rand.NewSource(1)), trigrams, 20)
	require.NoError(t, err)
	assert.Len(t, qs, len(trigrams))

	_, err = Generate(rand.New(rand.NewSource(1)), trigrams[:2], 2)
	assert.Error(t, err)
}

func TestScore(t *testing.T) {
	tests := []struct {
		score, total int
		letter       string
		title        string
	}{
		{8, 8, "A+", "易学大师"},
		{9, 10, "A+", "易学大师"},
		{8, 10, "A", "八卦高手"},
		{7, 10, "B+", "进步神速"},
		{6, 10, "B", "继续努力"},
		{5, 10, "C", "需要加强"},
		{0, 0, "C", "需要加强"},
	}
	for _, tt := range tests {
		g := Score(tt.score, tt.total)
		assert.Equal(t, tt.letter, g.Letter, "%d/%d", tt.score, tt.total)
		assert.Equal(t, tt.title, g.Title)
	}
}
