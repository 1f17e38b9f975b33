package divination

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/yijing/internal/corpus"
	"github.com/rcliao/yijing/internal/kv"
	"github.com/rcliao/yijing/internal/model"
	"github.com/rcliao/yijing/internal/store"
)

type failingInterpreter struct{ calls int }

func (f *failingInterpreter) Interpret(context.Context, string, model.Hexagram) (string, error) {
	f.calls++
	return "", errors.New("upstream unavailable")
}

func newTestService(t *testing.T, interp Interpreter) (*Service, *store.Stores) {
	t.Helper()
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	stores := store.Open(kv.NewMemory(), store.Options{Now: func() time.Time {
		now = now.Add(time.Second)
		return now
	}})
	t.Cleanup(func() { stores.Close() })
	svc := New(corpus.Default(), stores, Options{
		Rand:        rand.New(rand.NewSource(42)),
		Interpreter: interp,
	})
	return svc, stores
}

func TestClassify(t *testing.T) {
	assert.Equal(t, OldYang, Classify(3))
	assert.Equal(t, YoungYang, Classify(2))
	assert.Equal(t, YoungYin, Classify(1))
	assert.Equal(t, OldYin, Classify(0))
	assert.True(t, OldYang.Changing())
	assert.True(t, OldYin.Changing())
	assert.False(t, YoungYin.Changing())
}

func TestThrowCoinsConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		th := ThrowCoins(rng)
		heads := 0
		for _, h := range th.Heads {
			if h {
				heads++
			}
		}
		assert.Equal(t, Classify(heads), th.Line)
	}
	assert.Len(t, ThrowSix(rng), 6)
}

func TestQuick(t *testing.T) {
	ctx := context.Background()
	svc, stores := newTestService(t, nil)

	res, err := svc.Quick(ctx)
	require.NoError(t, err)
	require.NotNil(t, res.Record)
	assert.Equal(t, model.RecordQuick, res.Record.Type)
	assert.Equal(t, model.MethodQuick, res.Record.Method)
	assert.Equal(t, res.Hexagram.ID, res.Record.HexagramID)

	hist, _ := stores.History.List(ctx)
	require.Len(t, hist, 1)
	assert.Equal(t, res.Record.ID, hist[0].ID)
}

func TestCoin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)

	res, err := svc.Coin(ctx)
	require.NoError(t, err)
	require.Len(t, res.Throws, 6)
	require.NotNil(t, res.Record)
	assert.Equal(t, model.RecordCoin, res.Record.Type)

	parts := strings.Split(res.Record.Details, ", ")
	require.Len(t, parts, 6)
	for i, p := range parts {
		assert.Equal(t, string(res.Throws[i].Line), p)
	}
}

func TestConsult(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)

	_, err := svc.Consult(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)

	res, err := svc.Consult(ctx, "近期事业如何？")
	require.NoError(t, err)
	assert.Contains(t, res.Response, res.Hexagram.Name)
	assert.Contains(t, res.Response, "近期事业如何？")
	require.NotNil(t, res.Record)
	assert.Equal(t, model.RecordAI, res.Record.Type)
	assert.Equal(t, res.Response, res.Record.AIResponse)
}

func TestConsultFallsBackToTemplate(t *testing.T) {
	ctx := context.Background()
	failing := &failingInterpreter{}
	svc, _ := newTestService(t, failing)

	res, err := svc.Consult(ctx, "感情方面有些迷茫")
	require.NoError(t, err)
	assert.Equal(t, 1, failing.calls)
	assert.NotEmpty(t, res.Response)
}

func TestTemplateDelayHonorsCancel(t *testing.T) {
	ti := NewTemplateInterpreter(rand.New(rand.NewSource(1)), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h, _ := corpus.Default().Hexagram(1)
	_, err := ti.Interpret(ctx, "q", h)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveHistoryOff(t *testing.T) {
	ctx := context.Background()
	svc, stores := newTestService(t, nil)
	_, err := stores.Settings.Set(ctx, "saveHistory", "false")
	require.NoError(t, err)

	res, err := svc.Quick(ctx)
	require.NoError(t, err)
	assert.Nil(t, res.Record)

	hist, _ := stores.History.List(ctx)
	assert.Empty(t, hist)
}

func TestDivineUsesDefaultMethod(t *testing.T) {
	ctx := context.Background()
	svc, stores := newTestService(t, nil)

	_, err := stores.Settings.Set(ctx, "defaultDivinationMethod", "coin")
	require.NoError(t, err)

	res, err := svc.Divine(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, res.Throws, 6)

	_, err = svc.Divine(ctx, "tarot", "")
	assert.Error(t, err)
}

func TestResolveUnknown(t *testing.T) {
	entries := Resolve(corpus.Default(), []model.DivinationRecord{
		model.NewQuickRecord(15),
		model.NewQuickRecord(99),
	})
	require.Len(t, entries, 2)
	assert.Equal(t, "谦", entries[0].Hexagram.Name)
	assert.Equal(t, corpus.Unknown, entries[1].Hexagram)
}
