// Package divination draws hexagrams by the quick, coin and consult methods
// and records each reading in the divination history.
package divination

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rcliao/yijing/internal/corpus"
	"github.com/rcliao/yijing/internal/model"
	"github.com/rcliao/yijing/internal/store"
)

// ErrEmptyQuestion is returned when a consultation has no question.
var ErrEmptyQuestion = errors.New("question is required")

// Result is the outcome of one divination.
type Result struct {
	Hexagram model.Hexagram `json:"hexagram"`
	Throws   []Throw        `json:"throws,omitempty"`
	Response string         `json:"response,omitempty"`
	// Record is nil when history saving is turned off.
	Record *model.DivinationRecord `json:"record,omitempty"`
}

// Options configures a Service.
type Options struct {
	Rand        *rand.Rand
	Interpreter Interpreter
	Logger      *zap.Logger
}

// Service performs divinations.
type Service struct {
	corpus   *corpus.Corpus
	history  *store.History
	settings *store.SettingsStore
	rng      *rand.Rand
	interp   Interpreter
	fallback *TemplateInterpreter
	logger   *zap.Logger
}

// New creates a divination service. Without an interpreter, consultations
// are answered from templates.
func New(c *corpus.Corpus, stores *store.Stores, opts Options) *Service {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fallback := NewTemplateInterpreter(rng, 0)
	interp := opts.Interpreter
	if interp == nil {
		interp = fallback
	}
	return &Service{
		corpus:   c,
		history:  stores.History,
		settings: stores.Settings,
		rng:      rng,
		interp:   interp,
		fallback: fallback,
		logger:   logger,
	}
}

// Quick draws one hexagram at random.
func (s *Service) Quick(ctx context.Context) (*Result, error) {
	h := s.corpus.SelectRandom(s.rng)
	res := &Result{Hexagram: h}
	return res, s.record(ctx, res, model.NewQuickRecord(h.ID))
}

// Coin performs six three-coin throws. The hexagram itself is drawn at
// random; the throws are kept as the reading's details.
func (s *Service) Coin(ctx context.Context) (*Result, error) {
	throws := ThrowSix(s.rng)
	lines := make([]string, len(throws))
	for i, t := range throws {
		lines[i] = string(t.Line)
	}
	h := s.corpus.SelectRandom(s.rng)
	res := &Result{Hexagram: h, Throws: throws}
	return res, s.record(ctx, res, model.NewCoinRecord(h.ID, lines))
}

// Consult draws a hexagram for question and asks the interpreter for a
// reading. A failing interpreter falls back to the templates.
func (s *Service) Consult(ctx context.Context, question string) (*Result, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	h := s.corpus.SelectRandom(s.rng)

	response, err := s.interp.Interpret(ctx, question, h)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		s.logger.Warn("interpreter failed, using template reading", zap.Error(err))
		if response, err = s.fallback.Interpret(ctx, question, h); err != nil {
			return nil, err
		}
	}

	res := &Result{Hexagram: h, Response: response}
	return res, s.record(ctx, res, model.NewAIRecord(h.ID, question, response))
}

// Divine runs method, or the user's default method when method is empty.
func (s *Service) Divine(ctx context.Context, method, question string) (*Result, error) {
	if method == "" {
		st, err := s.settings.Load(ctx)
		if err != nil {
			return nil, err
		}
		method = st.DefaultDivinationMethod
	}
	switch model.RecordType(method) {
	case model.RecordQuick:
		return s.Quick(ctx)
	case model.RecordCoin:
		return s.Coin(ctx)
	case model.RecordAI:
		return s.Consult(ctx, question)
	}
	return nil, fmt.Errorf("unknown divination method %q", method)
}

func (s *Service) record(ctx context.Context, res *Result, rec model.DivinationRecord) error {
	st, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}
	if !st.SaveHistory {
		return nil
	}
	saved, err := s.history.Append(ctx, rec)
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	res.Record = &saved
	s.logger.Debug("divination recorded",
		zap.String("type", string(saved.Type)),
		zap.Int("hexagram", saved.HexagramID),
		zap.Int64("id", saved.ID))
	return nil
}

// Entry is a history record resolved against the corpus.
type Entry struct {
	model.DivinationRecord
	Hexagram model.Hexagram `json:"hexagram"`
}

// Resolve attaches each record's hexagram, substituting corpus.Unknown for
// ids the corpus lacks.
func Resolve(c *corpus.Corpus, records []model.DivinationRecord) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{DivinationRecord: r, Hexagram: c.HexagramOrUnknown(r.HexagramID)}
	}
	return entries
}
