package divination

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rcliao/yijing/internal/model"
)

// Interpreter turns a question and the drawn hexagram into a reading.
type Interpreter interface {
	Interpret(ctx context.Context, question string, h model.Hexagram) (string, error)
}

// TemplateInterpreter answers from fixed reading templates, chosen uniformly.
type TemplateInterpreter struct {
	rng *rand.Rand
	// Delay simulates a remote call. It is cut short when ctx is done.
	Delay time.Duration
}

// NewTemplateInterpreter creates a template interpreter.
func NewTemplateInterpreter(rng *rand.Rand, delay time.Duration) *TemplateInterpreter {
	return &TemplateInterpreter{rng: rng, Delay: delay}
}

var templates = []func(q string, h model.Hexagram) string{
	func(q string, h model.Hexagram) string {
		return fmt.Sprintf("根据您的问题\"%s\"，我为您抽取了%s卦（%s）。\n\n卦辞：%s\n\n这个卦象的含义是：%s\n\n针对您的问题，我的建议是：%s\n\n此卦的运势为：%s。希望这个解读对您有所帮助。",
			q, h.Name, h.Description, h.Judgment, h.Meaning, h.Advice, h.Fortune)
	},
	func(q string, h model.Hexagram) string {
		return fmt.Sprintf("您问到\"%s\"，%s卦给出了很好的指引。\n\n象辞说：%s\n\n这提醒我们：%s\n\n结合您的具体情况，建议您：%s\n\n保持%s的心态。",
			q, h.Name, h.Image, h.Meaning, h.Advice, mindset(h.Fortune))
	},
	func(q string, h model.Hexagram) string {
		return fmt.Sprintf("关于\"%s\"这个问题，%s卦为您提供了深刻的洞察。\n\n从卦象结构来看，上卦%s，下卦%s，形成了%s的格局。\n\n这意味着：%s\n\n我的建议是：%s\n\n请记住，易经的智慧在于指导我们顺应自然规律，做出明智的选择。",
			q, h.Name, h.UpperTrigram, h.LowerTrigram, h.Description, h.Meaning, h.Advice)
	},
}

func mindset(fortune string) string {
	switch fortune {
	case model.FortuneGreat:
		return "积极乐观"
	case model.FortuneGood:
		return "稳健前进"
	default:
		return "谨慎应对"
	}
}

func (t *TemplateInterpreter) Interpret(ctx context.Context, question string, h model.Hexagram) (string, error) {
	if t.Delay > 0 {
		timer := time.NewTimer(t.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	return templates[t.rng.Intn(len(templates))](question, h), nil
}
