package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/rcliao/yijing/internal/model"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#B03A2E")).
			Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B03A2E"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func textMode() bool { return formatFlag == "text" }

func printJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

func printOK(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), fmt.Sprintf(format, args...))
}

func fortuneLabel(f string) string {
	switch f {
	case model.FortuneGreat, model.FortuneGood:
		return color.New(color.FgRed, color.Bold).Sprint(f)
	case model.FortuneModerate:
		return color.New(color.FgYellow).Sprint(f)
	case model.FortuneBad:
		return color.New(color.FgBlue).Sprint(f)
	}
	return f
}

// hexagramCard frames a hexagram for text output. Long form adds line texts
// and vocabulary when the corpus has them.
func hexagramCard(h model.Hexagram, long bool) string {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("%s  第%d卦 %s（%s）", h.Symbol, h.ID, h.Name, h.Description)))
	if h.UpperTrigram != "" {
		fmt.Fprintf(&b, "%s 上%s 下%s    %s %s\n", labelStyle.Render("卦象"), h.UpperTrigram, h.LowerTrigram, labelStyle.Render("运势"), fortuneLabel(h.Fortune))
	}
	field := func(label, v string) {
		if v != "" {
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(label), v)
		}
	}
	field("卦辞", h.Judgment)
	field("象辞", h.Image)
	field("含义", h.Meaning)
	field("建议", h.Advice)
	if long {
		for _, l := range h.Lines {
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(l.Position), l.Text)
		}
		for _, v := range h.Vocabulary {
			fmt.Fprintf(&b, "%s %s（%s）%s\n", labelStyle.Render("词汇"), v.Word, v.Pinyin, v.Meaning)
		}
	}
	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}
