package bubbletea

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/probearm"
)

const timeLayout = "15:04:05"

// RenderHistory draws the session log, oldest first.
func RenderHistory(sessions []probearm.Session, width int, styles Styles) string {
	if len(sessions) == 0 {
		return styles.Muted.Render("No sessions yet. Grab the probe with k, drop it with l.")
	}
	var b strings.Builder
	for i, s := range sessions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(renderSession(i+1, s, width, styles))
	}
	return b.String()
}

func renderSession(n int, s probearm.Session, width int, styles Styles) string {
	var lines []string
	lines = append(lines, styles.Accent.Render(fmt.Sprintf("#%d", n))+" "+
		styles.Muted.Render("start ")+formatTime(s.Start)+
		styles.Muted.Render("  end ")+formatTime(s.End))
	lines = append(lines, styles.Muted.Render("keys ")+s.KeysString(", "))
	move := s.ProbeMove.From.String() + " → "
	if s.ProbeMove.To != nil {
		move += s.ProbeMove.To.String()
	} else {
		move += "?"
	}
	lines = append(lines, styles.Muted.Render("probe ")+move)
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "--:--:--"
	}
	return t.Local().Format(timeLayout)
}
