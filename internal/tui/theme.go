package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorBorder        = lipgloss.Color("#3a3a3a")
	ColorAccent        = lipgloss.Color("#1976d2") // 保存通知と同じ青
	ColorSuccess       = lipgloss.Color("#30d158")
	ColorError         = lipgloss.Color("#ff453a")
	ColorTextPrimary   = lipgloss.Color("#ffffff")
	ColorTextSecondary = lipgloss.Color("#d0d0d0")
	ColorTextMuted     = lipgloss.Color("#808080")
)

// statusColors は暗記度ごとの色
var statusColors = [5]lipgloss.Color{
	lipgloss.Color("#30d158"),
	lipgloss.Color("#64d2ff"),
	lipgloss.Color("#ffd60a"),
	lipgloss.Color("#ff453a"),
	lipgloss.Color("#808080"),
}

// Theme はスタイルをまとめたもの
type Theme struct {
	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Toolbar     lipgloss.Style
	FilterOn    [5]lipgloss.Style
	FilterOff   lipgloss.Style
	Card        lipgloss.Style
	CardCursor  lipgloss.Style
	Primary     lipgloss.Style
	Meta        lipgloss.Style
	Secondary   lipgloss.Style
	Hint        lipgloss.Style
	Badge       [5]lipgloss.Style
	BadgeUnset  lipgloss.Style
	NoticeOK    lipgloss.Style
	NoticeError lipgloss.Style
	Pending     lipgloss.Style
	Empty       lipgloss.Style
	Legend      lipgloss.Style
}

func newTheme() *Theme {
	t := &Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(ColorTextPrimary),
		TabActive: lipgloss.NewStyle().Bold(true).
			Foreground(ColorTextPrimary).Background(ColorAccent).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(ColorTextMuted).Padding(0, 1),
		Toolbar:     lipgloss.NewStyle().Foreground(ColorTextSecondary),
		FilterOff:   lipgloss.NewStyle().Foreground(ColorTextMuted).Strikethrough(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder).Padding(0, 1),
		CardCursor: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).BorderForeground(ColorAccent).Padding(0, 1),
		Primary:     lipgloss.NewStyle().Bold(true).Foreground(ColorTextPrimary),
		Meta:        lipgloss.NewStyle().Foreground(ColorTextMuted),
		Secondary:   lipgloss.NewStyle().Foreground(ColorTextSecondary),
		Hint:        lipgloss.NewStyle().Foreground(ColorAccent),
		BadgeUnset:  lipgloss.NewStyle().Foreground(ColorTextMuted),
		NoticeOK:    lipgloss.NewStyle().Foreground(ColorTextPrimary).Background(ColorAccent).Padding(0, 2),
		NoticeError: lipgloss.NewStyle().Foreground(ColorTextPrimary).Background(ColorError).Padding(0, 2),
		Pending:     lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true),
		Empty:       lipgloss.NewStyle().Foreground(ColorTextMuted).Padding(1, 2),
		Legend:      lipgloss.NewStyle().Foreground(ColorTextMuted),
	}
	for i, c := range statusColors {
		t.FilterOn[i] = lipgloss.NewStyle().Bold(true).Foreground(c)
		t.Badge[i] = lipgloss.NewStyle().Bold(true).Foreground(c)
	}
	return t
}

// DefaultTheme is the default theme instance
var DefaultTheme = newTheme()
