package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap は study 画面のキー割り当て
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Tabs
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
	NextTab key.Binding
	PrevTab key.Binding

	// Card actions
	Reveal key.Binding
	Status [5]key.Binding
	Filter [5]key.Binding

	// List
	Sort   key.Binding
	Search key.Binding
	Clear  key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap はデフォルトのキー割り当てを返します
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "上へ"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "下へ"),
		),

		Tab1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "例文")),
		Tab2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "単語")),
		Tab3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "拼音")),
		Tab4: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "日本語訳")),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "次のタブ"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "前のタブ"),
		),

		Reveal: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "表示/隠す"),
		),
		Status: [5]key.Binding{
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "◎")),
			key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "⚪︎")),
			key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "△")),
			key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "×")),
			key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "-")),
		},
		Filter: [5]key.Binding{
			key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "◎を表示/非表示")),
			key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "⚪︎を表示/非表示")),
			key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "△を表示/非表示")),
			key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "×を表示/非表示")),
			key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "-を表示/非表示")),
		},

		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "並び順"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "検索"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "検索を消す"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "再読込"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ヘルプ"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "終了"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Reveal, k.Sort, k.Search, k.Reload, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Reveal},
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.NextTab, k.PrevTab},
		k.Status[:],
		k.Filter[:],
		{k.Sort, k.Search, k.Clear, k.Reload, k.Help, k.Quit},
	}
}
