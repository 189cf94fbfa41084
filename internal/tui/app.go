package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go_4_vocab_cards/internal/cards"
	"go_4_vocab_cards/internal/model"
)

// Store は study 画面が使う Data Store の操作
type Store interface {
	FetchWords(ctx context.Context) []model.VocabularyEntry
	FetchStatus(ctx context.Context) model.StatusMap
	SaveStatus(ctx context.Context, statuses model.StatusMap) error
}

// Options は画面とエンジンの設定
type Options struct {
	NoticeDuration      time.Duration
	SearchCaseSensitive bool
	RollbackOnFailure   bool
	InitialSort         cards.SortType
	Shuffle             cards.ShuffleFunc
	Logger              *slog.Logger
}

// App は study 画面の bubbletea モデルです。エンジンはこの更新ループだけが触ります。
type App struct {
	ctx    context.Context
	store  Store
	engine *cards.Engine
	theme  *Theme
	keys   KeyMap
	logger *slog.Logger

	help      help.Model
	spinner   spinner.Model
	search    textinput.Model
	searching bool

	loading  bool
	cursor   int
	offset   int
	width    int
	height   int
	quitting bool

	noticeDuration time.Duration
}

func NewApp(ctx context.Context, store Store, opts Options) *App {
	if opts.NoticeDuration <= 0 {
		opts.NoticeDuration = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	search := textinput.New()
	search.Placeholder = "検索ワード"
	search.Prompt = "/ "
	search.CharLimit = 64
	search.Width = 30

	engine := cards.NewEngine(cards.Options{
		SearchCaseSensitive: opts.SearchCaseSensitive,
		RollbackOnFailure:   opts.RollbackOnFailure,
		Shuffle:             opts.Shuffle,
	})
	engine.SetSortType(opts.InitialSort)

	return &App{
		ctx:            ctx,
		store:          store,
		engine:         engine,
		theme:          DefaultTheme,
		keys:           DefaultKeyMap(),
		logger:         opts.Logger,
		help:           help.New(),
		spinner:        s,
		search:         search,
		loading:        true,
		noticeDuration: opts.NoticeDuration,
	}
}

// Run は study 画面を起動し、終了するまでブロックします
func Run(ctx context.Context, store Store, opts Options) error {
	p := tea.NewProgram(NewApp(ctx, store, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadCmd())
}

// Engine はテストや呼び出し側から状態を確認するためのアクセサ
func (a *App) Engine() *cards.Engine {
	return a.engine
}

func (a *App) loadCmd() tea.Cmd {
	ctx, store := a.ctx, a.store
	return func() tea.Msg {
		return loadedMsg{
			words:    store.FetchWords(ctx),
			statuses: store.FetchStatus(ctx),
		}
	}
}

// saveCmd は送信時点のスナップショットを保存します。保存同士は待ち合わせもキャンセルもしません。
func (a *App) saveCmd(req cards.SaveRequest) tea.Cmd {
	ctx, store := a.ctx, a.store
	return func() tea.Msg {
		return saveResultMsg{req: req, err: store.SaveStatus(ctx, req.Snapshot)}
	}
}

func (a *App) noticeCmd(gen uint64) tea.Cmd {
	return tea.Tick(a.noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{gen: gen}
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case loadedMsg:
		a.engine.Load(msg.words, msg.statuses)
		a.loading = false
		a.cursor, a.offset = 0, 0
		a.logger.Info("Data loaded", slog.Int("entries", len(msg.words)), slog.Int("statuses", len(msg.statuses)))
		return a, nil

	case saveResultMsg:
		if msg.err != nil {
			a.logger.Warn("Failed to save status", slog.String("card_id", msg.req.CardID), slog.Uint64("seq", msg.req.Seq), slog.Any("error", msg.err))
		} else {
			a.logger.Debug("Status saved", slog.String("card_id", msg.req.CardID), slog.Uint64("seq", msg.req.Seq))
		}
		gen := a.engine.ResolveSave(msg.req, msg.err)
		a.clampCursor()
		return a, a.noticeCmd(gen)

	case noticeExpiredMsg:
		a.engine.ExpireNotice(msg.gen)
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		return a.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil

	case key.Matches(msg, a.keys.Reload):
		a.loading = true
		return a, tea.Batch(a.spinner.Tick, a.loadCmd())
	}

	if a.loading {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)

	case key.Matches(msg, a.keys.Tab1):
		a.setTab(cards.TabSentence)
	case key.Matches(msg, a.keys.Tab2):
		a.setTab(cards.TabWord)
	case key.Matches(msg, a.keys.Tab3):
		a.setTab(cards.TabPinyin)
	case key.Matches(msg, a.keys.Tab4):
		a.setTab(cards.TabTranslation)
	case key.Matches(msg, a.keys.NextTab):
		a.setTab(a.engine.Tab().Next())
	case key.Matches(msg, a.keys.PrevTab):
		a.setTab(a.engine.Tab().Prev())

	case key.Matches(msg, a.keys.Reveal):
		if card, ok := a.current(); ok {
			a.engine.ToggleShown(card.ID)
		}

	case key.Matches(msg, a.keys.Sort):
		a.engine.SetSortType(a.engine.SortType().Next())
		a.cursor, a.offset = 0, 0

	case key.Matches(msg, a.keys.Search):
		a.searching = true
		a.search.SetValue(a.engine.Search())
		a.search.CursorEnd()
		return a, a.search.Focus()

	case key.Matches(msg, a.keys.Clear):
		a.engine.SetSearch("")
		a.search.SetValue("")
		a.clampCursor()

	default:
		for code := range a.keys.Status {
			if key.Matches(msg, a.keys.Status[code]) {
				return a, a.setStatus(code)
			}
		}
		for code := range a.keys.Filter {
			if key.Matches(msg, a.keys.Filter[code]) {
				a.engine.ToggleFilter(code)
				a.clampCursor()
				return a, nil
			}
		}
	}
	return a, nil
}

// handleSearchKey は検索入力中のキー処理。入力のたびに絞り込みを反映します。
func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		a.searching = false
		a.search.Blur()
		return a, nil
	case tea.KeyEsc:
		a.searching = false
		a.search.Blur()
		a.search.SetValue("")
		a.engine.SetSearch("")
		a.clampCursor()
		return a, nil
	case tea.KeyCtrlC:
		a.quitting = true
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	a.engine.SetSearch(a.search.Value())
	a.clampCursor()
	return a, cmd
}

func (a *App) setTab(tab cards.Tab) {
	if tab == a.engine.Tab() {
		return
	}
	a.engine.SetTab(tab)
	a.cursor, a.offset = 0, 0
}

func (a *App) setStatus(code int) tea.Cmd {
	card, ok := a.current()
	if !ok {
		return nil
	}
	req, err := a.engine.SetStatus(card.ID, code)
	if err != nil {
		a.logger.Warn("Rejected status change", slog.String("card_id", card.ID), slog.Any("error", err))
		return nil
	}
	a.clampCursor()
	return a.saveCmd(req)
}

func (a *App) current() (model.Card, bool) {
	items := a.engine.DisplayItems()
	if a.cursor < 0 || a.cursor >= len(items) {
		return model.Card{}, false
	}
	return items[a.cursor], true
}

func (a *App) moveCursor(delta int) {
	a.cursor += delta
	a.clampCursor()
}

// clampCursor は表示件数が変わったあとにカーソルを範囲内に戻します
func (a *App) clampCursor() {
	n := len(a.engine.DisplayItems())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.offset > a.cursor {
		a.offset = a.cursor
	}
}

// --- View ---

func (a *App) View() (output string) {
	defer func() {
		if r := recover(); r != nil {
			output = fmt.Sprintf("\n  Error rendering view: %v\n\n  Press 'q' to quit.", r)
		}
	}()

	if a.quitting {
		return ""
	}
	if a.loading {
		return "\n  " + a.spinner.View() + " 読み込み中..."
	}

	w, h := a.width, a.height
	if w < 40 {
		w = 40
	}
	if h < 12 {
		h = 12
	}

	var b strings.Builder
	b.WriteString(a.viewTabs())
	b.WriteString("\n")
	b.WriteString(a.viewToolbar())
	b.WriteString("\n")
	b.WriteString(a.viewNotice())
	b.WriteString("\n")

	footer := a.viewFooter()
	listHeight := h - 4 - lipgloss.Height(footer)
	b.WriteString(a.viewList(w, listHeight))
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

func (a *App) viewTabs() string {
	parts := []string{a.theme.Title.Render("単語帳") + "  "}
	for i, tab := range cards.AllTabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Title())
		if tab == a.engine.Tab() {
			parts = append(parts, a.theme.TabActive.Render(label))
		} else {
			parts = append(parts, a.theme.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) viewToolbar() string {
	filter := a.engine.Filter()
	var chips []string
	for code, label := range model.StatusLabels {
		if filter[code] {
			chips = append(chips, a.theme.FilterOn[code].Render(label))
		} else {
			chips = append(chips, a.theme.FilterOff.Render(label))
		}
	}

	query := a.engine.Search()
	var searchView string
	switch {
	case a.searching:
		searchView = a.search.View()
	case query != "":
		searchView = "検索: " + query
	default:
		searchView = a.theme.Meta.Render("/ で検索")
	}

	items := a.engine.DisplayItems()
	total := len(a.engine.Cards(a.engine.Tab()))
	return a.theme.Toolbar.Render(fmt.Sprintf("並び順: %s  表示: %s  %d/%d件  ",
		a.engine.SortType().Label(), strings.Join(chips, " "), len(items), total)) + searchView
}

func (a *App) viewNotice() string {
	state := a.engine.SyncState()
	switch state {
	case cards.SyncSaved:
		return a.theme.NoticeOK.Render(state.Notice())
	case cards.SyncSaveFailed:
		return a.theme.NoticeError.Render(state.Notice())
	case cards.SyncPending:
		return a.theme.Pending.Render("保存中...")
	default:
		return ""
	}
}

func (a *App) viewList(w, h int) string {
	items := a.engine.DisplayItems()
	if len(items) == 0 {
		return a.theme.Empty.Render("表示するカードがありません")
	}

	// カーソルが見える位置までずらす
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	var rendered []string
	used := 0
	for i := a.offset; i < len(items); i++ {
		block := a.viewCard(items[i], i == a.cursor, w-2)
		height := lipgloss.Height(block)
		if used+height > h && i > a.cursor {
			break
		}
		rendered = append(rendered, block)
		used += height
		for used > h && len(rendered) > 1 && i >= a.cursor {
			used -= lipgloss.Height(rendered[0])
			rendered = rendered[1:]
			a.offset++
		}
	}
	return strings.Join(rendered, "\n")
}

func (a *App) viewCard(card model.Card, selected bool, w int) string {
	code := a.engine.StatusOf(card.ID)
	var badge string
	if model.ValidStatus(code) {
		badge = a.theme.Badge[code].Render("[" + model.StatusLabels[code] + "]")
	} else {
		badge = a.theme.BadgeUnset.Render("[ ]")
	}

	shown := a.engine.IsShown(card.ID)
	lines := []string{
		badge + " " + a.theme.Primary.Render(card.PrimaryText),
		a.theme.Meta.Render(card.MetaText),
	}
	if shown {
		for _, f := range card.SecondaryFields {
			lines = append(lines, a.theme.Secondary.Render(f.Label+": "+f.Value))
		}
	}
	if selected {
		lines = append(lines, a.theme.Hint.Render("space: "+a.engine.Tab().RevealLabel(shown)))
	}

	style := a.theme.Card
	if selected {
		style = a.theme.CardCursor
	}
	return style.Width(w).Render(strings.Join(lines, "\n"))
}

func (a *App) viewFooter() string {
	legend := a.theme.Legend.Render(strings.Join(model.StatusLabelTexts[:], "  "))
	return legend + "\n" + a.help.View(a.keys)
}
