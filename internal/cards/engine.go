package cards

import (
	"fmt"
	"slices"

	"go_4_vocab_cards/internal/model"
)

// Options はエンジンの挙動の切り替え
type Options struct {
	SearchCaseSensitive bool
	RollbackOnFailure   bool
	Shuffle             ShuffleFunc
}

// SaveRequest は暗記度変更1回分の保存内容です。Snapshot は送信時点のマップ全体のコピー。
type SaveRequest struct {
	Seq         uint64
	CardID      string
	Value       int
	Previous    int
	HadPrevious bool
	Snapshot    model.StatusMap
}

// session は永続化しない画面の状態
type session struct {
	tab    Tab
	sort   SortType
	query  string
	filter StatusFilter
	shown  map[string]bool
	perms  map[Tab][]string
}

// Engine は単語データと暗記度からタブごとの表示カードを組み立てます。
// ゴルーチンセーフではありません。UI の更新ループから1つだけ使います。
type Engine struct {
	projector *Projector
	statuses  model.StatusMap
	session   session
	sync      SyncTracker
	pending   map[uint64]SaveRequest // 完了していない保存
	opts      Options
}

func NewEngine(opts Options) *Engine {
	return &Engine{
		projector: NewProjector(),
		statuses:  model.StatusMap{},
		session: session{
			tab:    TabSentence,
			sort:   SortDocument,
			filter: AllStatuses(),
			shown:  map[string]bool{},
			perms:  map[Tab][]string{},
		},
		pending: map[uint64]SaveRequest{},
		opts:    opts,
	}
}

// Load は単語データと暗記度を差し替えます。表示トグルとランダム順は作り直します。
// 保存中の変更は取得したマップより新しいので、送信順に上書きし直します。
func (e *Engine) Load(doc []model.VocabularyEntry, statuses model.StatusMap) {
	e.projector.SetDocument(doc)
	e.statuses = statuses.Clone()
	seqs := make([]uint64, 0, len(e.pending))
	for seq := range e.pending {
		seqs = append(seqs, seq)
	}
	slices.Sort(seqs)
	for _, seq := range seqs {
		req := e.pending[seq]
		e.statuses[req.CardID] = req.Value
	}
	e.session.shown = map[string]bool{}
	e.session.perms = map[Tab][]string{}
}

func (e *Engine) Document() []model.VocabularyEntry {
	return e.projector.Document()
}

// --- タブ ---

func (e *Engine) Tab() Tab {
	return e.session.tab
}

// SetTab はタブを切り替えます。表示トグルは全て閉じます。
func (e *Engine) SetTab(tab Tab) {
	if tab == e.session.tab {
		return
	}
	e.session.tab = tab
	e.session.shown = map[string]bool{}
}

// --- 並び順 ---

func (e *Engine) SortType() SortType {
	return e.session.sort
}

// SetSortType は並び順を変更します。ランダムに入るたびに並びを作り直します。
func (e *Engine) SetSortType(s SortType) {
	if s == SortRandom && e.session.sort != SortRandom {
		e.session.perms = map[Tab][]string{}
	}
	e.session.sort = s
}

// --- 検索・フィルタ ---

func (e *Engine) Search() string {
	return e.session.query
}

func (e *Engine) SetSearch(query string) {
	e.session.query = query
}

func (e *Engine) Filter() StatusFilter {
	return e.session.filter
}

func (e *Engine) ToggleFilter(code int) {
	e.session.filter.Toggle(code)
}

func (e *Engine) SetFilter(code int, on bool) {
	if model.ValidStatus(code) {
		e.session.filter[code] = on
	}
}

// --- 表示トグル ---

func (e *Engine) ToggleShown(id string) {
	if e.session.shown[id] {
		delete(e.session.shown, id)
		return
	}
	e.session.shown[id] = true
}

func (e *Engine) IsShown(id string) bool {
	return e.session.shown[id]
}

// --- カード ---

// Cards はタブの全カードをデータ順で返します
func (e *Engine) Cards(tab Tab) []model.Card {
	return e.projector.Cards(tab)
}

// DisplayItems は現在のタブのカードをフィルタ・検索・並び順を適用して返します
func (e *Engine) DisplayItems() []model.Card {
	tab := e.session.tab
	all := e.projector.Cards(tab)
	filtered := Filter(all, e.statuses, e.session.filter, e.session.query, e.opts.SearchCaseSensitive)

	switch e.session.sort {
	case SortStatus:
		return SortByStatus(filtered, e.statuses)
	case SortRandom:
		return ApplyPermutation(e.permutation(tab, all), filtered)
	default:
		return filtered
	}
}

// permutation はタブのランダム順を返します。カード数と合わなければ作り直します。
func (e *Engine) permutation(tab Tab, all []model.Card) []string {
	perm, ok := e.session.perms[tab]
	if !ok || len(perm) != len(all) {
		perm = NewPermutation(all, e.opts.Shuffle)
		e.session.perms[tab] = perm
	}
	return perm
}

// --- 暗記度 ---

// StatusOf はカードの暗記度を返します。未設定なら model.StatusUnset。
func (e *Engine) StatusOf(id string) int {
	return e.statuses.Lookup(id)
}

// Statuses は暗記度マップのコピーを返します
func (e *Engine) Statuses() model.StatusMap {
	return e.statuses.Clone()
}

// SetStatus は暗記度を即座に反映し、保存すべき内容を返します
func (e *Engine) SetStatus(id string, code int) (SaveRequest, error) {
	if !model.ValidStatus(code) {
		return SaveRequest{}, fmt.Errorf("cards.SetStatus: status %d: %w", code, model.ErrInvalidInput)
	}
	if id == "" {
		return SaveRequest{}, fmt.Errorf("cards.SetStatus: empty card id: %w", model.ErrInvalidInput)
	}

	prev, had := e.statuses[id]
	e.statuses[id] = code

	req := SaveRequest{
		Seq:         e.sync.Begin(),
		CardID:      id,
		Value:       code,
		Previous:    prev,
		HadPrevious: had,
		Snapshot:    e.statuses.Clone(),
	}
	e.pending[req.Seq] = req
	return req, nil
}

// ResolveSave は保存結果を反映し、通知の世代番号を返します。
// RollbackOnFailure が有効で失敗した場合、まだ楽観的に書いた値のままなら元に戻します。
func (e *Engine) ResolveSave(req SaveRequest, err error) uint64 {
	gen := e.sync.Resolve(req.Seq, err)
	delete(e.pending, req.Seq)
	if err == nil || !e.opts.RollbackOnFailure {
		return gen
	}
	if current, ok := e.statuses[req.CardID]; !ok || current != req.Value {
		return gen
	}
	if req.HadPrevious {
		e.statuses[req.CardID] = req.Previous
	} else {
		delete(e.statuses, req.CardID)
	}
	return gen
}

// ExpireNotice は通知の表示時間が過ぎたときに呼びます
func (e *Engine) ExpireNotice(gen uint64) bool {
	return e.sync.Expire(gen)
}

func (e *Engine) SyncState() SyncState {
	return e.sync.State()
}
