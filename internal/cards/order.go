package cards

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"go_4_vocab_cards/internal/model"
)

// SortType は並び順
type SortType int

const (
	SortDocument SortType = iota // データファイルの順
	SortStatus                   // 暗記度順 (未設定は末尾)
	SortRandom                   // ランダム (タブごとに固定)
)

func (s SortType) String() string {
	switch s {
	case SortDocument:
		return "document"
	case SortStatus:
		return "status"
	case SortRandom:
		return "random"
	default:
		return fmt.Sprintf("SortType(%d)", int(s))
	}
}

// Label は画面表示用の名前
func (s SortType) Label() string {
	switch s {
	case SortStatus:
		return "暗記度順"
	case SortRandom:
		return "ランダム"
	default:
		return "JSON順"
	}
}

func (s SortType) Next() SortType {
	return SortType((int(s) + 1) % 3)
}

// ParseSortType は並び順の名前を解釈します。"json" は document の旧名。
func ParseSortType(s string) (SortType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "document", "json", "":
		return SortDocument, nil
	case "status":
		return SortStatus, nil
	case "random":
		return SortRandom, nil
	default:
		return SortDocument, fmt.Errorf("unknown sort type %q", s)
	}
}

// SortByStatus は暗記度の昇順に安定ソートしたコピーを返します。未設定は 99 として扱います。
func SortByStatus(cards []model.Card, statuses model.StatusMap) []model.Card {
	out := slices.Clone(cards)
	slices.SortStableFunc(out, func(a, b model.Card) int {
		return cmp.Compare(sortKey(statuses, a.ID), sortKey(statuses, b.ID))
	})
	return out
}

func sortKey(statuses model.StatusMap, id string) int {
	code := statuses.Lookup(id)
	if code == model.StatusUnset {
		return model.StatusSortUnset
	}
	return code
}

// ShuffleFunc は rand.Shuffle と同じシグネチャ。テストで差し替えます。
type ShuffleFunc func(n int, swap func(i, j int))

// NewPermutation はカードIDを並べ替えた新しいスライスを返します
func NewPermutation(cards []model.Card, shuffle ShuffleFunc) []string {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	return ids
}

// ApplyPermutation は perm の順序で filtered に含まれるカードだけを返します
func ApplyPermutation(perm []string, filtered []model.Card) []model.Card {
	byID := make(map[string]model.Card, len(filtered))
	for _, c := range filtered {
		byID[c.ID] = c
	}
	out := make([]model.Card, 0, len(filtered))
	for _, id := range perm {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out
}
