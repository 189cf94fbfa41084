package cards

import (
	"strings"

	"go_4_vocab_cards/internal/model"
)

// StatusFilter は暗記度ごとの表示ON/OFF
type StatusFilter [model.StatusCount]bool

// AllStatuses は全てONのフィルタを返します
func AllStatuses() StatusFilter {
	var f StatusFilter
	for i := range f {
		f[i] = true
	}
	return f
}

// Allows は暗記度 code のカードを表示するかを返します。未設定 (範囲外含む) は常に表示。
func (f StatusFilter) Allows(code int) bool {
	if !model.ValidStatus(code) {
		return true
	}
	return f[code]
}

// Toggle は code のON/OFFを反転します。範囲外は無視。
func (f *StatusFilter) Toggle(code int) {
	if model.ValidStatus(code) {
		f[code] = !f[code]
	}
}

// MatchesSearch は検索語がカードに含まれるかを返します。空の検索語は常に一致。
func MatchesSearch(card model.Card, query string, caseSensitive bool) bool {
	if query == "" {
		return true
	}
	if caseSensitive {
		return strings.Contains(card.SearchableText, query)
	}
	return strings.Contains(strings.ToLower(card.SearchableText), strings.ToLower(query))
}

// Filter は暗記度フィルタと検索の両方を満たすカードを元の順序のまま返します
func Filter(cards []model.Card, statuses model.StatusMap, filter StatusFilter, query string, caseSensitive bool) []model.Card {
	out := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if !filter.Allows(statuses.Lookup(c.ID)) {
			continue
		}
		if !MatchesSearch(c, query, caseSensitive) {
			continue
		}
		out = append(out, c)
	}
	return out
}
