package tui

import (
	"go_4_vocab_cards/internal/cards"
	"go_4_vocab_cards/internal/model"
)

// loadedMsg は単語データと暗記度の取得完了
type loadedMsg struct {
	words    []model.VocabularyEntry
	statuses model.StatusMap
}

// saveResultMsg は暗記度保存1回分の結果
type saveResultMsg struct {
	req cards.SaveRequest
	err error
}

// noticeExpiredMsg は保存通知の表示時間切れ
type noticeExpiredMsg struct {
	gen uint64
}
