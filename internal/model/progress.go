// internal/model/progress.go
package model

import "time"

// 暗記度 (0〜4)。未設定は StatusUnset として扱う
const (
	StatusMemorized = 0 // ◎ 完全に覚えた
	StatusMostlyOK  = 1 // ⚪︎ だいたいOK
	StatusUnsure    = 2 // △ 微妙
	StatusForgotten = 3 // × 全くダメ
	StatusIgnore    = 4 // - 重要でないから無視する

	StatusCount = 5

	StatusUnset = -1
	// StatusSortUnset は暗記度順ソートで未設定を末尾に回すための値
	StatusSortUnset = 99
)

// StatusLabels は暗記度ボタンのラベル
var StatusLabels = [StatusCount]string{
	"◎",
	"⚪︎",
	"△",
	"×",
	"-",
}

// StatusLabelTexts は凡例用のラベル
var StatusLabelTexts = [StatusCount]string{
	"◎ 完全に覚えた",
	"⚪︎ だいたいOK",
	"△ 微妙",
	"× 全くダメ",
	"- 重要でないから無視する",
}

// ValidStatus は code が 0〜4 の範囲かを返します
func ValidStatus(code int) bool {
	return code >= 0 && code < StatusCount
}

// StatusMap はカードID → 暗記度のマップです。保存時は常に全体を上書きします。
type StatusMap map[string]int

// Lookup はカードの暗記度を返します。未設定 (または範囲外) なら StatusUnset。
func (m StatusMap) Lookup(cardID string) int {
	code, ok := m[cardID]
	if !ok || !ValidStatus(code) {
		return StatusUnset
	}
	return code
}

// Clone はマップのコピーを返します。nil の場合は空のマップを返します。
func (m StatusMap) Clone() StatusMap {
	out := make(StatusMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CardStatus は SQL ストレージ利用時の暗記度1件を表します
type CardStatus struct {
	CardID    string `gorm:"type:varchar(64);primaryKey"`
	Status    int    `gorm:"not null"`
	UpdatedAt time.Time
}

func (CardStatus) TableName() string {
	return "card_statuses"
}

// SaveStatusResponse は暗記度保存成功時のレスポンス
type SaveStatusResponse struct {
	OK bool `json:"ok"`
}
