package cards

import (
	"fmt"
	"strings"
)

// Tab はカード一覧の種類です
type Tab int

const (
	TabSentence    Tab = iota // 例文
	TabWord                   // 単語
	TabPinyin                 // 拼音
	TabTranslation            // 日本語訳
)

// AllTabs は表示順のタブ一覧
var AllTabs = []Tab{TabSentence, TabWord, TabPinyin, TabTranslation}

func (t Tab) String() string {
	switch t {
	case TabSentence:
		return "sentence"
	case TabWord:
		return "word"
	case TabPinyin:
		return "pinyin"
	case TabTranslation:
		return "translation"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

// Title はタブ見出しの表示名
func (t Tab) Title() string {
	switch t {
	case TabSentence:
		return "例文"
	case TabWord:
		return "単語"
	case TabPinyin:
		return "拼音"
	case TabTranslation:
		return "日本語訳"
	default:
		return ""
	}
}

// Prefix は例文以外のタブのカードIDに付ける接頭辞。例文タブは空文字。
func (t Tab) Prefix() string {
	switch t {
	case TabWord:
		return "w"
	case TabPinyin:
		return "p"
	case TabTranslation:
		return "j"
	default:
		return ""
	}
}

// RevealLabel は表示トグルのラベルを返します
func (t Tab) RevealLabel(shown bool) string {
	if shown {
		return "隠す"
	}
	switch t {
	case TabPinyin:
		return "単語・訳を表示"
	case TabTranslation:
		return "単語・拼音を表示"
	default:
		return "ピンイン・訳を表示"
	}
}

func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(AllTabs))
}

func (t Tab) Prev() Tab {
	return Tab((int(t) + len(AllTabs) - 1) % len(AllTabs))
}

// ParseTab はタブ名を解釈します。"jp" は日本語訳タブの旧名。
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sentence", "":
		return TabSentence, nil
	case "word":
		return TabWord, nil
	case "pinyin":
		return TabPinyin, nil
	case "translation", "jp":
		return TabTranslation, nil
	default:
		return TabSentence, fmt.Errorf("unknown tab %q", s)
	}
}
