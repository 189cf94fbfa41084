// internal/model/word.go
package model

// ExampleSentence は単語の登場例文を表します
type ExampleSentence struct {
	ForeignText string `json:"中国語"`
	Pinyin      string `json:"拼音"`
	Translation string `json:"日本語訳"`
}

// VocabularyEntry は単語データ1件を表します。読み込み後は変更しません。
// JSONキーは既存の単語例文ファイルに合わせています。
type VocabularyEntry struct {
	Word         string            `json:"単語"`     // 単語
	Pinyin       string            `json:"拼音"`     // 拼音
	PartOfSpeech string            `json:"品詞"`     // 品詞
	Translation  string            `json:"日本語訳"`   // 日本語訳
	Examples     []ExampleSentence `json:"登場例文"` // 登場例文 (順序に意味がある)
}
