// internal/model/card.go
package model

// Field はカードを開いたときに表示するラベル付きの値です
type Field struct {
	Label string
	Value string
}

// Card はタブごとに単語データから導出される表示単位です
type Card struct {
	ID              string  // 例文: "{単語index}_{例文index}", それ以外: "{prefix}_{単語index}"
	PrimaryText     string  // 常に表示する見出し
	SecondaryFields []Field // 表示ボタンで開く項目
	SearchableText  string  // 検索対象の連結文字列
	MetaText        string  // 常に表示する補足 (品詞など)
}
