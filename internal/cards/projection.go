package cards

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/patrickmn/go-cache"

	"go_4_vocab_cards/internal/model"
)

const (
	labelWord        = "単語"
	labelPinyin      = "拼音"
	labelTranslation = "日本語訳"
)

// Project は単語データを指定タブのカード一覧に変換します。
// 同じ入力に対して常に同じ結果を返します。
func Project(doc []model.VocabularyEntry, tab Tab) []model.Card {
	if tab == TabSentence {
		return projectSentences(doc)
	}

	out := make([]model.Card, 0, len(doc))
	for i, entry := range doc {
		var primary string
		var secondary []model.Field
		word := model.Field{Label: labelWord, Value: entry.Word}
		pinyin := model.Field{Label: labelPinyin, Value: entry.Pinyin}
		translation := model.Field{Label: labelTranslation, Value: entry.Translation}

		switch tab {
		case TabWord:
			primary = entry.Word
			secondary = []model.Field{pinyin, translation}
		case TabPinyin:
			primary = entry.Pinyin
			secondary = []model.Field{word, translation}
		case TabTranslation:
			primary = entry.Translation
			secondary = []model.Field{word, pinyin}
		default:
			return nil
		}

		out = append(out, model.Card{
			ID:              tab.Prefix() + "_" + strconv.Itoa(i),
			PrimaryText:     primary,
			SecondaryFields: secondary,
			SearchableText:  joinSearchable(entry.Word, entry.Pinyin, entry.Translation),
			MetaText:        "品詞: " + entry.PartOfSpeech,
		})
	}
	return out
}

func projectSentences(doc []model.VocabularyEntry) []model.Card {
	var out []model.Card
	for i, entry := range doc {
		for j, ex := range entry.Examples {
			out = append(out, model.Card{
				ID:          strconv.Itoa(i) + "_" + strconv.Itoa(j),
				PrimaryText: ex.ForeignText,
				SecondaryFields: []model.Field{
					{Label: labelPinyin, Value: ex.Pinyin},
					{Label: labelTranslation, Value: ex.Translation},
				},
				SearchableText: joinSearchable(ex.ForeignText, ex.Pinyin, ex.Translation, entry.Word),
				MetaText:       fmt.Sprintf("単語: %s / 品詞: %s", entry.Word, entry.PartOfSpeech),
			})
		}
	}
	if out == nil {
		out = []model.Card{}
	}
	return out
}

// 項目をまたいだ一致を避けるため改行で区切る
func joinSearchable(parts ...string) string {
	return strings.Join(parts, "\n")
}

// Projector は現在の単語データとタブごとの変換結果を保持します。
// 返すスライスは共有されるので呼び出し側で書き換えないこと。
type Projector struct {
	doc     []model.VocabularyEntry
	version uint64
	cache   *cache.Cache
}

func NewProjector() *Projector {
	return &Projector{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// SetDocument は単語データを差し替え、キャッシュを破棄します
func (p *Projector) SetDocument(doc []model.VocabularyEntry) {
	p.doc = doc
	p.version++
	p.cache.Flush()
}

func (p *Projector) Document() []model.VocabularyEntry {
	return p.doc
}

func (p *Projector) Version() uint64 {
	return p.version
}

// Cards はタブのカード一覧を返します。同じバージョンの間はキャッシュを使います。
func (p *Projector) Cards(tab Tab) []model.Card {
	key := fmt.Sprintf("%d:%s", p.version, tab)
	if cached, found := p.cache.Get(key); found {
		return cached.([]model.Card)
	}
	cards := Project(p.doc, tab)
	p.cache.Set(key, cards, cache.NoExpiration)
	return cards
}
