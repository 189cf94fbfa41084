// internal/config/validator.go
package config

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// validate は設定検証用のバリデータインスタンスです
var validate *validator.Validate

// trans はエラーメッセージを翻訳するためのトランスレータです
var trans ut.Translator

var fieldNameTranslations = map[string]string{
	"port":            "サーバーポート",
	"driver":          "ストレージドライバ",
	"words_file":      "単語ファイル",
	"status_file":     "暗記度ファイル",
	"database_url":    "データベースURL",
	"cache_ttl":       "キャッシュ有効期間",
	"level":           "ログレベル",
	"max_age":         "CORSキャッシュ秒数",
	"base_url":        "APIのURL",
	"notice_duration": "通知表示時間",
	"request_timeout": "リクエストタイムアウト",
	"sort_type":       "並び順",
}

func init() {
	validate = validator.New()

	// mapstructure タグからフィールド名を取得する (設定ファイルのキー名でエラーを出すため)
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateField(fe.Field()), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("required_if", "{0}は必須項目です。")
	registerTranslation("required_unless", "{0}は必須項目です。")
	registerTranslation("oneof", "{0}は[{1}]のいずれかを指定してください。")
	registerTranslation("url", "{0}は有効なURLではありません。")
}

func translateField(name string) string {
	if translated, ok := fieldNameTranslations[name]; ok {
		return translated
	}
	return name
}

// Validate は設定値を検証し、すべての違反を日本語メッセージにまとめて返します
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("config.Validate: %w", err)
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		errs = append(errs, fmt.Errorf("%s: %s", fe.Namespace(), fe.Translate(trans)))
	}
	return fmt.Errorf("config.Validate: %w", errors.Join(errs...))
}
