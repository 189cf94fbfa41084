// cmd/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go_4_vocab_cards/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "中国語単語カード (Data Store サーバーと学習画面)",
	Long: `vocab_cards は単語例文データをカードとして表示し、暗記度を記録します。

Commands:
  serve   単語データと暗記度を提供するHTTPサーバーを起動 (デフォルト)
  study   ターミナルの学習画面を起動

Config: configs/config.yaml (APP_ 接頭辞の環境変数で上書き可)`,
	Version: config.AppVersion,
	RunE: func(cmd *cobra.Command, args []string) error {
		// サブコマンド無しの場合はサーバーを起動
		return runServe(cmd, args)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs", "設定ファイルまたは config.yaml のあるディレクトリ")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(studyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
