package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"go_4_vocab_cards/internal/cards"
	"go_4_vocab_cards/internal/client"
	"go_4_vocab_cards/internal/config"
	"go_4_vocab_cards/internal/tui"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "ターミナルの学習画面を起動",
	Long: `serve で起動したサーバーから単語データと暗記度を取得してカードを表示します。

Navigation:
  - 1-4 または Tab でタブ切り替え (例文 / 単語 / 拼音 / 日本語訳)
  - ↑↓ または j/k でカード移動、Space で表示/隠す
  - a s d f g で暗記度 (◎ ⚪︎ △ × -)、A S D F G で表示フィルタ
  - o で並び順、/ で検索、r で再読込、q で終了`,
	RunE: runStudy,
}

func runStudy(cmd *cobra.Command, args []string) error {
	if err := config.LoadConfig(configPath); err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	// 画面が崩れないようにログはファイルへ出す
	logOut, closeLog := openStudyLog(config.Cfg.Client.LogFile, cmd.ErrOrStderr())
	defer closeLog()
	originalOutput := log.Writer()
	log.SetOutput(logOut)
	defer log.SetOutput(originalOutput)

	logger := newLogger(logOut, config.Cfg.Log.Level, false)
	slog.SetDefault(logger)

	sortType, err := cards.ParseSortType(config.Cfg.Client.SortType)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	store := client.New(config.Cfg.Client.BaseURL, config.Cfg.Client.RequestTimeout, logger)
	logger.Info("Study session starting", slog.String("base_url", config.Cfg.Client.BaseURL))

	return tui.Run(ctx, store, tui.Options{
		NoticeDuration:      config.Cfg.Client.NoticeDuration,
		SearchCaseSensitive: config.Cfg.Client.SearchCaseSensitive,
		RollbackOnFailure:   config.Cfg.Client.RollbackOnFailure,
		InitialSort:         sortType,
		Logger:              logger,
	})
}

// openStudyLog は学習画面用のログファイルを開きます。
// 開けない場合は画面の起動前に警告を1行出し、ログを捨てます。
func openStudyLog(path string, warn io.Writer) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(warn, "warning: ログディレクトリを作成できないためログを出力しません: %v\n", err)
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(warn, "warning: ログファイルを開けないためログを出力しません: %v\n", err)
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
