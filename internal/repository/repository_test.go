package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go_4_vocab_cards/internal/config"
	"go_4_vocab_cards/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileVocabularyRepository_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		content  *string // nil ならファイルを作らない
		wantErr  bool
		wantNF   bool
		wantBody string
	}{
		{
			name:     "正常系: 配列をそのまま返す",
			content:  ptr(`[{"単語":"你好"}]`),
			wantBody: `[{"単語":"你好"}]`,
		},
		{
			name:     "正常系: 配列でなくてもJSONなら返す",
			content:  ptr(`{"a":1}`),
			wantBody: `{"a":1}`,
		},
		{
			name:    "異常系: JSONとして不正",
			content: ptr(`[{`),
			wantErr: true,
		},
		{
			name:    "異常系: ファイルが存在しない",
			wantErr: true,
			wantNF:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "words.json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}
			repo := NewFileVocabularyRepository(path)
			assert.Equal(t, path, repo.Path())

			got, err := repo.Load(ctx)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantNF, isNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantBody, string(got))
		})
	}
}

func TestJSONStatusRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: ファイルが無ければ空のマップ", func(t *testing.T) {
		repo := NewJSONStatusRepository(filepath.Join(t.TempDir(), "status.json"))
		got, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("正常系: 保存して読み戻す (全体上書き)", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "status.json")
		repo := NewJSONStatusRepository(path)

		require.NoError(t, repo.Save(ctx, model.StatusMap{"0_0": 2, "w_1": 0}))
		require.NoError(t, repo.Save(ctx, model.StatusMap{"p_3": 4}))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.StatusMap{"p_3": 4}, got)
	})

	t.Run("正常系: nullは空のマップ", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "status.json")
		require.NoError(t, os.WriteFile(path, []byte(`null`), 0o644))
		got, err := NewJSONStatusRepository(path).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.StatusMap{}, got)
	})

	t.Run("異常系: 壊れたファイル", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "status.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"0_0":`), 0o644))
		_, err := NewJSONStatusRepository(path).Load(ctx)
		assert.Error(t, err)
	})

	t.Run("異常系: 保存先ディレクトリが無い", func(t *testing.T) {
		repo := NewJSONStatusRepository(filepath.Join(t.TempDir(), "missing", "status.json"))
		assert.Error(t, repo.Save(ctx, model.StatusMap{"0_0": 1}))
		assert.Error(t, repo.Ping(ctx))
	})

	t.Run("正常系: Ping", func(t *testing.T) {
		repo := NewJSONStatusRepository(filepath.Join(t.TempDir(), "status.json"))
		assert.NoError(t, repo.Ping(ctx))
	})
}

func TestGormStatusRepository(t *testing.T) {
	ctx := context.Background()
	db, err := NewDB(config.DriverSQLite, ":memory:", testLogger())
	require.NoError(t, err)
	repo := NewGormStatusRepository(db)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.Save(ctx, model.StatusMap{"0_0": 1, "w_2": 3}))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StatusMap{"0_0": 1, "w_2": 3}, got)

	// 2回目の保存で前回分は消える
	require.NoError(t, repo.Save(ctx, model.StatusMap{"j_5": 0}))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StatusMap{"j_5": 0}, got)

	require.NoError(t, repo.Save(ctx, model.StatusMap{}))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.NoError(t, repo.Ping(ctx))
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB("mysql", "dsn", testLogger())
	assert.Error(t, err)
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	err := WatchFile(ctx, path, 100*time.Millisecond, testLogger(), func() {
		calls.Add(1)
	})
	require.NoError(t, err)

	// 同じディレクトリの別ファイルには反応しない
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`[]`), 0o644))

	// 連続した書き込みは1回にまとめられる
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`[{"単語":"好"}]`), 0o644))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatchFile_MissingDir(t *testing.T) {
	err := WatchFile(context.Background(), filepath.Join(t.TempDir(), "nope", "words.json"), time.Millisecond, testLogger(), func() {})
	assert.Error(t, err)
}

func ptr(s string) *string { return &s }

func isNotFound(err error) bool {
	return err != nil && errors.Is(err, model.ErrNotFound)
}
