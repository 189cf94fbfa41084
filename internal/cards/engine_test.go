package cards

import (
	"errors"
	"testing"

	"go_4_vocab_cards/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EngineTestSuite struct {
	suite.Suite
	engine       *Engine
	shuffleCalls int
}

func (s *EngineTestSuite) SetupTest() {
	s.shuffleCalls = 0
	s.engine = NewEngine(Options{Shuffle: reverseShuffle(&s.shuffleCalls)})
	s.engine.Load(sampleDoc(), nil)
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) TestInitialState() {
	e := s.engine
	s.Equal(TabSentence, e.Tab())
	s.Equal(SortDocument, e.SortType())
	s.Equal(AllStatuses(), e.Filter())
	s.Empty(e.Search())
	s.Equal(model.StatusMap{}, e.Statuses())
	s.Equal(SyncIdle, e.SyncState())
	s.Equal([]string{"0_0", "1_0", "1_1"}, ids(e.DisplayItems()))
}

func (s *EngineTestSuite) TestSetStatusAndFilter() {
	e := s.engine
	e.SetTab(TabWord)

	req, err := e.SetStatus("w_0", model.StatusUnsure)
	s.Require().NoError(err)
	s.Equal(model.StatusUnsure, e.StatusOf("w_0"))
	s.Equal(model.StatusMap{"w_0": 2}, req.Snapshot)

	e.ToggleFilter(model.StatusUnsure)
	s.Equal([]string{"w_1", "w_2"}, ids(e.DisplayItems()))

	e.SetFilter(model.StatusUnsure, true)
	s.Equal([]string{"w_0", "w_1", "w_2"}, ids(e.DisplayItems()))
}

func (s *EngineTestSuite) TestSetStatus_Invalid() {
	_, err := s.engine.SetStatus("w_0", 5)
	s.ErrorIs(err, model.ErrInvalidInput)
	_, err = s.engine.SetStatus("", 1)
	s.ErrorIs(err, model.ErrInvalidInput)
	s.Equal(SyncIdle, s.engine.SyncState())
}

func (s *EngineTestSuite) TestSnapshotIsCopy() {
	req, err := s.engine.SetStatus("0_0", 1)
	s.Require().NoError(err)
	_, err = s.engine.SetStatus("1_0", 3)
	s.Require().NoError(err)
	s.Equal(model.StatusMap{"0_0": 1}, req.Snapshot)
}

func (s *EngineTestSuite) TestSetTabResetsShown() {
	e := s.engine
	e.ToggleShown("0_0")
	s.True(e.IsShown("0_0"))
	e.ToggleShown("0_0")
	s.False(e.IsShown("0_0"))

	e.ToggleShown("1_1")
	e.SetTab(TabSentence) // 同じタブなら維持
	s.True(e.IsShown("1_1"))

	e.SetTab(TabPinyin)
	e.SetTab(TabSentence)
	s.False(e.IsShown("1_1"))
}

func (s *EngineTestSuite) TestSortByStatus() {
	e := s.engine
	e.SetTab(TabWord)
	_, _ = e.SetStatus("w_2", 0)
	_, _ = e.SetStatus("w_0", 3)
	e.SetSortType(SortStatus)
	s.Equal([]string{"w_2", "w_0", "w_1"}, ids(e.DisplayItems()))
}

func (s *EngineTestSuite) TestRandomOrderIsStable() {
	e := s.engine
	e.SetTab(TabWord)
	e.SetSortType(SortRandom)
	s.Equal([]string{"w_2", "w_1", "w_0"}, ids(e.DisplayItems()))
	s.Equal(1, s.shuffleCalls)

	// 検索・フィルタ・暗記度の変更では並び直さない
	e.SetSearch("勉強")
	s.Equal([]string{"w_1"}, ids(e.DisplayItems()))
	e.SetSearch("")
	_, _ = e.SetStatus("w_1", 0)
	e.ToggleFilter(0)
	s.Equal([]string{"w_2", "w_0"}, ids(e.DisplayItems()))
	s.Equal(1, s.shuffleCalls)

	// ランダムのまま再設定しても並び直さない
	e.SetSortType(SortRandom)
	e.DisplayItems()
	s.Equal(1, s.shuffleCalls)

	// 他のタブは別の並び
	e.SetTab(TabPinyin)
	s.Equal([]string{"p_2", "p_1", "p_0"}, ids(e.DisplayItems()))
	s.Equal(2, s.shuffleCalls)
	e.SetTab(TabWord)
	e.DisplayItems()
	s.Equal(2, s.shuffleCalls)

	// ランダムに入り直すと作り直す
	e.SetSortType(SortDocument)
	e.SetSortType(SortRandom)
	e.DisplayItems()
	s.Equal(3, s.shuffleCalls)

	// 再読込でも作り直す
	e.Load(sampleDoc(), e.Statuses())
	e.DisplayItems()
	s.Equal(4, s.shuffleCalls)
}

func (s *EngineTestSuite) TestLoadReplacesData() {
	e := s.engine
	e.ToggleShown("0_0")
	req, _ := e.SetStatus("0_0", 1)
	e.ResolveSave(req, nil)

	e.Load(sampleDoc()[2:], model.StatusMap{"0_0": 4})
	s.False(e.IsShown("0_0"))
	s.Equal(4, e.StatusOf("0_0"))
	s.Empty(e.DisplayItems(), "例文の無い単語は例文カードにならない")
	e.SetTab(TabWord)
	s.Equal([]string{"w_0"}, ids(e.DisplayItems()))
}

func (s *EngineTestSuite) TestLoadKeepsUnresolvedSaves() {
	e := s.engine
	first, _ := e.SetStatus("0_0", model.StatusMemorized)
	_, _ = e.SetStatus("0_0", model.StatusForgotten)
	done, _ := e.SetStatus("1_0", model.StatusUnsure)
	e.ResolveSave(done, nil)

	// 取得したマップには保存中の変更がまだ入っていない
	e.Load(sampleDoc(), model.StatusMap{"1_0": model.StatusIgnore, "1_1": model.StatusMostlyOK})
	s.Equal(model.StatusForgotten, e.StatusOf("0_0"), "後から送った値が残る")
	s.Equal(model.StatusIgnore, e.StatusOf("1_0"), "完了済みの保存は取得値に従う")
	s.Equal(model.StatusMostlyOK, e.StatusOf("1_1"))

	e.ResolveSave(first, nil)
	req, err := e.SetStatus("1_1", model.StatusUnsure)
	s.Require().NoError(err)
	s.Equal(model.StatusMap{"0_0": 3, "1_0": 4, "1_1": 2}, req.Snapshot)
}

func TestEngine_ResolveSave(t *testing.T) {
	errSave := errors.New("boom")

	tests := []struct {
		name       string
		rollback   bool
		initial    model.StatusMap
		overwrite  bool // 失敗前に同じカードへ再度書き込む
		saveErr    error
		wantStatus int
		wantState  SyncState
	}{
		{
			name:       "正常系: 保存成功",
			initial:    model.StatusMap{"w_0": 1},
			saveErr:    nil,
			wantStatus: 3,
			wantState:  SyncSaved,
		},
		{
			name:       "異常系: 失敗しても楽観的な値を保持 (既定)",
			initial:    model.StatusMap{"w_0": 1},
			saveErr:    errSave,
			wantStatus: 3,
			wantState:  SyncSaveFailed,
		},
		{
			name:       "異常系: ロールバック有効なら元の値に戻す",
			rollback:   true,
			initial:    model.StatusMap{"w_0": 1},
			saveErr:    errSave,
			wantStatus: 1,
			wantState:  SyncSaveFailed,
		},
		{
			name:       "異常系: ロールバックで未設定に戻す",
			rollback:   true,
			initial:    nil,
			saveErr:    errSave,
			wantStatus: model.StatusUnset,
			wantState:  SyncSaveFailed,
		},
		{
			name:       "異常系: 後から書き換えられていればロールバックしない",
			rollback:   true,
			initial:    model.StatusMap{"w_0": 1},
			overwrite:  true,
			saveErr:    errSave,
			wantStatus: 0,
			wantState:  SyncSaveFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(Options{RollbackOnFailure: tt.rollback})
			e.Load(sampleDoc(), tt.initial)

			req, err := e.SetStatus("w_0", 3)
			require.NoError(t, err)
			assert.Equal(t, SyncPending, e.SyncState())
			if tt.overwrite {
				_, err := e.SetStatus("w_0", 0)
				require.NoError(t, err)
			}

			gen := e.ResolveSave(req, tt.saveErr)
			assert.Equal(t, tt.wantStatus, e.StatusOf("w_0"))
			assert.Equal(t, tt.wantState, e.SyncState())

			if !tt.overwrite {
				assert.True(t, e.ExpireNotice(gen))
				assert.Equal(t, SyncIdle, e.SyncState())
			}
		})
	}
}

func TestSyncTracker(t *testing.T) {
	t.Run("正常系: 最後に完了した保存の通知が勝つ", func(t *testing.T) {
		var tr SyncTracker
		first := tr.Begin()
		second := tr.Begin()
		assert.Equal(t, SyncPending, tr.State())
		assert.Equal(t, 2, tr.InFlight())

		// 送信順と逆に完了
		gen1 := tr.Resolve(second, nil)
		assert.Equal(t, SyncSaved, tr.State())
		gen2 := tr.Resolve(first, errors.New("timeout"))
		assert.Equal(t, SyncSaveFailed, tr.State())
		assert.Equal(t, "保存に失敗しました", tr.State().Notice())

		// 古い通知の期限切れは無視
		assert.False(t, tr.Expire(gen1))
		assert.Equal(t, SyncSaveFailed, tr.State())

		assert.True(t, tr.Expire(gen2))
		assert.Equal(t, SyncIdle, tr.State())
		assert.Empty(t, tr.State().Notice())
	})

	t.Run("正常系: 保存中が残っていれば期限切れ後は保存中に戻る", func(t *testing.T) {
		var tr SyncTracker
		a := tr.Begin()
		tr.Begin()
		gen := tr.Resolve(a, nil)
		assert.Equal(t, "保存しました", tr.State().Notice())
		assert.True(t, tr.Expire(gen))
		assert.Equal(t, SyncPending, tr.State())
	})

	t.Run("境界値: 通知の無い状態での期限切れ", func(t *testing.T) {
		var tr SyncTracker
		assert.False(t, tr.Expire(0))
		assert.Equal(t, SyncIdle, tr.State())
	})
}
