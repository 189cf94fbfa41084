package cards

// SyncState は保存通知の状態
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncPending
	SyncSaved
	SyncSaveFailed
)

func (s SyncState) String() string {
	switch s {
	case SyncPending:
		return "pending"
	case SyncSaved:
		return "saved"
	case SyncSaveFailed:
		return "save_failed"
	default:
		return "idle"
	}
}

// Notice は画面に出す通知文。通知が無い状態では空文字。
func (s SyncState) Notice() string {
	switch s {
	case SyncSaved:
		return "保存しました"
	case SyncSaveFailed:
		return "保存に失敗しました"
	default:
		return ""
	}
}

// SyncTracker は非同期保存の状態を管理します。
// 保存は直列化もキャンセルもせず、通知は最後に完了したものが勝ちます。
type SyncTracker struct {
	state    SyncState
	seq      uint64
	inFlight int
	gen      uint64
}

// Begin は保存の開始を記録して連番を返します
func (t *SyncTracker) Begin() uint64 {
	t.seq++
	t.inFlight++
	if t.state == SyncIdle {
		t.state = SyncPending
	}
	return t.seq
}

// Resolve は保存の完了を記録し、通知の世代番号を返します
func (t *SyncTracker) Resolve(seq uint64, err error) uint64 {
	if t.inFlight > 0 {
		t.inFlight--
	}
	if err != nil {
		t.state = SyncSaveFailed
	} else {
		t.state = SyncSaved
	}
	t.gen++
	return t.gen
}

// Expire は gen が最新の通知であれば通知を消して true を返します。
// 新しい通知に置き換わっていた場合は何もしません。
func (t *SyncTracker) Expire(gen uint64) bool {
	if gen != t.gen {
		return false
	}
	if t.state != SyncSaved && t.state != SyncSaveFailed {
		return false
	}
	if t.inFlight > 0 {
		t.state = SyncPending
	} else {
		t.state = SyncIdle
	}
	return true
}

func (t *SyncTracker) State() SyncState {
	return t.state
}

// InFlight は完了していない保存の数
func (t *SyncTracker) InFlight() int {
	return t.inFlight
}
