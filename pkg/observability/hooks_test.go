package observability

import (
	"testing"
	"time"
)

type recordingBoardHooks struct {
	places  int
	rejects []string
}

func (h *recordingBoardHooks) OnPlace(id string, row, col int)       { h.places++ }
func (h *recordingBoardHooks) OnReject(id, code string)              { h.rejects = append(h.rejects, code) }
func (h *recordingBoardHooks) OnRecompute(p, u int, d time.Duration) {}

type recordingStoreHooks struct {
	saves int
}

func (h *recordingStoreHooks) OnSave(name string, err error) { h.saves++ }
func (h *recordingStoreHooks) OnLoad(name string, hit bool)            {}
func (h *recordingStoreHooks) OnAutosaveSkip(name string)              {}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	Board().OnPlace("w", 0, 0)
	Board().OnReject("w", "COLLISION_REJECTED")
	Board().OnRecompute(3, 0, time.Millisecond)
	Store().OnSave("home", nil)
	Store().OnLoad("home", true)
	Store().OnAutosaveSkip("home")
}

func TestSetHooks(t *testing.T) {
	defer Reset()

	bh := &recordingBoardHooks{}
	sh := &recordingStoreHooks{}
	SetBoardHooks(bh)
	SetStoreHooks(sh)

	Board().OnPlace("w", 1, 2)
	Board().OnReject("w", "OUT_OF_BOUNDS")
	Store().OnSave("home", nil)

	if bh.places != 1 {
		t.Errorf("places = %d, want 1", bh.places)
	}
	if len(bh.rejects) != 1 || bh.rejects[0] != "OUT_OF_BOUNDS" {
		t.Errorf("rejects = %v", bh.rejects)
	}
	if sh.saves != 1 {
		t.Errorf("saves = %d, want 1", sh.saves)
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	defer Reset()

	bh := &recordingBoardHooks{}
	SetBoardHooks(bh)
	SetBoardHooks(nil)

	Board().OnPlace("w", 0, 0)
	if bh.places != 1 {
		t.Error("nil registration should not replace existing hooks")
	}
}

func TestReset(t *testing.T) {
	bh := &recordingBoardHooks{}
	SetBoardHooks(bh)
	Reset()

	Board().OnPlace("w", 0, 0)
	if bh.places != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}
