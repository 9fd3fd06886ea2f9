package sat

import "testing"

func newTestWatchlist(n int) *watchlist {
	wl := newWatchlist()
	for i := 0; i < n; i++ {
		wl.addVariable()
	}
	return wl
}

func TestWatchlist_AddRemove(t *testing.T) {
	wl := newTestWatchlist(2)
	l := PositiveLiteral(0)
	wl.add(4, l, NegativeLiteral(1))
	wl.add(7, l, PositiveLiteral(1))

	live := wl.Live(l)
	if len(live) != 2 || live[0].clause != 4 || live[1].clause != 7 {
		t.Fatalf("Live(%v) = %v, want clauses [4 7]", l, live)
	}

	wl.remove(4, l)
	live = wl.Live(l)
	if len(live) != 1 || live[0].clause != 7 {
		t.Errorf("Live(%v) after remove = %v, want only clause 7", l, live)
	}
	if live[0].guard != PositiveLiteral(1) {
		t.Errorf("guard = %v, want %v", live[0].guard, PositiveLiteral(1))
	}
}

func TestWatchlist_TakeSnapshotEmptiesLiveList(t *testing.T) {
	wl := newTestWatchlist(1)
	l := NegativeLiteral(0)
	wl.add(1, l, PositiveLiteral(0))
	wl.add(2, l, PositiveLiteral(0))

	snap := wl.TakeSnapshot(l)
	if len(snap) != 2 {
		t.Fatalf("snapshot has %d watchers, want 2", len(snap))
	}
	if len(wl.Live(l)) != 0 {
		t.Error("live list not emptied by TakeSnapshot")
	}

	// Watch changes during visitation land on the live list without
	// disturbing the snapshot.
	wl.add(3, l, PositiveLiteral(0))
	if len(snap) != 2 {
		t.Error("snapshot changed by a concurrent add")
	}

	wl.RestoreRemaining(l, snap[1:])
	live := wl.Live(l)
	if len(live) != 2 || live[0].clause != 3 || live[1].clause != 2 {
		t.Errorf("Live(%v) = %v, want clauses [3 2]", l, live)
	}
}
