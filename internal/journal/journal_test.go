package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open test journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestOpenCreatesMissingParentDir(t *testing.T) {
	// First run: nothing under the data dir exists yet.
	path := filepath.Join(t.TempDir(), "wortwidget", "journal.db")

	j, err := Open(path)
	if err != nil {
		t.Fatalf("Open with missing parent dir: %v", err)
	}
	t.Cleanup(func() { j.Close() })

	ctx := context.Background()
	if err := j.Append(ctx, 1, ActionShown); err != nil {
		t.Fatalf("Append on fresh journal: %v", err)
	}
	counts, err := j.CountByAction(ctx)
	if err != nil {
		t.Fatalf("CountByAction: %v", err)
	}
	if counts[ActionShown] != 1 {
		t.Errorf("shown count = %d, want 1", counts[ActionShown])
	}
}

func TestAppendAndCount(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	for _, a := range []Action{ActionShown, ActionShown, ActionMarkedKnown} {
		if err := j.Append(ctx, 1, a); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	counts, err := j.CountByAction(ctx)
	if err != nil {
		t.Fatalf("CountByAction: %v", err)
	}
	if counts[ActionShown] != 2 || counts[ActionMarkedKnown] != 1 {
		t.Errorf("counts = %v, want shown:2 marked_known:1", counts)
	}

	n, err := j.CountSince(ctx, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("CountSince: %v", err)
	}
	if n != 3 {
		t.Errorf("CountSince = %d, want 3", n)
	}
}

func TestRecent(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	for id := 1; id <= 5; id++ {
		if err := j.Append(ctx, id, ActionShown); err != nil {
			t.Fatal(err)
		}
	}

	events, err := j.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("Recent returned %d events, want 3", len(events))
	}
	for _, e := range events {
		if e.ID == "" || e.Action != ActionShown {
			t.Errorf("unexpected event: %+v", e)
		}
	}
}

func TestNilJournalIsNoop(t *testing.T) {
	var j *Journal
	ctx := context.Background()

	if err := j.Append(ctx, 1, ActionShown); err != nil {
		t.Errorf("nil Append: %v", err)
	}
	if _, err := j.CountByAction(ctx); err != nil {
		t.Errorf("nil CountByAction: %v", err)
	}
	if _, err := j.Recent(ctx, 10); err != nil {
		t.Errorf("nil Recent: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}
