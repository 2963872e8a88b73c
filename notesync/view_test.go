package notesync

import (
	"testing"
	"time"

	"studybuddy/model"
)

func makeNote(id string, title string, updated time.Time) model.Note {
	return model.Note{
		ID:        id,
		UserID:    "user-1",
		Title:     title,
		Content:   "content of " + title,
		CreatedAt: updated.Add(-time.Hour),
		UpdatedAt: updated,
	}
}

func ids(notes []model.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func assertOrder(t *testing.T, got []model.Note, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d notes, got %d (%v)", len(want), len(got), ids(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("expected order %v, got %v", want, ids(got))
		}
	}
}

func TestNewViewSortsByRecency(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := NewView([]model.Note{
		makeNote("a", "oldest", base),
		makeNote("c", "newest", base.Add(2*time.Hour)),
		makeNote("b", "middle", base.Add(time.Hour)),
	})

	assertOrder(t, v.Notes(), "c", "b", "a")
}

func TestStageCreateAndConfirm(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := NewView([]model.Note{makeNote("a", "existing", base)})

	local := makeNote("tmp-1", "draft", base.Add(time.Minute))
	v.StageCreate(local)
	assertOrder(t, v.Notes(), "tmp-1", "a")

	// Server confirms with the canonical row.
	canonical := makeNote("tmp-1", "draft", base.Add(2*time.Minute))
	v.Confirm("tmp-1", canonical)
	assertOrder(t, v.Notes(), "tmp-1", "a")

	if got := v.Notes()[0].UpdatedAt; !got.Equal(canonical.UpdatedAt) {
		t.Errorf("confirm did not replace staged note: got %v", got)
	}
}

func TestRollbackRemovesStagedCreate(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := NewView([]model.Note{makeNote("a", "existing", base)})

	v.StageCreate(makeNote("tmp-1", "draft", base.Add(time.Minute)))
	v.Rollback("tmp-1")

	assertOrder(t, v.Notes(), "a")
}

func TestRollbackRestoresPriorEdit(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	original := makeNote("a", "original", base)
	v := NewView([]model.Note{original, makeNote("b", "other", base.Add(-time.Hour))})

	edited := original
	edited.Title = "edited"
	edited.UpdatedAt = base.Add(time.Hour)
	if !v.StageEdit(edited) {
		t.Fatal("StageEdit returned false for a known note")
	}

	if got := v.Notes()[0].Title; got != "edited" {
		t.Fatalf("optimistic edit not visible: got %q", got)
	}

	v.Rollback("a")

	notes := v.Notes()
	assertOrder(t, notes, "a", "b")
	if notes[0].Title != "original" {
		t.Errorf("rollback did not restore prior state: got %q", notes[0].Title)
	}
}

func TestRollbackAfterRepeatedEditsReturnsToConfirmedState(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	original := makeNote("a", "original", base)
	v := NewView([]model.Note{original})

	first := original
	first.Title = "first edit"
	first.UpdatedAt = base.Add(time.Minute)
	v.StageEdit(first)

	second := first
	second.Title = "second edit"
	second.UpdatedAt = base.Add(2 * time.Minute)
	v.StageEdit(second)

	v.Rollback("a")

	if got := v.Notes()[0].Title; got != "original" {
		t.Errorf("expected rollback to last confirmed state, got %q", got)
	}
}

func TestApplyEventIsIdempotent(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := NewView(nil)

	note := makeNote("a", "from feed", base)
	insert := model.FeedEvent{Type: model.FeedInsert, NoteID: "a", Note: &note}

	v.ApplyEvent(insert)
	v.ApplyEvent(insert)

	if v.Len() != 1 {
		t.Fatalf("duplicate insert produced %d notes", v.Len())
	}

	// An insert for a known id behaves like an update.
	newer := makeNote("a", "renamed", base.Add(time.Hour))
	v.ApplyEvent(model.FeedEvent{Type: model.FeedInsert, NoteID: "a", Note: &newer})

	if got := v.Notes()[0].Title; got != "renamed" {
		t.Errorf("insert for known id did not merge: got %q", got)
	}

	// Delete for an unknown id is a no-op.
	v.ApplyEvent(model.FeedEvent{Type: model.FeedDelete, NoteID: "missing"})
	if v.Len() != 1 {
		t.Errorf("delete of unknown id changed the view")
	}

	v.ApplyEvent(model.FeedEvent{Type: model.FeedDelete, NoteID: "a"})
	if v.Len() != 0 {
		t.Errorf("delete did not remove the note")
	}
}

func TestApplyEventSkipsStagedNotes(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	original := makeNote("a", "original", base)
	v := NewView([]model.Note{original})

	edited := original
	edited.Title = "local edit"
	edited.UpdatedAt = base.Add(time.Minute)
	v.StageEdit(edited)

	remote := makeNote("a", "remote edit", base.Add(2*time.Minute))
	v.ApplyEvent(model.FeedEvent{Type: model.FeedUpdate, NoteID: "a", Note: &remote})

	if got := v.Notes()[0].Title; got != "local edit" {
		t.Errorf("feed event clobbered a staged edit: got %q", got)
	}
}

func TestSearchModeOverridesBaseList(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := NewView([]model.Note{
		makeNote("a", "algebra", base),
		makeNote("b", "biology", base.Add(time.Hour)),
	})

	v.SetSearchResults([]model.Note{makeNote("a", "algebra", base)})
	assertOrder(t, v.Notes(), "a")

	// The base list keeps merging events underneath the search.
	fresh := makeNote("c", "chemistry", base.Add(2*time.Hour))
	v.ApplyEvent(model.FeedEvent{Type: model.FeedInsert, NoteID: "c", Note: &fresh})
	assertOrder(t, v.Notes(), "a")

	v.ClearSearch()
	assertOrder(t, v.Notes(), "c", "b", "a")
}
