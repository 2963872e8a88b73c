// Package notesync maintains a client-side view of a user's notes: an
// ordered list that applies local edits optimistically, rolls them
// back when the server rejects them, and merges change feed events
// idempotently.
package notesync

import (
	"sort"
	"sync"

	"studybuddy/model"
)

// View holds the note list a client renders. All methods are safe for
// concurrent use; feed events typically arrive on their own goroutine.
type View struct {
	mu     sync.RWMutex
	notes  []model.Note
	staged map[string]stagedChange

	searchResults []model.Note
	searching     bool
}

type stagedChange struct {
	prior   model.Note
	created bool // staged create has no prior state
}

// NewView builds a view from a server note list. Input order does not
// matter; the view keeps notes sorted by most recent update.
func NewView(notes []model.Note) *View {
	v := &View{
		notes:  make([]model.Note, len(notes)),
		staged: make(map[string]stagedChange),
	}
	copy(v.notes, notes)
	sortByUpdated(v.notes)
	return v
}

func sortByUpdated(notes []model.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}

// Notes returns the list to render. While a search is active the
// search results override the base list.
func (v *View) Notes() []model.Note {
	v.mu.RLock()
	defer v.mu.RUnlock()

	src := v.notes
	if v.searching {
		src = v.searchResults
	}
	out := make([]model.Note, len(src))
	copy(out, src)
	return out
}

// Len reports the size of the base list, ignoring any active search.
func (v *View) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.notes)
}

func (v *View) indexOf(id string) int {
	for i := range v.notes {
		if v.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// StageCreate prepends a locally created note before the server has
// confirmed it. Confirm or Rollback must follow.
func (v *View) StageCreate(note model.Note) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.indexOf(note.ID) >= 0 {
		return
	}
	v.staged[note.ID] = stagedChange{created: true}
	v.notes = append([]model.Note{note}, v.notes...)
}

// StageEdit applies a local edit immediately, keeping the prior state
// so the edit can be undone if the server rejects it. Returns false
// when the note is not in the view.
func (v *View) StageEdit(updated model.Note) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	i := v.indexOf(updated.ID)
	if i < 0 {
		return false
	}

	// Only the first stage of back-to-back edits keeps a snapshot;
	// rollback returns to the last confirmed state.
	if _, exists := v.staged[updated.ID]; !exists {
		v.staged[updated.ID] = stagedChange{prior: v.notes[i]}
	}

	v.notes[i] = updated
	sortByUpdated(v.notes)
	return true
}

// Confirm settles a staged change with the server's canonical row.
func (v *View) Confirm(id string, canonical model.Note) {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.staged, id)

	if i := v.indexOf(id); i >= 0 {
		v.notes[i] = canonical
	} else {
		v.notes = append(v.notes, canonical)
	}
	sortByUpdated(v.notes)
}

// Rollback undoes a staged change: an edit reverts to its pre-edit
// state, a create disappears from the list.
func (v *View) Rollback(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	change, ok := v.staged[id]
	if !ok {
		return
	}
	delete(v.staged, id)

	i := v.indexOf(id)
	if i < 0 {
		return
	}

	if change.created {
		v.notes = append(v.notes[:i], v.notes[i+1:]...)
		return
	}

	v.notes[i] = change.prior
	sortByUpdated(v.notes)
}

// ApplyEvent merges a change feed event into the view. Merging is
// idempotent: an insert for a known id behaves like an update, a
// delete for an unknown id is a no-op. Events never disturb staged
// local changes for the same note.
func (v *View) ApplyEvent(event model.FeedEvent) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// A staged note is owned by the local editor until settled.
	if _, pending := v.staged[event.NoteID]; pending {
		return
	}

	switch event.Type {
	case model.FeedInsert, model.FeedUpdate:
		if event.Note == nil {
			return
		}
		if i := v.indexOf(event.NoteID); i >= 0 {
			v.notes[i] = *event.Note
		} else {
			v.notes = append(v.notes, *event.Note)
		}
		sortByUpdated(v.notes)
	case model.FeedDelete:
		if i := v.indexOf(event.NoteID); i >= 0 {
			v.notes = append(v.notes[:i], v.notes[i+1:]...)
		}
	}
}

// SetSearchResults switches the view into search mode. The base list
// keeps receiving feed events underneath.
func (v *View) SetSearchResults(results []model.Note) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.searchResults = make([]model.Note, len(results))
	copy(v.searchResults, results)
	v.searching = true
}

// ClearSearch returns the view to the base list.
func (v *View) ClearSearch() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.searchResults = nil
	v.searching = false
}
