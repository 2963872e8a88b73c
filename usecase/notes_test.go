package usecase

import (
	"strings"
	"testing"

	"studybuddy/model"
)

func TestValidateNoteContentLimit(t *testing.T) {
	svc := &NotesService{}

	note := &model.Note{Title: "Biology", Content: strings.Repeat("a", maxContentLen)}
	if err := svc.validateNote(note); err != nil {
		t.Errorf("expected content at the limit to pass, got %v", err)
	}

	note = &model.Note{Title: "Biology", Content: strings.Repeat("a", maxContentLen+1)}
	if err := svc.validateNote(note); err == nil {
		t.Error("expected oversized content to be rejected")
	}
}

func TestValidateNoteTitle(t *testing.T) {
	svc := &NotesService{}

	if err := svc.validateNote(&model.Note{Title: "   "}); err == nil {
		t.Error("expected blank title to be rejected")
	}
	if err := svc.validateNote(&model.Note{Title: strings.Repeat("x", maxTitleLen+1)}); err == nil {
		t.Error("expected overlong title to be rejected")
	}

	note := &model.Note{Title: "  Kemi  ", Tags: []string{" eksamen ", "", "noter"}}
	if err := svc.validateNote(note); err != nil {
		t.Fatalf("expected valid note, got %v", err)
	}
	if note.Title != "Kemi" {
		t.Errorf("expected trimmed title, got %q", note.Title)
	}
	if len(note.Tags) != 2 || note.Tags[0] != "eksamen" || note.Tags[1] != "noter" {
		t.Errorf("expected normalized tags, got %v", note.Tags)
	}
}
