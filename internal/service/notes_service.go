package service

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

type NotesService interface {
	Notes(ctx context.Context) (string, error)
	// SetNotes полностью заменяет текст заметок, без слияния.
	SetNotes(ctx context.Context, actor domain.Actor, notes string) error
}
