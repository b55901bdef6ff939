package service

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/auth"
	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/repository"
)

type notesService struct {
	notesRepo repository.NotesRepository
}

// NewNotesService создает новый экземпляр NotesService
func NewNotesService(notesRepo repository.NotesRepository) NotesService {
	return &notesService{notesRepo: notesRepo}
}

func (s *notesService) Notes(ctx context.Context) (string, error) {
	return s.notesRepo.Get(ctx)
}

func (s *notesService) SetNotes(ctx context.Context, actor domain.Actor, notes string) error {
	if err := auth.CanPerform(actor, auth.ActionEditNotes, ""); err != nil {
		return err
	}
	return s.notesRepo.Set(ctx, notes)
}
