package state

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/storage"
)

type notesRepository struct {
	store storage.Store
}

func NewNotesRepository(store storage.Store) *notesRepository {
	return &notesRepository{store: store}
}

// Заметки хранятся как сырая строка, без JSON-обертки.
func (r *notesRepository) Get(ctx context.Context) (string, error) {
	notes, _, err := r.store.Get(ctx, storage.KeyNotes)
	return notes, err
}

func (r *notesRepository) Set(ctx context.Context, notes string) error {
	return r.store.Set(ctx, storage.KeyNotes, notes)
}
