package repository

import "context"

type NotesRepository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, notes string) error
}
