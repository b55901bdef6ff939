package storage

import "context"

// Store - порт персистентности: плоское key-value хранилище,
// ключи которого повторяют раскладку localStorage оригинального клиента.
type Store interface {
	// Get возвращает значение и признак наличия ключа.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	// Keys перечисляет все ключи, присутствующие в хранилище.
	Keys(ctx context.Context) ([]string, error)
}

// Ключи коллекций. Ключи users и theme-* пишут внешние подсистемы;
// здесь они перечислены, чтобы резервная копия захватывала их тоже.
const (
	KeyMembers       = "team-calendar-members"
	KeyTeams         = "team-calendar-teams"
	KeyWorkdays      = "team-calendar-workdays"
	KeyEvents        = "team-calendar-events"
	KeyNotes         = "team-calendar-notes"
	KeyUsers         = "team-calendar-users"
	KeyShareTokens   = "team-calendar-share-tokens"
	KeyWeeklyBackup  = "team-calendar-weekly-backup"
	KeyMonthlyBackup = "team-calendar-monthly-backup"
)
