package domain

import "time"

type BackupKind string

const (
	BackupWeekly  BackupKind = "weekly"
	BackupMonthly BackupKind = "monthly"
)

func (k BackupKind) Valid() bool {
	return k == BackupWeekly || k == BackupMonthly
}

// Backup - один снимок всего хранилища. Для каждого вида хранится
// не более одной записи, новая полностью замещает предыдущую.
type Backup struct {
	ID        string     `json:"id"`
	Data      string     `json:"data"` // JSON: ключ хранилища -> сериализованное значение
	Timestamp int64      `json:"timestamp"`
	Kind      BackupKind `json:"type"`
}

func (b Backup) Time() time.Time {
	return time.UnixMilli(b.Timestamp)
}
