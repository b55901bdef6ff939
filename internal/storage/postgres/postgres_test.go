package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockDB создает мок базы данных для тестов
// Автоматически закрывает соединение при завершении теста
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "не удалось создать мок БД")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func setupStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewStore(db), mock
}

func TestStore_Get(t *testing.T) {
	t.Run("успешное чтение значения", func(t *testing.T) {
		store, mock := setupStore(t)

		rows := sqlmock.NewRows([]string{"value"}).
			AddRow(`[{"id":"team-1","name":"Team 1"}]`)
		mock.ExpectQuery("SELECT value").
			WithArgs("team-calendar-teams").
			WillReturnRows(rows)

		value, ok, err := store.Get(context.Background(), "team-calendar-teams")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"team-1","name":"Team 1"}]`, value)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("отсутствующий ключ без ошибки", func(t *testing.T) {
		store, mock := setupStore(t)

		mock.ExpectQuery("SELECT value").
			WithArgs("team-calendar-notes").
			WillReturnError(sql.ErrNoRows)

		value, ok, err := store.Get(context.Background(), "team-calendar-notes")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка БД пробрасывается наверх", func(t *testing.T) {
		store, mock := setupStore(t)

		expectedError := errors.New("connection lost")
		mock.ExpectQuery("SELECT value").
			WithArgs("team-calendar-teams").
			WillReturnError(expectedError)

		_, ok, err := store.Get(context.Background(), "team-calendar-teams")

		require.Error(t, err)
		assert.False(t, ok)
		assert.Equal(t, expectedError, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Set(t *testing.T) {
	t.Run("upsert по ключу", func(t *testing.T) {
		store, mock := setupStore(t)

		mock.ExpectExec("INSERT INTO app_state").
			WithArgs("team-calendar-notes", "standup at 10:00").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Set(context.Background(), "team-calendar-notes", "standup at 10:00")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка записи пробрасывается наверх", func(t *testing.T) {
		store, mock := setupStore(t)

		expectedError := errors.New("disk full")
		mock.ExpectExec("INSERT INTO app_state").
			WithArgs("team-calendar-notes", "x").
			WillReturnError(expectedError)

		err := store.Set(context.Background(), "team-calendar-notes", "x")

		require.Error(t, err)
		assert.Equal(t, expectedError, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("удаление по ключу", func(t *testing.T) {
		store, mock := setupStore(t)

		mock.ExpectExec("DELETE FROM app_state").
			WithArgs("team-calendar-notes").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Delete(context.Background(), "team-calendar-notes")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Keys(t *testing.T) {
	t.Run("ключи в отсортированном порядке", func(t *testing.T) {
		store, mock := setupStore(t)

		rows := sqlmock.NewRows([]string{"key"}).
			AddRow("team-calendar-events").
			AddRow("team-calendar-members").
			AddRow("team-calendar-teams")
		mock.ExpectQuery("SELECT key").
			WillReturnRows(rows)

		keys, err := store.Keys(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{
			"team-calendar-events",
			"team-calendar-members",
			"team-calendar-teams",
		}, keys)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пустое хранилище", func(t *testing.T) {
		store, mock := setupStore(t)

		mock.ExpectQuery("SELECT key").
			WillReturnRows(sqlmock.NewRows([]string{"key"}))

		keys, err := store.Keys(context.Background())

		require.NoError(t, err)
		assert.Empty(t, keys)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEnsureSchema(t *testing.T) {
	t.Run("создание таблицы app_state", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS app_state").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, EnsureSchema(db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
