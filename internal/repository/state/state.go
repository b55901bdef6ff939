// Package state реализует репозитории коллекций поверх key-value
// хранилища: каждая коллекция - один JSON-массив под одним ключом,
// перезаписываемый целиком при каждой мутации. Формат записей
// повторяет раскладку localStorage оригинального клиента.
package state

import (
	"context"
	"encoding/json"

	"github.com/bagdasarian/team-calendar/internal/storage"
)

// readJSON читает ключ и декодирует его в dest; отсутствующий ключ
// оставляет dest нетронутым (пустая коллекция).
func readJSON(ctx context.Context, store storage.Store, key string, dest any) error {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(raw), dest)
}

func writeJSON(ctx context.Context, store storage.Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(raw))
}
