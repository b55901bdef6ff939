package domain

// Actor - инициатор операции. ActiveTeamID - область просмотра,
// из которой выполняется действие ("all" или id конкретной команды).
type Actor struct {
	UserID       string
	Admin        bool
	ActiveTeamID string
}

func (a Actor) IsSelf(userID string) bool {
	return a.UserID != "" && a.UserID == userID
}
