// Package auth - единая точка проверки прав. Все мутации проходят
// через CanPerform перед любой записью в хранилище.
package auth

import "github.com/bagdasarian/team-calendar/internal/domain"

type Action string

const (
	ActionManageTeams   Action = "manage_teams"
	ActionManageMembers Action = "manage_members"
	ActionManageEvents  Action = "manage_events"
	ActionEditNotes     Action = "edit_notes"
	ActionSetStatus     Action = "set_status"
	ActionRunBackup     Action = "run_backup"
)

// CanPerform проверяет право актора на действие. targetUserID имеет
// смысл только для ActionSetStatus (чей статус меняется).
//
// Администратор может все. Обычный пользователь может менять только
// собственный статус и только из области конкретной команды: из
// режима "all" самостоятельная правка запрещена.
func CanPerform(actor domain.Actor, action Action, targetUserID string) error {
	if actor.Admin {
		return nil
	}

	if action != ActionSetStatus {
		return domain.ErrPermissionDenied
	}

	if !actor.IsSelf(targetUserID) {
		return domain.ErrPermissionDenied
	}
	if actor.ActiveTeamID == domain.TeamAll || actor.ActiveTeamID == "" {
		return domain.ErrPermissionDenied
	}

	return nil
}
