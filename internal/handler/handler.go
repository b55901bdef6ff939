package handler

import (
	"net/http"

	"github.com/bagdasarian/team-calendar/internal/backup"
	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/service"
)

type Handler struct {
	teamService     service.TeamService
	memberService   service.MemberService
	statusService   service.StatusService
	eventService    service.EventService
	notesService    service.NotesService
	calendarService service.CalendarService
	shareService    service.ShareService
	backupService   *backup.Service
}

func NewHandler(
	teamService service.TeamService,
	memberService service.MemberService,
	statusService service.StatusService,
	eventService service.EventService,
	notesService service.NotesService,
	calendarService service.CalendarService,
	shareService service.ShareService,
	backupService *backup.Service,
) *Handler {
	return &Handler{
		teamService:     teamService,
		memberService:   memberService,
		statusService:   statusService,
		eventService:    eventService,
		notesService:    notesService,
		calendarService: calendarService,
		shareService:    shareService,
		backupService:   backupService,
	}
}

// actorFromRequest собирает актора из заголовков. Аутентификации
// здесь нет: идентичность приходит заявленной, проверяются только
// права на операции.
func actorFromRequest(r *http.Request) domain.Actor {
	activeTeam := r.Header.Get("X-Active-Team")
	if activeTeam == "" {
		activeTeam = domain.TeamAll
	}
	return domain.Actor{
		UserID:       r.Header.Get("X-User-Id"),
		Admin:        r.Header.Get("X-Admin") == "true",
		ActiveTeamID: activeTeam,
	}
}
