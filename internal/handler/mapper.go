package handler

import (
	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/service"
)

func domainTeamToHTTP(team domain.Team) TeamResponse {
	return TeamResponse{
		TeamID: team.ID,
		Name:   team.Name,
	}
}

func domainTeamsToHTTP(teams []domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	return result
}

func domainMemberToHTTP(member domain.Member) MemberResponse {
	return MemberResponse{
		MemberID: member.ID,
		Name:     member.Name,
		Color:    member.Color,
		TeamID:   member.TeamID,
	}
}

func domainMembersToHTTP(members []domain.Member) []MemberResponse {
	result := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, domainMemberToHTTP(member))
	}
	return result
}

func domainWorkDayToHTTP(workday domain.WorkDay) StatusResponse {
	return StatusResponse{
		UserID:   workday.UserID,
		Date:     workday.Date,
		Location: string(workday.Location),
	}
}

func domainWorkDaysToHTTP(workdays []domain.WorkDay) []StatusResponse {
	result := make([]StatusResponse, 0, len(workdays))
	for _, workday := range workdays {
		result = append(result, domainWorkDayToHTTP(workday))
	}
	return result
}

func domainEventToHTTP(event domain.Event) EventResponse {
	return EventResponse{
		EventID: event.ID,
		Name:    event.Name,
		Date:    event.Date,
		Color:   event.Color,
		TeamID:  event.TeamID,
		Holiday: event.IsHoliday(),
	}
}

func domainEventsToHTTP(events []domain.Event) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for _, event := range events {
		result = append(result, domainEventToHTTP(event))
	}
	return result
}

func dayViewToHTTP(day service.DayView) DayResponse {
	statuses := make([]MemberStatusResponse, 0, len(day.Statuses))
	for _, status := range day.Statuses {
		statuses = append(statuses, MemberStatusResponse{
			Member:   domainMemberToHTTP(status.Member),
			Location: string(status.Location),
		})
	}

	return DayResponse{
		Date:     day.Date,
		Holiday:  day.Holiday,
		Empty:    day.Empty,
		Events:   domainEventsToHTTP(day.Events),
		Statuses: statuses,
	}
}

func domainBackupToHTTP(record domain.Backup, withData bool) BackupResponse {
	resp := BackupResponse{
		ID:        record.ID,
		Kind:      string(record.Kind),
		Timestamp: record.Timestamp,
	}
	if withData {
		resp.Data = record.Data
	}
	return resp
}
