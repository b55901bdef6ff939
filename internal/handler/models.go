package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateTeamRequest struct {
	Name string `json:"name"`
}

type RenameTeamRequest struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
}

type RemoveTeamRequest struct {
	TeamID string `json:"team_id"`
}

type TeamResponse struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
}

type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

type AddMemberRequest struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	TeamID string `json:"team_id"`
}

type RemoveMemberRequest struct {
	MemberID string `json:"member_id"`
}

type MemberResponse struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	TeamID   string `json:"team_id"`
}

type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

type SetStatusRequest struct {
	UserID   string `json:"user_id"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

type ToggleStatusRequest struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"`
}

type StatusResponse struct {
	UserID   string `json:"user_id"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

type AddEventRequest struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Color  string `json:"color"`
	TeamID string `json:"team_id,omitempty"`
}

type RemoveEventRequest struct {
	EventID string `json:"event_id"`
}

type MoveEventRequest struct {
	EventID string `json:"event_id"`
	NewDate string `json:"new_date"`
}

type EventResponse struct {
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Color   string `json:"color"`
	TeamID  string `json:"team_id,omitempty"`
	Holiday bool   `json:"holiday"`
}

type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

type NotesResponse struct {
	Notes string `json:"notes"`
}

type SetNotesRequest struct {
	Notes string `json:"notes"`
}

type MemberStatusResponse struct {
	Member   MemberResponse `json:"member"`
	Location string         `json:"location"`
}

type DayResponse struct {
	Date     string                 `json:"date"`
	Holiday  bool                   `json:"holiday"`
	Empty    bool                   `json:"empty"`
	Events   []EventResponse        `json:"events"`
	Statuses []MemberStatusResponse `json:"statuses"`
}

type WeekResponse struct {
	StartDate string        `json:"start_date"`
	TeamID    string        `json:"team_id"`
	Days      []DayResponse `json:"days"`
}

type ShareLinkResponse struct {
	URL string `json:"url"`
}

type SharedViewResponse struct {
	Teams    []TeamResponse   `json:"teams"`
	Members  []MemberResponse `json:"members"`
	Statuses []StatusResponse `json:"statuses"`
	Events   []EventResponse  `json:"events"`
}

type RunBackupRequest struct {
	Kind string `json:"kind"`
}

type BackupResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Timestamp int64  `json:"timestamp"`
	Data      string `json:"data,omitempty"`
}
