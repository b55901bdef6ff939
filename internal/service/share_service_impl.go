package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/repository"
	"github.com/bagdasarian/team-calendar/internal/storage"
)

type shareService struct {
	store       storage.Store
	teamRepo    repository.TeamRepository
	memberRepo  repository.MemberRepository
	workdayRepo repository.WorkdayRepository
	eventRepo   repository.EventRepository
}

// NewShareService создает новый экземпляр ShareService
func NewShareService(
	store storage.Store,
	teamRepo repository.TeamRepository,
	memberRepo repository.MemberRepository,
	workdayRepo repository.WorkdayRepository,
	eventRepo repository.EventRepository,
) ShareService {
	return &shareService{
		store:       store,
		teamRepo:    teamRepo,
		memberRepo:  memberRepo,
		workdayRepo: workdayRepo,
		eventRepo:   eventRepo,
	}
}

func (s *shareService) CreateLink(ctx context.Context, baseURL string) (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	tokens, err := s.tokens(ctx)
	if err != nil {
		return "", err
	}
	tokens = append(tokens, token)

	raw, err := json.Marshal(tokens)
	if err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, storage.KeyShareTokens, string(raw)); err != nil {
		return "", err
	}

	return strings.TrimSuffix(baseURL, "/") + "/shared/" + token, nil
}

func (s *shareService) SharedView(ctx context.Context, token string) (*SharedData, error) {
	tokens, err := s.tokens(ctx)
	if err != nil {
		return nil, err
	}

	known := false
	for _, t := range tokens {
		if t == token {
			known = true
			break
		}
	}
	if !known {
		return nil, domain.NewNotFoundError("share link " + token)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	workdays, err := s.workdayRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &SharedData{
		Teams:    teams,
		Members:  members,
		Workdays: workdays,
		Events:   events,
	}, nil
}

func (s *shareService) tokens(ctx context.Context) ([]string, error) {
	raw, ok, err := s.store.Get(ctx, storage.KeyShareTokens)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var tokens []string
	if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}
