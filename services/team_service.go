// services/team_service.go - team business logic
package services

import (
	"errors"
	"strings"

	"taskhub/models"
	"taskhub/store"

	"github.com/lib/pq"
)

type TeamService struct {
	teams store.TeamStore
	users store.UserStore
	guard OwnerGuard
}

func NewTeamService(teams store.TeamStore, users store.UserStore) *TeamService {
	return &TeamService{teams: teams, users: users}
}

// TeamPayload carries a create request or an update patch. In a patch an
// empty field means "leave unchanged".
type TeamPayload struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MemberEmails []string `json:"member_emails"`
}

// Create persists a team owned by the caller. Every member email must
// resolve to a registered user or the whole operation fails and nothing is
// written.
func (s *TeamService) Create(p TeamPayload, identity models.Identity) (*models.Team, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, BadRequest("team name is required")
	}
	if l := len(name); l < 3 || l > 100 {
		return nil, BadRequest("team name must be between 3 and 100 characters")
	}
	if len(p.Description) > 1000 {
		return nil, BadRequest("team description must be at most 1000 characters")
	}
	if len(p.MemberEmails) == 0 {
		return nil, BadRequest("member emails are required")
	}

	memberIDs, err := s.resolveMembers(p.MemberEmails)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        name,
		Description: p.Description,
		MemberIDs:   memberIDs,
		CreatedBy:   identity.ID,
	}
	if err := s.teams.Create(team); err != nil {
		return nil, teamStoreError(err)
	}
	return team, nil
}

func (s *TeamService) Get(id uint) (*models.Team, error) {
	team, err := s.teams.GetByID(id)
	if err != nil {
		return nil, teamStoreError(err)
	}
	return team, nil
}

// Update applies the fields present in the patch. Only the owner may
// mutate a team; CreatedBy never changes.
func (s *TeamService) Update(id uint, identity models.Identity, p TeamPayload) (*models.Team, error) {
	if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.Description) == "" && len(p.MemberEmails) == 0 {
		return nil, BadRequest("nothing to update")
	}

	team, err := s.teams.GetByID(id)
	if err != nil {
		return nil, teamStoreError(err)
	}

	if !s.guard.CanEdit(identity, team) {
		return nil, Forbidden("only the team owner can modify the team")
	}

	if name := strings.TrimSpace(p.Name); name != "" {
		if l := len(name); l < 3 || l > 100 {
			return nil, BadRequest("team name must be between 3 and 100 characters")
		}
		team.Name = name
	}
	if strings.TrimSpace(p.Description) != "" {
		if len(p.Description) > 1000 {
			return nil, BadRequest("team description must be at most 1000 characters")
		}
		team.Description = p.Description
	}
	if len(p.MemberEmails) > 0 {
		memberIDs, err := s.resolveMembers(p.MemberEmails)
		if err != nil {
			return nil, err
		}
		team.MemberIDs = memberIDs
	}

	if err := s.teams.Save(team); err != nil {
		return nil, teamStoreError(err)
	}
	return team, nil
}

// resolveMembers maps emails to user ids, preserving the input order. A
// partial match fails the whole resolution.
func (s *TeamService) resolveMembers(emails []string) (pq.Int64Array, error) {
	unique := make([]string, 0, len(emails))
	seen := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		unique = append(unique, email)
	}
	if len(unique) == 0 {
		return nil, BadRequest("member emails are required")
	}

	users, err := s.users.FindByEmails(unique)
	if err != nil {
		return nil, Internal("failed to resolve members", err)
	}
	if len(users) < len(unique) {
		return nil, NotFound("some members not found")
	}

	byEmail := make(map[string]uint, len(users))
	for _, u := range users {
		byEmail[u.Email] = u.ID
	}
	ids := make(pq.Int64Array, 0, len(unique))
	for _, email := range unique {
		ids = append(ids, int64(byEmail[email]))
	}
	return ids, nil
}

func teamStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NotFound("team not found")
	case errors.Is(err, store.ErrDuplicate):
		return Duplicate("a team with this name already exists")
	default:
		return Internal("team storage failure", err)
	}
}
