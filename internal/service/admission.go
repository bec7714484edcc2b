package service

import (
	"errors"

	apperrors "roster-portal-backend/internal/errors"
	"roster-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roster capacity and exclusivity limits. Team is an open label; "TI" is
// the only value carrying exclusivity semantics.
const (
	ExclusiveFlagYes = "Sim"
	ExclusiveTeam    = "TI"

	MaxMembersPerOrganization = 12
	MaxExclusiveMembers       = 2
	MaxPerTeam                = 1
)

// rosterCounter is the slice of a roster repository the admission checks
// need: read-after-write consistent counts under a predicate conjunction.
type rosterCounter interface {
	CountByOwner(userID, orgID uuid.UUID, filter repository.RosterFilter) (int64, error)
}

// rgLookup resolves which entry currently holds an rg value, returning
// gorm.ErrRecordNotFound when the value is free.
type rgLookup func(rg string) (uuid.UUID, error)

// checkRGFree rejects when rg is held by an entry other than self.
// Pass uuid.Nil for self on create.
func checkRGFree(lookup rgLookup, rg string, self uuid.UUID) error {
	holder, err := lookup(rg)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if self != uuid.Nil && holder == self {
		return nil
	}
	return apperrors.ErrRGTaken
}

// teamCapacityPolicy admits gestor and assistant entries: at most one per
// (user, organization, team), plus per-table rg uniqueness. kind is the
// roster label used in rejection messages.
type teamCapacityPolicy struct {
	kind    string
	counter rosterCounter
	rg      rgLookup
}

// AdmitCreate decides whether a new entry for team may be admitted.
func (p *teamCapacityPolicy) AdmitCreate(userID, orgID uuid.UUID, team, rg string) error {
	occupied, err := p.counter.CountByOwner(userID, orgID, repository.RosterFilter{Team: &team})
	if err != nil {
		return err
	}
	if occupied >= MaxPerTeam {
		return apperrors.NewTeamCapacityError(p.kind, team)
	}
	return checkRGFree(p.rg, rg, uuid.Nil)
}

// AdmitUpdate decides whether an existing entry may transition. A team
// change is checked against the NEW team's seat, with the entry itself
// excluded so an unchanged re-save never self-rejects.
func (p *teamCapacityPolicy) AdmitUpdate(userID, orgID, self uuid.UUID, currentTeam, newTeam, rg string) error {
	if newTeam != currentTeam {
		occupied, err := p.counter.CountByOwner(userID, orgID, repository.RosterFilter{Team: &newTeam, ExcludeID: &self})
		if err != nil {
			return err
		}
		if occupied >= MaxPerTeam {
			return apperrors.NewTeamCapacityError(p.kind, newTeam)
		}
	}
	return checkRGFree(p.rg, rg, self)
}

// memberCandidate is the subset of a member payload the admission rules
// inspect. WasExclusive is only meaningful on update: it reflects the
// stored entry, not the payload.
type memberCandidate struct {
	RG           string
	Registration string
	Team         string
	Exclusive    string
	WasExclusive bool
}

// memberAdmissionPolicy admits member entries: rg unique across the
// member table, registration unique per organization, at most
// MaxExclusiveMembers exclusive entries counted against the TI team, and
// at most MaxMembersPerOrganization entries overall.
type memberAdmissionPolicy struct {
	counter      rosterCounter
	rg           rgLookup
	registration func(orgID uuid.UUID, registration string) (uuid.UUID, error)
}

func (p *memberAdmissionPolicy) checkRegistrationFree(orgID uuid.UUID, registration string, self uuid.UUID) error {
	holder, err := p.registration(orgID, registration)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if self != uuid.Nil && holder == self {
		return nil
	}
	return apperrors.ErrRegistrationTaken
}

// countExclusive counts exclusive entries in the constrained sub-pool.
// Only TI-team entries occupy exclusivity seats, whatever team the
// candidate itself is on.
func (p *memberAdmissionPolicy) countExclusive(userID, orgID uuid.UUID, exclude *uuid.UUID) (int64, error) {
	exclusive := ExclusiveFlagYes
	team := ExclusiveTeam
	return p.counter.CountByOwner(userID, orgID, repository.RosterFilter{
		Team:      &team,
		Exclusive: &exclusive,
		ExcludeID: exclude,
	})
}

func exclusiveLimitError(team string) error {
	if team == ExclusiveTeam {
		return apperrors.ErrExclusiveLimitReachedTI
	}
	return apperrors.ErrExclusiveLimitReached
}

// AdmitCreate evaluates the member policy table in order; the first
// failing check wins.
func (p *memberAdmissionPolicy) AdmitCreate(userID, orgID uuid.UUID, c memberCandidate) error {
	if err := checkRGFree(p.rg, c.RG, uuid.Nil); err != nil {
		return err
	}
	if err := p.checkRegistrationFree(orgID, c.Registration, uuid.Nil); err != nil {
		return err
	}

	if c.Exclusive == ExclusiveFlagYes {
		occupied, err := p.countExclusive(userID, orgID, nil)
		if err != nil {
			return err
		}
		if occupied >= MaxExclusiveMembers {
			return exclusiveLimitError(c.Team)
		}
	}

	total, err := p.counter.CountByOwner(userID, orgID, repository.RosterFilter{})
	if err != nil {
		return err
	}
	if total >= MaxMembersPerOrganization {
		return apperrors.ErrMemberLimitReached
	}
	return nil
}

// AdmitUpdate evaluates the same table against post-exclusion counts so
// an unchanged re-save never self-rejects. An entry that was already
// exclusive skips the exclusivity recount entirely: it holds its seat
// even when the pool is momentarily full.
func (p *memberAdmissionPolicy) AdmitUpdate(userID, orgID, self uuid.UUID, c memberCandidate) error {
	if err := checkRGFree(p.rg, c.RG, self); err != nil {
		return err
	}
	if err := p.checkRegistrationFree(orgID, c.Registration, self); err != nil {
		return err
	}

	if c.Exclusive == ExclusiveFlagYes && !c.WasExclusive {
		occupied, err := p.countExclusive(userID, orgID, &self)
		if err != nil {
			return err
		}
		if occupied >= MaxExclusiveMembers {
			return exclusiveLimitError(c.Team)
		}
	}

	total, err := p.counter.CountByOwner(userID, orgID, repository.RosterFilter{ExcludeID: &self})
	if err != nil {
		return err
	}
	if total >= MaxMembersPerOrganization {
		return apperrors.ErrMemberLimitReached
	}
	return nil
}
