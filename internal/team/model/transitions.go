package model

import "time"

// VacateOutcome describes what a vacate transition decided.
type VacateOutcome struct {
	// Changed is true when the member list was modified.
	Changed bool
	// PromotedUserID is set when leadership passed to another member.
	PromotedUserID string
	// DeleteTeam is true when no active membership survives and the
	// team must be removed instead of persisted.
	DeleteTeam bool
}

// RepairAction is the decision of a consistency repair pass.
type RepairAction int

const (
	// RepairNone means the team is already consistent.
	RepairNone RepairAction = iota
	// RepairPromote means a member was promoted to leader in place.
	RepairPromote
	// RepairDelete means the team has no active membership and must go.
	RepairDelete
)

// Join adds a user to the team, preferring the user's own vacated seat,
// then any vacated seat, then a new slot. Only the member list is
// modified; the caller persists the result.
func (t *Team) Join(userID string, now time.Time) error {
	if existing := t.MemberFor(userID); existing != nil {
		if !existing.IsDeleted {
			return ErrAlreadyMember
		}
		if t.ActiveCount() >= t.MaxMembers {
			return ErrTeamFull
		}
		// Rejoin: reactivate the seat this user vacated earlier.
		existing.IsDeleted = false
		existing.Role = RoleMember
		existing.Rejoined = true
		existing.JoinedAt = now
		existing.DeletedAt = nil
		return nil
	}

	if t.ActiveCount() >= t.MaxMembers {
		return ErrTeamFull
	}

	// Reuse the first vacated seat before growing the member list.
	for i := range t.Members {
		if t.Members[i].IsDeleted {
			seat := &t.Members[i]
			seat.OriginalUserID = seat.UserID
			seat.UserID = userID
			seat.Role = RoleMember
			seat.IsDeleted = false
			seat.Rejoined = false
			seat.JoinedAt = now
			seat.DeletedAt = nil
			seat.PromotedAt = nil
			return nil
		}
	}

	t.Members = append(t.Members, Member{
		TeamID:   t.ID,
		Slot:     t.nextSlot(),
		UserID:   userID,
		Role:     RoleMember,
		JoinedAt: now,
	})
	return nil
}

// Vacate releases the seat held by a user. A departing leader hands the
// role to the first active member in slot order; when nobody active
// remains the outcome demands team deletion. Vacating a seat that is
// already vacant, or a user with no seat, is a no-op.
func (t *Team) Vacate(userID string, now time.Time) VacateOutcome {
	member := t.MemberFor(userID)
	if member == nil || member.IsDeleted {
		return VacateOutcome{}
	}

	outcome := VacateOutcome{Changed: true}

	if member.Role == RoleLeader {
		successor := t.firstActiveExcluding(userID)
		if successor == nil {
			return VacateOutcome{DeleteTeam: true}
		}
		successor.Role = RoleLeader
		promotedAt := now
		successor.PromotedAt = &promotedAt
		outcome.PromotedUserID = successor.UserID
	}

	member.IsDeleted = true
	member.Role = RoleVacant
	member.OriginalUserID = member.UserID
	deletedAt := now
	member.DeletedAt = &deletedAt
	return outcome
}

// Repair enforces the single-active-leader rule on a team that drifted
// outside the normal mutation path. Running it on a consistent team is
// a no-op, so it is safe to invoke at any time.
func (t *Team) Repair(now time.Time) RepairAction {
	if len(t.Members) == 0 {
		return RepairDelete
	}
	if t.ActiveLeader() != nil {
		return RepairNone
	}

	successor := t.firstActiveExcluding("")
	if successor == nil {
		return RepairDelete
	}
	successor.Role = RoleLeader
	promotedAt := now
	successor.PromotedAt = &promotedAt
	return RepairPromote
}

// firstActiveExcluding returns the first active member in slot order
// whose user id differs from the given one. The pick is deterministic
// but otherwise arbitrary; no seniority weighting applies.
func (t *Team) firstActiveExcluding(userID string) *Member {
	for i := range t.Members {
		if !t.Members[i].IsDeleted && t.Members[i].UserID != userID {
			return &t.Members[i]
		}
	}
	return nil
}

func (t *Team) nextSlot() int {
	max := -1
	for _, m := range t.Members {
		if m.Slot > max {
			max = m.Slot
		}
	}
	return max + 1
}
