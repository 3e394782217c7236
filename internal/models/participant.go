package models

import (
	"sort"
	"strings"
)

// ParticipantID is the opaque member id used by every record.
type ParticipantID int64

// Participant is a club member as supplied by the roster fetch.
type Participant struct {
	ID        ParticipantID `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Nickname  string        `json:"nickname,omitempty"`
}

// DisplayName returns the nickname if set, otherwise the first name.
func (p Participant) DisplayName() string {
	if strings.TrimSpace(p.Nickname) != "" {
		return p.Nickname
	}
	return p.FirstName
}

// Roster is an id-keyed participant lookup for a single report.
type Roster map[ParticipantID]Participant

// NewRoster indexes participants by id. Later duplicates win.
func NewRoster(participants []Participant) Roster {
	r := make(Roster, len(participants))
	for _, p := range participants {
		r[p.ID] = p
	}
	return r
}

// Name resolves a display name. Unknown ids render as an empty string.
func (r Roster) Name(id ParticipantID) string {
	if p, ok := r[id]; ok {
		return p.DisplayName()
	}
	return ""
}

// Sorted returns participants ordered by surname, first name, then id.
func (r Roster) Sorted() []Participant {
	out := make([]Participant, 0, len(r))
	for _, p := range r {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		return a.ID < b.ID
	})
	return out
}
