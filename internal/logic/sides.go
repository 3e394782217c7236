package logic

import "github.com/kegelclub/club-stats/internal/models"

// ResolveSide returns the participant's own side and the opponent's side of a pairwise record.
// The lookup is by id, never by position. ok is false if the participant is on neither side.
func ResolveSide(r models.PairwiseRecord, id models.ParticipantID) (own, opponent models.Side, ok bool) {
	switch id {
	case r.A.ParticipantID:
		return r.A, r.B, true
	case r.B.ParticipantID:
		return r.B, r.A, true
	default:
		return models.Side{}, models.Side{}, false
	}
}

// participantsOf lists the distinct participants of a record, A first.
func participantsOf(r models.PairwiseRecord) []models.ParticipantID {
	if r.A.ParticipantID == r.B.ParticipantID {
		return []models.ParticipantID{r.A.ParticipantID}
	}
	return []models.ParticipantID{r.A.ParticipantID, r.B.ParticipantID}
}
