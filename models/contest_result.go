package models

import "fmt"

// Participation partitions the results of one contest. It is stored as the
// integer participate flag (1 or 0) on each result document.
type Participation int

const (
	DidNotParticipate Participation = 0
	Participated      Participation = 1
)

// StoredValue returns the value persisted in the participate field.
func (p Participation) StoredValue() int32 {
	return int32(p)
}

func (p Participation) String() string {
	switch p {
	case Participated:
		return "participated"
	case DidNotParticipate:
		return "did_not_participate"
	default:
		return fmt.Sprintf("participation(%d)", int(p))
	}
}

// Result document field names used in filters and sorts.
const (
	ResultContestIDField   = "contestId"
	ResultUserNameField    = "userName"
	ResultParticipateField = "participate"
	ResultStandingsField   = "globalStandings"
)
