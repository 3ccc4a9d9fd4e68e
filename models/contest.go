package models

// ContestFields is the fixed field set replaced by PATCH /codeforcesContestList/{id}.
// ContestID is the Codeforces contest number, not the document id.
type ContestFields struct {
	ContestID        interface{} `bson:"contestId"`
	ContestName      interface{} `bson:"contestName"`
	ContestDate      interface{} `bson:"contestDate"`
	ContestStartTime interface{} `bson:"contestStartTime"`
	ContestEndTime   interface{} `bson:"contestEndTime"`
	ContestDuration  interface{} `bson:"contestDuration"`
}

func ContestFieldsFrom(doc Document) ContestFields {
	return ContestFields{
		ContestID:        doc["contestId"],
		ContestName:      doc["contestName"],
		ContestDate:      doc["contestDate"],
		ContestStartTime: doc["contestStartTime"],
		ContestEndTime:   doc["contestEndTime"],
		ContestDuration:  doc["contestDuration"],
	}
}
