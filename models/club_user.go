package models

// ClubUserFields is the fixed field set replaced by PATCH /clubUsers/{id}.
// Values are stored as sent; omitted fields are written as null.
type ClubUserFields struct {
	Name                    interface{} `bson:"name"`
	Email                   interface{} `bson:"email"`
	MobileNumber            interface{} `bson:"mobileNumber"`
	DiscordUsername         interface{} `bson:"discordUsername"`
	CodeforcesHandle        interface{} `bson:"codeforcesHandle"`
	CodeforcesCurrentRating interface{} `bson:"codeforcesCurrentRating"`
	CodeforcesMaxRating     interface{} `bson:"codeforcesMaxRating"`
	Image                   interface{} `bson:"image"`
}

// ClubUserFieldsFrom projects an update body onto the replaced fields.
func ClubUserFieldsFrom(doc Document) ClubUserFields {
	return ClubUserFields{
		Name:                    doc["name"],
		Email:                   doc["email"],
		MobileNumber:            doc["mobileNumber"],
		DiscordUsername:         doc["discordUsername"],
		CodeforcesHandle:        doc["codeforcesHandle"],
		CodeforcesCurrentRating: doc["codeforcesCurrentRating"],
		CodeforcesMaxRating:     doc["codeforcesMaxRating"],
		Image:                   doc["image"],
	}
}
