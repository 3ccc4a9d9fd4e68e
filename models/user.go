package models

// UserRole is the coarse permission tag stored on an AllUser document.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// AllUserFields is the fixed field set replaced by PATCH /allUsers/{id}.
// Omitted fields are written as null.
type AllUserFields struct {
	Name  interface{} `bson:"name"`
	Email interface{} `bson:"email"`
	Role  interface{} `bson:"role"`
}

func AllUserFieldsFrom(doc Document) AllUserFields {
	return AllUserFields{Name: doc["name"], Email: doc["email"], Role: doc["role"]}
}
