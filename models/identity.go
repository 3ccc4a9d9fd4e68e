package models

// Identity is the decoded claim set of a verified credential.
type Identity struct {
	Email  string
	Claims map[string]interface{}
}
