package entity

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var userIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// NewUserID generates a 24-character hex identifier.
func NewUserID() string {
	return bson.NewObjectID().Hex()
}

// IsUserID reports whether s has the shape of a user identifier.
func IsUserID(s string) bool {
	return userIDPattern.MatchString(s)
}
