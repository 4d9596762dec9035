package domain

import "strings"

// User is the public view of an account. Credentials never leave the auth layer.
type User struct {
	Username string
}

func equalFold(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}
