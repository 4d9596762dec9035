// Package domain contains core concepts of the chat system.
// This file defines the identity a request is made with.
// Identities are resolved by the transport layer and never persisted.
package domain

type IdentityKind int

const (
	Anonymous IdentityKind = iota
	Guest
	Authenticated
)

func (k IdentityKind) String() string {
	switch k {
	case Authenticated:
		return "authenticated"
	case Guest:
		return "guest"
	default:
		return "anonymous"
	}
}

// Identity is who is calling. Username is only set for Authenticated.
type Identity struct {
	Kind     IdentityKind
	Username string
}

func AuthenticatedAs(username string) Identity {
	return Identity{Kind: Authenticated, Username: username}
}

func GuestIdentity() Identity {
	return Identity{Kind: Guest}
}

func AnonymousIdentity() Identity {
	return Identity{Kind: Anonymous}
}

func (i Identity) IsAuthenticated() bool {
	return i.Kind == Authenticated
}
