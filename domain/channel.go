package domain

// Channel is identified by its name. Uniqueness is not enforced beyond
// the name being the storage key.
type Channel struct {
	Name      string
	IsPrivate bool
}
