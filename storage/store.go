//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_keyed_store.go -package=mocks
package storage

import (
	"strings"

	"chappy/keys"
)

// Item is one stored record with its keys.
type Item struct {
	Partition keys.PartitionKey
	Sort      keys.SortKey
	Value     []byte
}

// Predicate filters records of a full scan on their keys.
type Predicate func(pk keys.PartitionKey, sk keys.SortKey) bool

// KeyedStore is the only contract the repositories need from the storage engine.
// Results may come back in any order; readers sort when order matters.
// Every failure is reported as a StorageUnavailable error.
type KeyedStore interface {
	Put(pk keys.PartitionKey, sk keys.SortKey, value []byte) error
	Query(pk keys.PartitionKey, skPrefix keys.SortKey) ([]Item, error)
	Scan(predicate Predicate) ([]Item, error)
	Delete(pk keys.PartitionKey, sk keys.SortKey) error
}

// HasPartitionPrefix builds a scan predicate on both key prefixes.
func HasPartitionPrefix(pkPrefix keys.PartitionKey, skPrefix keys.SortKey) Predicate {
	return func(pk keys.PartitionKey, sk keys.SortKey) bool {
		return strings.HasPrefix(string(pk), string(pkPrefix)) && strings.HasPrefix(string(sk), string(skPrefix))
	}
}

