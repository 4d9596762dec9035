package storage

import (
	"log/slog"
	"testing"

	"chappy/errors"
	"chappy/keys"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) (*BadgerStore, *badger.DB) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBadgerStore(db, slog.Default()), db
}

func TestBadgerStore_QueryStaysInsidePartition(t *testing.T) {
	req := require.New(t)
	store, _ := openStore(t)

	req.NoError(store.Put("CHANNEL#a", "MESSAGE#2", []byte("a2")))
	req.NoError(store.Put("CHANNEL#a", "MESSAGE#1", []byte("a1")))
	req.NoError(store.Put("CHANNEL#a", "META#", []byte("meta")))
	// "CHANNEL#ab" starts with "CHANNEL#a" but is another partition
	req.NoError(store.Put("CHANNEL#ab", "MESSAGE#0", []byte("ab0")))

	items, err := store.Query("CHANNEL#a", "MESSAGE#")
	req.NoError(err)
	req.Equal([]string{"a1", "a2"}, lo.Map(items, func(item Item, _ int) string { return string(item.Value) }))
	req.Equal(keys.PartitionKey("CHANNEL#a"), items[0].Partition)
	req.Equal(keys.SortKey("MESSAGE#1"), items[0].Sort)
}

func TestBadgerStore_ScanFiltersOnKeys(t *testing.T) {
	req := require.New(t)
	store, _ := openStore(t)

	req.NoError(store.Put("USER#alice", "PROFILE#alice", []byte("alice")))
	req.NoError(store.Put("USER#bob", "PROFILE#bob", []byte("bob")))
	req.NoError(store.Put("CHANNEL#general", "META#", []byte("general")))

	items, err := store.Scan(HasPartitionPrefix(keys.UserPartitionPrefix(), keys.ProfilePrefix()))
	req.NoError(err)
	req.ElementsMatch([]string{"alice", "bob"}, lo.Map(items, func(item Item, _ int) string { return string(item.Value) }))
}

func TestBadgerStore_PutOverwritesAndDeleteRemoves(t *testing.T) {
	req := require.New(t)
	store, _ := openStore(t)

	req.NoError(store.Put("USER#alice", "PROFILE#alice", []byte("v1")))
	req.NoError(store.Put("USER#alice", "PROFILE#alice", []byte("v2")))
	items, err := store.Query("USER#alice", "PROFILE#")
	req.NoError(err)
	req.Len(items, 1)
	req.Equal("v2", string(items[0].Value))

	req.NoError(store.Delete("USER#alice", "PROFILE#alice"))
	items, err = store.Query("USER#alice", "PROFILE#")
	req.NoError(err)
	req.Empty(items)

	// Deleting a missing record is not an error
	req.NoError(store.Delete("USER#ghost", "PROFILE#ghost"))
}

func TestBadgerStore_ClosedDatabaseIsUnavailable(t *testing.T) {
	req := require.New(t)
	store, db := openStore(t)
	req.NoError(db.Close())

	err := store.Put("CHANNEL#a", "META#", []byte("x"))
	req.ErrorIs(err, errors.ErrStorageUnavailable)

	_, err = store.Query("CHANNEL#a", "")
	req.ErrorIs(err, errors.ErrStorageUnavailable)
}
