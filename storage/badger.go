package storage

import (
	"bytes"
	"fmt"
	"log/slog"

	"chappy/errors"
	"chappy/keys"

	"github.com/dgraph-io/badger/v4"
)

// keySeparator splits the partition from the sort key in a badger key.
// Key components never contain control characters.
const keySeparator = 0x00

// BadgerStore is the KeyedStore backed by BadgerDB.
// A badger key is "{partition}\x00{sort}", so a prefix iteration over
// "{partition}\x00{sortPrefix}" is a range query inside one partition.
type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

func (s *BadgerStore) Put(pk keys.PartitionKey, sk keys.SortKey, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(physicalKey(pk, sk), value)
	})
	if err != nil {
		return s.unavailable("put", pk, err)
	}
	return nil
}

// Query returns every record of a partition whose sort key starts with skPrefix,
// ascending by sort key.
func (s *BadgerStore) Query(pk keys.PartitionKey, skPrefix keys.SortKey) ([]Item, error) {
	prefix := physicalKey(pk, skPrefix)
	var items []Item
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item, err := toItem(it.Item())
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, s.unavailable("query", pk, err)
	}
	return items, nil
}

// Scan walks the whole keyspace. Keys are filtered before values are read,
// so values of rejected records are never loaded.
func (s *BadgerStore) Scan(predicate Predicate) ([]Item, error) {
	var items []Item
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			pk, sk, ok := splitKey(it.Item().Key())
			if !ok || !predicate(pk, sk) {
				continue
			}
			item, err := toItem(it.Item())
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, s.unavailable("scan", "", err)
	}
	return items, nil
}

func (s *BadgerStore) Delete(pk keys.PartitionKey, sk keys.SortKey) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(physicalKey(pk, sk))
	})
	if err != nil {
		return s.unavailable("delete", pk, err)
	}
	return nil
}

func (s *BadgerStore) unavailable(operation string, pk keys.PartitionKey, err error) error {
	s.log.Error("Storage operation failed", "operation", operation, "partition", pk, "error", err)
	return errors.StorageUnavailable(fmt.Errorf("%s: %w", operation, err))
}

func toItem(badgerItem *badger.Item) (Item, error) {
	pk, sk, ok := splitKey(badgerItem.Key())
	if !ok {
		return Item{}, fmt.Errorf("malformed key %q", badgerItem.Key())
	}
	value, err := badgerItem.ValueCopy(nil)
	if err != nil {
		return Item{}, err
	}
	return Item{Partition: pk, Sort: sk, Value: value}, nil
}

func physicalKey(pk keys.PartitionKey, sk keys.SortKey) []byte {
	key := make([]byte, 0, len(pk)+1+len(sk))
	key = append(key, pk...)
	key = append(key, keySeparator)
	return append(key, sk...)
}

func splitKey(key []byte) (keys.PartitionKey, keys.SortKey, bool) {
	i := bytes.IndexByte(key, keySeparator)
	if i < 0 {
		return "", "", false
	}
	return keys.PartitionKey(key[:i]), keys.SortKey(key[i+1:]), true
}
