package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"roomhub/errors"
)

// Collections are independent key namespaces inside the store. Keys are laid
// out "<collection>:<key>" so a prefix scan walks one collection in
// lexicographic order.
const (
	CollectionUsers       = "users"
	CollectionUsernames   = "usernames"
	CollectionRooms       = "rooms"
	CollectionMemberships = "memberships"
	CollectionInvitations = "invitations"
	CollectionInvPending  = "invpending"
	CollectionMessages    = "messages"
)

// Store wraps BadgerDB behind a transactional collection API. Every
// multi-key mutation runs inside a single transaction: either all keys are
// updated or none are. The store performs no retries; an I/O failure aborts
// the transaction and surfaces ErrStorage to the caller.
type Store struct {
	db  *badger.DB
	log *slog.Logger
}

func OpenStore(path string, log *slog.Logger) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", errors.ErrStorage, path, err)
	}
	return &Store{db: db, log: log}, nil
}

// NewStore builds a Store on an already opened database. Used by tests that
// manage the Badger lifecycle themselves.
func NewStore(db *badger.DB, log *slog.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Update runs fn inside one read-write transaction.
func (s *Store) Update(fn func(tx *Txn) error) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return fn(&Txn{txn: txn})
	})
	return wrapStorage(err)
}

// View runs fn inside one read-only transaction.
func (s *Store) View(fn func(tx *Txn) error) error {
	err := s.db.View(func(txn *badger.Txn) error {
		return fn(&Txn{txn: txn})
	})
	return wrapStorage(err)
}

// Txn scopes Put/Get/Delete/ScanPrefix inside one atomic transaction.
type Txn struct {
	txn *badger.Txn
}

func storeKey(collection, key string) []byte {
	return []byte(collection + ":" + key)
}

func (t *Txn) Put(collection, key string, value []byte) error {
	return t.txn.Set(storeKey(collection, key), value)
}

// Get returns the value for key, or ErrNotFound.
func (t *Txn) Get(collection, key string) ([]byte, error) {
	item, err := t.txn.Get(storeKey(collection, key))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s:%s", errors.ErrNotFound, collection, key)
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (t *Txn) Delete(collection, key string) error {
	return t.txn.Delete(storeKey(collection, key))
}

// ScanPrefix walks the collection's keys starting with prefix, in
// lexicographic order, calling fn with the key stripped of the collection
// namespace. Returning an error from fn stops the scan.
func (t *Txn) ScanPrefix(collection, prefix string, fn func(key string, value []byte) error) error {
	full := storeKey(collection, prefix)
	strip := len(collection) + 1
	it := t.txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	for it.Seek(full); it.ValidForPrefix(full); it.Next() {
		item := it.Item()
		key := string(item.Key()[strip:])
		if err := item.Value(func(value []byte) error {
			return fn(key, value)
		}); err != nil {
			return err
		}
	}
	return nil
}

// ScanPrefixReverse walks the same range backwards. A non-empty from seeks
// to that key (exclusive) so callers can page with a cursor, the way the
// message history reads do.
func (t *Txn) ScanPrefixReverse(collection, prefix, from string, fn func(key string, value []byte) error) error {
	full := storeKey(collection, prefix)
	strip := len(collection) + 1
	options := badger.DefaultIteratorOptions
	options.Reverse = true
	it := t.txn.NewIterator(options)
	defer it.Close()

	var seek []byte
	if from == "" {
		// Past the last possible key of this prefix.
		seek = append(append([]byte{}, full...), 0xff)
	} else {
		seek = storeKey(collection, prefix+from)
	}
	it.Seek(seek)
	if from != "" && it.ValidForPrefix(full) {
		it.Next()
	}

	for ; it.ValidForPrefix(full); it.Next() {
		item := it.Item()
		key := string(item.Key()[strip:])
		if err := item.Value(func(value []byte) error {
			return fn(key, value)
		}); err != nil {
			return err
		}
	}
	return nil
}

// errStopScan aborts a scan early without surfacing an error to the caller.
var errStopScan = stderrors.New("stop scan")

// wrapStorage keeps domain errors intact and tags anything else (Badger I/O,
// conflicts, corruption) as ErrStorage.
func wrapStorage(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		errors.ErrNotFound, errors.ErrConflict, errors.ErrValidation,
		errors.ErrPermissionDenied, errStopScan,
	} {
		if stderrors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", errors.ErrStorage, err)
}
