// Package leveldb provides the embedded contract store built on goleveldb.
//
// Records live under the "contract/" key prefix and pending outbox messages
// under "outbox/". Every unit of work buffers its writes in one leveldb.Batch
// that is applied atomically on Commit, so a record and the events it raised
// are stored together or not at all.
//
// leveldb has no row locks. The Store keeps one mutex per key instead:
// GetForUpdate takes it and the unit of work releases it on Commit or Rollback.
package leveldb

import (
	"errors"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

const (
	contractPrefix = "contract/"
	outboxPrefix   = "outbox/"

	// outboxLockKey serializes relay passes over the outbox.
	outboxLockKey = "lock/outbox"
)

var (
	// ErrNoActiveTransaction is returned by writes, Commit and Rollback outside Begin.
	ErrNoActiveTransaction = errors.New("leveldb: no active transaction")
)

// Store owns the leveldb handle and the per-key locks shared by all units of work.
type Store struct {
	db    *leveldb.DB
	locks *keyLocks
	wo    *opt.WriteOptions
}

// Open opens the store at path. An empty path opens a store held in memory,
// which is discarded on Close.
func Open(path string) (*Store, error) {
	opts := &opt.Options{
		Filter: filter.NewBloomFilter(10),
	}

	var (
		db  *leveldb.DB
		err error
	)
	if path == "" {
		db, err = leveldb.Open(storage.NewMemStorage(), opts)
	} else {
		db, err = leveldb.OpenFile(path, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("leveldb: open %q: %w", path, err)
	}

	return &Store{
		db:    db,
		locks: newKeyLocks(),
		wo:    &opt.WriteOptions{Sync: path != ""},
	}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ContractReader returns a repository for reads outside any unit of work.
// Its write methods fail with ErrNoActiveTransaction.
func (s *Store) ContractReader() *ContractRepository {
	return NewContractRepository(s, nil)
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// keyLocks hands out one mutex per key and forgets it once nobody holds or waits for it.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*keyLock)}
}

// lock blocks until key is free and returns the function releasing it.
func (l *keyLocks) lock(key string) func() {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	kl.mu.Lock()

	return func() {
		kl.mu.Unlock()

		l.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}
