package accounts

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var accountsBucket = []byte("accounts")

// BoltStore keeps accounts in a single bbolt bucket. bbolt runs one writer at a time, which
// serializes Atomic calls across the process.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens or creates the database file at path.
func OpenBoltStore(path string, timeout time.Duration) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("open account store %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(accountsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create accounts bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Atomic(ctx context.Context, fn func(Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return fn(&boltTx{bucket: tx.Bucket(accountsBucket), writable: true})
	})
}

func (s *BoltStore) View(ctx context.Context, fn func(Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *bbolt.Tx) error {
		return fn(&boltTx{bucket: tx.Bucket(accountsBucket)})
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

type boltTx struct {
	bucket   *bbolt.Bucket
	writable bool
}

func (t *boltTx) Create(key Key, value []byte) error {
	if !t.writable {
		return ErrReadOnly
	}
	if t.bucket.Get([]byte(key)) != nil {
		return ErrAccountExists
	}
	return t.bucket.Put([]byte(key), value)
}

// Read copies the value out; bbolt memory is only valid for the life of the transaction.
func (t *boltTx) Read(key Key) ([]byte, error) {
	value := t.bucket.Get([]byte(key))
	if value == nil {
		return nil, ErrAccountNotFound
	}
	return append([]byte(nil), value...), nil
}

func (t *boltTx) Write(key Key, value []byte) error {
	if !t.writable {
		return ErrReadOnly
	}
	if t.bucket.Get([]byte(key)) == nil {
		return ErrAccountNotFound
	}
	return t.bucket.Put([]byte(key), value)
}

func (t *boltTx) Exists(key Key) (bool, error) {
	return t.bucket.Get([]byte(key)) != nil, nil
}
