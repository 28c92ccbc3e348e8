package accounts

import (
	"context"
	"sync"
)

// MemoryStore keeps accounts in a map. Atomic calls run one at a time.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[Key][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[Key][]byte)}
}

func (s *MemoryStore) Atomic(ctx context.Context, fn func(Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{committed: s.accounts, pending: make(map[Key][]byte), writable: true}
	if err := fn(tx); err != nil {
		return err
	}
	for key, value := range tx.pending {
		s.accounts[key] = value
	}
	return nil
}

func (s *MemoryStore) View(ctx context.Context, fn func(Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(&memoryTx{committed: s.accounts})
}

func (s *MemoryStore) Close() error {
	return nil
}

type memoryTx struct {
	committed map[Key][]byte
	pending   map[Key][]byte
	writable  bool
}

func (t *memoryTx) lookup(key Key) ([]byte, bool) {
	if value, ok := t.pending[key]; ok {
		return value, true
	}
	value, ok := t.committed[key]
	return value, ok
}

func (t *memoryTx) Create(key Key, value []byte) error {
	if !t.writable {
		return ErrReadOnly
	}
	if _, ok := t.lookup(key); ok {
		return ErrAccountExists
	}
	t.pending[key] = append([]byte(nil), value...)
	return nil
}

func (t *memoryTx) Read(key Key) ([]byte, error) {
	value, ok := t.lookup(key)
	if !ok {
		return nil, ErrAccountNotFound
	}
	return append([]byte(nil), value...), nil
}

func (t *memoryTx) Write(key Key, value []byte) error {
	if !t.writable {
		return ErrReadOnly
	}
	if _, ok := t.lookup(key); !ok {
		return ErrAccountNotFound
	}
	t.pending[key] = append([]byte(nil), value...)
	return nil
}

func (t *memoryTx) Exists(key Key) (bool, error) {
	_, ok := t.lookup(key)
	return ok, nil
}
