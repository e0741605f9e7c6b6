package engine

import "sync"

// keyLock provides a mutex per string key. Every operation for one
// (game, session) pair runs inside its key's critical section, so
// load → interpret → commit never interleaves for the same session.
// Different keys never block each other. Entries are refcounted and
// removed when the last holder unlocks, so idle sessions cost nothing.
type keyLock struct {
	mu    sync.Mutex
	locks map[string]*keyLockEntry
}

type keyLockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{locks: make(map[string]*keyLockEntry)}
}

// Lock acquires the mutex for key, creating it on first use.
func (kl *keyLock) Lock(key string) {
	kl.mu.Lock()
	entry, ok := kl.locks[key]
	if !ok {
		entry = &keyLockEntry{}
		kl.locks[key] = entry
	}
	entry.refs++
	kl.mu.Unlock()

	entry.mu.Lock()
}

// Unlock releases the mutex for key and drops the entry when no
// other goroutine is waiting on it.
func (kl *keyLock) Unlock(key string) {
	kl.mu.Lock()
	entry := kl.locks[key]
	entry.refs--
	if entry.refs == 0 {
		delete(kl.locks, key)
	}
	kl.mu.Unlock()

	entry.mu.Unlock()
}
