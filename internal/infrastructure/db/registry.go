package db

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"gorm.io/gorm"
)

var ErrNotAcquired = errors.New("connection was not acquired from this registry")

// Registry keeps at most one open connection per backing store, keyed by the
// normalized absolute path (or mysql URL). Acquire/Release are reference
// counted: nested acquisitions of the same store share the open handle, only
// the release of the outermost acquisition saves and closes it.
//
// The registry map itself is guarded; concurrent mutation of one store from
// several goroutines is not a design goal and stays undefined.
type Registry struct {
	mu   sync.Mutex
	open map[string]*entry
}

type entry struct {
	db   *gorm.DB
	refs int
}

func NewRegistry() *Registry {
	return &Registry{open: make(map[string]*entry)}
}

// Acquire opens the store at location, creating it first when the file does
// not exist, or reuses the already-open handle for the same location.
func (r *Registry) Acquire(location string) (*gorm.DB, error) {
	key, err := normalize(location)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.open[key]; ok {
		e.refs++
		return e.db, nil
	}
	gdb, err := open(key)
	if err != nil {
		return nil, err
	}
	r.open[key] = &entry{db: gdb, refs: 1}
	return gdb, nil
}

// Release undoes one Acquire. The final release checkpoints pending changes
// and closes the connection, removing it from the registry.
func (r *Registry) Release(location string) error {
	key, err := normalize(location)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.open[key]
	if !ok {
		return ErrNotAcquired
	}
	e.refs--
	if e.refs > 0 {
		return nil
	}
	delete(r.open, key)
	return save(e.db)
}

// WithConnection is the scoped acquisition form: it runs fn against the open
// connection and guarantees the release on every exit path. An error from fn
// propagates; by then whatever fn has flushed to the store remains.
func (r *Registry) WithConnection(location string, fn func(db *gorm.DB) error) (err error) {
	gdb, err := r.Acquire(location)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := r.Release(location); err == nil {
			err = cerr
		}
	}()
	return fn(gdb)
}

func (r *Registry) openCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.open)
}

func normalize(location string) (string, error) {
	if strings.HasPrefix(location, "mysql://") {
		return location, nil
	}
	return filepath.Abs(location)
}

func open(key string) (*gorm.DB, error) {
	if strings.HasPrefix(key, "mysql://") {
		return OpenMySQL(key)
	}
	return OpenSQLite(key)
}

func save(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	if gdb.Name() == "sqlite" {
		_, _ = sqlDB.Exec("PRAGMA wal_checkpoint(TRUNCATE);")
	}
	return sqlDB.Close()
}
