package db

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func TestRegistryAcquire_CreatesFile(t *testing.T) {
	reg := NewRegistry()
	path := filepath.Join(t.TempDir(), "books", "test.gnucash")

	gdb, err := reg.Acquire(path)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer reg.Release(path)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("store file not created: %v", err)
	}
	if gdb.Name() != "sqlite" {
		t.Errorf("dialector %q", gdb.Name())
	}

	var fk int
	if err := gdb.Raw("PRAGMA foreign_keys;").Scan(&fk).Error; err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys pragma off")
	}
}

func TestRegistryAcquire_SharesHandle(t *testing.T) {
	reg := NewRegistry()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.gnucash")

	first, err := reg.Acquire(path)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	// a relative spelling of the same file reuses the open handle
	rel, err := filepath.Rel(mustGetwd(t), path)
	if err != nil {
		// temp dir may live on another volume; fall back to the same path
		rel = path
	}
	second, err := reg.Acquire(rel)
	if err != nil {
		t.Fatalf("nested Acquire: %v", err)
	}
	if first != second {
		t.Errorf("nested acquire opened a second handle")
	}
	if reg.openCount() != 1 {
		t.Errorf("openCount %d, want 1", reg.openCount())
	}

	// inner release keeps the connection open
	if err := reg.Release(rel); err != nil {
		t.Fatalf("inner Release: %v", err)
	}
	if reg.openCount() != 1 {
		t.Errorf("inner release closed the handle")
	}
	if err := first.Exec("CREATE TABLE probe (id INTEGER)").Error; err != nil {
		t.Errorf("handle unusable after inner release: %v", err)
	}

	// outer release closes it
	if err := reg.Release(path); err != nil {
		t.Fatalf("outer Release: %v", err)
	}
	if reg.openCount() != 0 {
		t.Errorf("openCount %d after final release", reg.openCount())
	}
}

func TestRegistryRelease_NotAcquired(t *testing.T) {
	reg := NewRegistry()
	err := reg.Release(filepath.Join(t.TempDir(), "never-opened.gnucash"))
	if !errors.Is(err, ErrNotAcquired) {
		t.Fatalf("expected ErrNotAcquired, got %v", err)
	}
}

func TestRegistryWithConnection(t *testing.T) {
	reg := NewRegistry()
	path := filepath.Join(t.TempDir(), "test.gnucash")

	err := reg.WithConnection(path, func(gdb *gorm.DB) error {
		return gdb.Exec("CREATE TABLE probe (id INTEGER)").Error
	})
	if err != nil {
		t.Fatalf("WithConnection: %v", err)
	}
	if reg.openCount() != 0 {
		t.Errorf("connection still open after WithConnection")
	}

	// the data written inside the scope survives a reopen
	err = reg.WithConnection(path, func(gdb *gorm.DB) error {
		var n int
		return gdb.Raw("SELECT count(*) FROM probe").Scan(&n).Error
	})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
}

func TestRegistryWithConnection_ErrorStillReleases(t *testing.T) {
	reg := NewRegistry()
	path := filepath.Join(t.TempDir(), "test.gnucash")

	boom := errors.New("boom")
	err := reg.WithConnection(path, func(gdb *gorm.DB) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if reg.openCount() != 0 {
		t.Errorf("connection leaked after callback error")
	}
}

func mustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	return wd
}
