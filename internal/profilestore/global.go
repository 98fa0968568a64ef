package profilestore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// Manager is the global store holder for main logic.
var (
	Manager   = &GroupStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GroupStoreManager guards the process-wide GroupStore instance.
type GroupStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	store        contract.GroupStore
}

// GetStore returns the configured GroupStore, or nil when persistence is off.
func (mgr *GroupStoreManager) GetStore() contract.GroupStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.store
}

// GetDBFilePath returns the path to the SQLite DB file for profile storage.
func GetDBFilePath() string {
	return contract.GetStoreDBFilePath()
}

// InitStore initializes the global store manager. backend can be empty to
// skip initialization entirely.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		if backend == "" {
			return
		}
		store, err := NewGroupStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize profile store: %w", err)
			return
		}
		Manager.Lock()
		Manager.store = store
		Manager.Unlock()
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStore should be called on application shutdown.
func CloseStore() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.store != nil {
			_ = Manager.store.Close()
		}
	})
}

// ClearStore clears persisted groups for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearStore(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return dropSQLTable("mysql", connStr)

	case schema.PostgreSQLBackend:
		return dropSQLTable("pgx", connStr)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// dropSQLTable connects to the SQL database and drops the groups table.
func dropSQLTable(driverName, connStr string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", groupsTable)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", groupsTable, err)
	}
	return nil
}
