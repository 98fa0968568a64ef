package profilestore

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver
	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// groupsTable is the name of the table holding serialized profile groups.
const groupsTable = "profile_groups"

// GroupStoreImpl persists profile groups using various database backends.
type GroupStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
}

var _ contract.GroupStore = &GroupStoreImpl{} // Compile-time check

// NewGroupStore initializes and returns a new GroupStore based on the backend type.
func NewGroupStore(backend schema.DatabaseBackend, connStr string) (contract.GroupStore, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open("sqlite3", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled persistence
		return &GroupStoreImpl{db: nil, backend: backend, connStr: connStr}, nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	if _, err := db.Exec(getCreateTableQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", groupsTable, err)
	}

	return &GroupStoreImpl{db: db, backend: backend, connStr: connStr}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(backend schema.DatabaseBackend) string {
	quoted := quoteTableName(groupsTable, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				group_name VARCHAR(255) PRIMARY KEY,
				payload BLOB NOT NULL,
				updated_at BIGINT NOT NULL
			);
		`, quoted)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				group_name TEXT PRIMARY KEY,
				payload BYTEA NOT NULL,
				updated_at BIGINT NOT NULL
			);
		`, quoted)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				group_name TEXT PRIMARY KEY,
				payload BLOB NOT NULL,
				updated_at INTEGER NOT NULL
			);
		`, quoted)
	}
}

// SaveGroup inserts or replaces a group wholesale.
func (gs *GroupStoreImpl) SaveGroup(group schema.ProfileGroup) error {
	if gs.backend == schema.NoneBackend || gs.db == nil {
		return fmt.Errorf("profile persistence is disabled (backend none)")
	}
	if group.Name == schema.DefaultGroupName {
		return fmt.Errorf("the %s group is built in and cannot be overwritten", schema.DefaultGroupName)
	}

	payload, err := EncodeGroup(group)
	if err != nil {
		return err
	}
	_, err = gs.db.Exec(gs.getUpsertQuery(), group.Name, payload, time.Now().Unix())
	return err
}

// LoadGroup returns the named group; the boolean is false when absent.
func (gs *GroupStoreImpl) LoadGroup(name string) (schema.ProfileGroup, bool, error) {
	if gs.backend == schema.NoneBackend || gs.db == nil {
		return schema.ProfileGroup{}, false, nil
	}

	quoted := quoteTableName(groupsTable, gs.backend)
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE group_name = %s`, quoted, gs.getPlaceholder())

	var payload []byte
	if err := gs.db.QueryRow(query, name).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return schema.ProfileGroup{}, false, nil
		}
		return schema.ProfileGroup{}, false, err
	}

	group, err := DecodeGroup(payload)
	if err != nil {
		return schema.ProfileGroup{}, false, fmt.Errorf("stored group %q is corrupt: %w", name, err)
	}
	return group, true, nil
}

// ListGroups returns all persisted group names in sorted order.
func (gs *GroupStoreImpl) ListGroups() ([]string, error) {
	if gs.backend == schema.NoneBackend || gs.db == nil {
		return nil, nil
	}

	quoted := quoteTableName(groupsTable, gs.backend)
	rows, err := gs.db.Query(fmt.Sprintf(`SELECT group_name FROM %s ORDER BY group_name`, quoted))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteGroup removes a group by name.
func (gs *GroupStoreImpl) DeleteGroup(name string) error {
	if gs.backend == schema.NoneBackend || gs.db == nil {
		return nil
	}
	if name == schema.DefaultGroupName {
		return fmt.Errorf("the %s group is built in and cannot be deleted", schema.DefaultGroupName)
	}

	quoted := quoteTableName(groupsTable, gs.backend)
	query := fmt.Sprintf(`DELETE FROM %s WHERE group_name = %s`, quoted, gs.getPlaceholder())
	_, err := gs.db.Exec(query, name)
	return err
}

// Status returns status information about the store.
func (gs *GroupStoreImpl) Status() (contract.StoreStatus, error) {
	status := contract.StoreStatus{
		Backend:  gs.backend,
		Location: gs.location(),
	}
	if gs.backend == schema.NoneBackend || gs.db == nil {
		return status, nil
	}

	quoted := quoteTableName(groupsTable, gs.backend)
	row := gs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoted))
	if err := row.Scan(&status.Groups); err != nil {
		return status, fmt.Errorf("failed to count groups: %w", err)
	}
	if status.Groups == 0 {
		return status, nil
	}

	rows, err := gs.db.Query(fmt.Sprintf("SELECT payload FROM %s", quoted))
	if err != nil {
		return status, fmt.Errorf("failed to scan groups: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return status, err
		}
		group, err := DecodeGroup(payload)
		if err != nil {
			continue // corrupt rows do not break status
		}
		status.Profiles += len(group.Profiles)
	}
	return status, rows.Err()
}

// Clear removes all persisted groups.
func (gs *GroupStoreImpl) Clear() error {
	if gs.backend == schema.NoneBackend || gs.db == nil {
		return nil
	}
	quoted := quoteTableName(groupsTable, gs.backend)
	_, err := gs.db.Exec(fmt.Sprintf("DELETE FROM %s", quoted))
	return err
}

// Close closes the underlying DB connection.
func (gs *GroupStoreImpl) Close() error {
	if gs.db != nil {
		return gs.db.Close()
	}
	return nil
}

// location describes where the store lives, for status displays.
func (gs *GroupStoreImpl) location() string {
	if gs.backend == schema.SQLiteBackend {
		if gs.connStr != "" {
			return gs.connStr
		}
		return GetDBFilePath()
	}
	return gs.connStr
}

// getPlaceholder returns the parameter placeholder for the backend.
func (gs *GroupStoreImpl) getPlaceholder() string {
	switch gs.backend {
	case schema.PostgreSQLBackend:
		return "$1"
	default: // SQLite and MySQL
		return "?"
	}
}

// getUpsertQuery returns the UPSERT query for the backend.
func (gs *GroupStoreImpl) getUpsertQuery() string {
	quoted := quoteTableName(groupsTable, gs.backend)
	switch gs.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (group_name, payload, updated_at) VALUES (?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE payload = new.payload, updated_at = new.updated_at`, quoted)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (group_name, payload, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (group_name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`, quoted)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (group_name, payload, updated_at) VALUES (?, ?, ?)`, quoted)
	}
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}
