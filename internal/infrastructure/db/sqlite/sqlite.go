package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for opening the SQLite database file.
type Config struct {
	Path    string
	Timeout time.Duration
}

// Connect opens the database, verifies it with a ping, and applies the
// connection settings this service relies on. SQLite serialises writes
// itself; a single pooled connection keeps concurrent handlers from
// tripping over SQLITE_BUSY.
func Connect(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.Path)
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	return db, nil
}

// Migrate creates the schema when it does not exist yet. Statements are
// idempotent so this runs on every start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite migrate: %w", err)
	}
	return nil
}

// SeedAdmin inserts the bootstrap administrator (username "admin",
// password "admin", forced password change) when no account with that
// username exists.
func SeedAdmin(ctx context.Context, db *sqlx.DB) error {
	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users WHERE username = 'admin'`); err != nil {
		return fmt.Errorf("seed admin check: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), 10)
	if err != nil {
		return fmt.Errorf("seed admin hash: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (username, password, role, active, email, phone, full_name, department, must_change_password)
		VALUES ('admin', ?, 'admin', 1, 'admin@example.com', '+34600000000', 'Administrador', 'Dirección', 1)`,
		string(hash))
	if err != nil {
		return fmt.Errorf("seed admin insert: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL,
	role TEXT NOT NULL CHECK (role IN ('admin', 'center_tutor', 'company_tutor')),
	active BOOLEAN NOT NULL DEFAULT 1,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	full_name TEXT NOT NULL,
	department TEXT NOT NULL,
	must_change_password BOOLEAN NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS academic_years (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	active BOOLEAN NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS companies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	legal_name TEXT NOT NULL,
	tax_id TEXT UNIQUE NOT NULL,
	address TEXT NOT NULL,
	city TEXT NOT NULL,
	postal_code TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT NOT NULL,
	website TEXT,
	active BOOLEAN NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS work_centers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	address TEXT NOT NULL,
	city TEXT NOT NULL,
	postal_code TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT NOT NULL,
	tutor_id INTEGER,
	active BOOLEAN NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (company_id) REFERENCES companies (id),
	FOREIGN KEY (tutor_id) REFERENCES users (id)
);

CREATE TABLE IF NOT EXISTS groups (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	academic_year_id INTEGER NOT NULL,
	active BOOLEAN NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (academic_year_id) REFERENCES academic_years (id)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_groups_name_year ON groups(name, academic_year_id);

CREATE TABLE IF NOT EXISTS students (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	cial TEXT UNIQUE NOT NULL,
	dni TEXT NOT NULL UNIQUE,
	nuss TEXT NOT NULL UNIQUE,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	group_id INTEGER NOT NULL REFERENCES groups(id),
	active BOOLEAN NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (group_id) REFERENCES groups (id)
);

CREATE TABLE IF NOT EXISTS activities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	student_id INTEGER NOT NULL,
	description TEXT NOT NULL,
	date DATE NOT NULL,
	hours INTEGER NOT NULL CHECK (hours > 0),
	status TEXT NOT NULL CHECK (status IN ('pending', 'approved', 'rejected')),
	comments TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (student_id) REFERENCES students (id)
);

CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);
CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
CREATE INDEX IF NOT EXISTS idx_users_role ON users(role);
CREATE INDEX IF NOT EXISTS idx_users_active ON users(active);

CREATE INDEX IF NOT EXISTS idx_academic_years_active ON academic_years(active);
CREATE INDEX IF NOT EXISTS idx_academic_years_dates ON academic_years(start_date, end_date);

CREATE INDEX IF NOT EXISTS idx_companies_active ON companies(active);
CREATE INDEX IF NOT EXISTS idx_companies_tax_id ON companies(tax_id);

CREATE INDEX IF NOT EXISTS idx_work_centers_company ON work_centers(company_id);
CREATE INDEX IF NOT EXISTS idx_work_centers_tutor ON work_centers(tutor_id);
CREATE INDEX IF NOT EXISTS idx_work_centers_active ON work_centers(active);

CREATE INDEX IF NOT EXISTS idx_groups_academic_year ON groups(academic_year_id);
CREATE INDEX IF NOT EXISTS idx_groups_active ON groups(active);

CREATE INDEX IF NOT EXISTS idx_students_group ON students(group_id);
CREATE INDEX IF NOT EXISTS idx_students_active ON students(active);
CREATE INDEX IF NOT EXISTS idx_students_cial ON students(cial);
CREATE INDEX IF NOT EXISTS idx_students_dni ON students(dni);

CREATE INDEX IF NOT EXISTS idx_activities_student ON activities(student_id);
CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(date);
CREATE INDEX IF NOT EXISTS idx_activities_status ON activities(status);
`
