package database

import (
	"fmt"
	"strings"
)

// Dialect selects the DDL flavour
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

// Schema returns the CREATE statements for every table, parents first.
//
// Referential rules live in the store: deleting a project cascades to its processes,
// subprocesses and stakeholders; deleting a process or subprocess nulls stakeholder references.
func Schema(d Dialect, t *TableNames) []string {
	id := "BIGSERIAL PRIMARY KEY"
	ts := "TIMESTAMPTZ NOT NULL DEFAULT NOW()"
	date := "DATE"
	if d == SQLite {
		id = "INTEGER PRIMARY KEY AUTOINCREMENT"
		ts = "TEXT NOT NULL"
		date = "TEXT"
	}

	statuses := "'planning', 'in_progress', 'paused', 'completed'"

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %[1]s (
			id %[2]s,
			name VARCHAR(150) NOT NULL,
			description TEXT,
			start_date %[3]s,
			status VARCHAR(20) NOT NULL DEFAULT 'in_progress' CHECK (status IN (%[4]s)),
			color VARCHAR(30),
			created_at %[5]s,
			updated_at %[5]s
		)`, t.Projects, id, date, statuses, ts),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %[1]s (
			id %[2]s,
			project_id BIGINT NOT NULL REFERENCES %[3]s(id) ON DELETE CASCADE,
			name VARCHAR(150) NOT NULL,
			description TEXT,
			color VARCHAR(30),
			weight INTEGER NOT NULL DEFAULT 1,
			created_at %[4]s,
			updated_at %[4]s
		)`, t.Processes, id, t.Projects, ts),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %[1]s (
			id %[2]s,
			process_id BIGINT NOT NULL REFERENCES %[3]s(id) ON DELETE CASCADE,
			name VARCHAR(150) NOT NULL,
			description TEXT,
			created_at %[4]s,
			updated_at %[4]s
		)`, t.Subprocesses, id, t.Processes, ts),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %[1]s (
			id %[2]s,
			project_id BIGINT NOT NULL REFERENCES %[3]s(id) ON DELETE CASCADE,
			process_id BIGINT REFERENCES %[4]s(id) ON DELETE SET NULL,
			subprocess_id BIGINT REFERENCES %[5]s(id) ON DELETE SET NULL,
			full_name VARCHAR(150) NOT NULL,
			role VARCHAR(100) NOT NULL,
			area VARCHAR(100) NOT NULL,
			contact VARCHAR(150) NOT NULL,
			notes TEXT,
			color VARCHAR(30) NOT NULL,
			created_at %[6]s,
			updated_at %[6]s
		)`, t.Stakeholders, id, t.Projects, t.Processes, t.Subprocesses, ts),

		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_project ON %[1]s(project_id)`, t.Stakeholders),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_process ON %[1]s(process_id)`, t.Stakeholders),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_project ON %[1]s(project_id)`, t.Processes),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_process ON %[1]s(process_id)`, t.Subprocesses),
	}
}

// DropStatements returns DROP statements children first
func DropStatements(d Dialect, t *TableNames) []string {
	suffix := " CASCADE"
	if d == SQLite {
		suffix = ""
	}
	stmts := make([]string, 0, 4)
	for _, table := range t.DependencyOrder() {
		stmts = append(stmts, fmt.Sprintf("DROP TABLE IF EXISTS %s%s", table, suffix))
	}
	return stmts
}

// ClearStatements returns DELETE statements children first, keeping the schema
func ClearStatements(t *TableNames) []string {
	stmts := make([]string, 0, 4)
	for _, table := range t.DependencyOrder() {
		stmts = append(stmts, "DELETE FROM "+table)
	}
	return stmts
}

// Script joins statements into a single script for logging or manual application
func Script(stmts []string) string {
	return strings.Join(stmts, ";\n") + ";\n"
}
