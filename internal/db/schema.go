package db

// SchemaSQL is the complete schema for fresh cadence installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// it via GetSchemaSQL() so test schemas cannot drift from production: if
// repository code references a column that does not exist here, tests fail
// immediately with "no such column".
const SchemaSQL = `
-- Clients (the people waiting on - and being waited on by - projects)
CREATE TABLE IF NOT EXISTS clients (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Projects (one delivery timeline per client engagement)
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	client_id TEXT NOT NULL,
	title TEXT NOT NULL,
	type TEXT NOT NULL CHECK(type IN ('landingpage', 'website', 'software', 'custom')),
	cascade_policy_enabled BOOLEAN NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (client_id) REFERENCES clients(id)
);

-- Milestones (ordered steps alternating between agency and client)
-- original_due_date is the immutable cascade baseline; only due_date moves.
CREATE TABLE IF NOT EXISTS milestones (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	sequence INTEGER NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	status TEXT NOT NULL CHECK(status IN ('locked', 'open', 'submitted', 'in_review', 'done')) DEFAULT 'locked',
	owner TEXT NOT NULL CHECK(owner IN ('agency', 'client')),
	category TEXT NOT NULL,
	due_date DATETIME NOT NULL,
	original_due_date DATETIME NOT NULL,
	action_url TEXT,
	action_label TEXT,
	submitted_at DATETIME,
	completed_at DATETIME,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
	UNIQUE(project_id, sequence)
);

-- Infrastructure tasks (administrative checklist per project)
CREATE TABLE IF NOT EXISTS infrastructure_tasks (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	title TEXT NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT 0,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

-- Activity log (append-only audit trail per project)
CREATE TABLE IF NOT EXISTS activity_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id TEXT NOT NULL,
	type TEXT NOT NULL,
	message TEXT NOT NULL,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_milestones_project ON milestones(project_id, sequence);
CREATE INDEX IF NOT EXISTS idx_milestones_owner_status ON milestones(owner, status);
CREATE INDEX IF NOT EXISTS idx_activity_project ON activity_log(project_id, timestamp);
`

// GetSchemaSQL returns the authoritative schema for tests and migrations.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema creates all tables if they do not exist.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}
	_, err = database.Exec(SchemaSQL)
	return err
}
