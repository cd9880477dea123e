package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schema is applied at startup. All statements are idempotent.
//
// Ownership follows the cascade chain: credentials own profiles, work
// requests own notifications and feedback. Deleting a credential removes
// the profile, its requests, and everything hanging off them.
const schema = `
CREATE TABLE IF NOT EXISTS credentials (
	credential_id BIGSERIAL PRIMARY KEY,
	username      VARCHAR(50) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	role          VARCHAR(10) NOT NULL CHECK (role IN ('User', 'Worker', 'Admin')),
	created_at    TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS users (
	user_id       BIGSERIAL PRIMARY KEY,
	first_name    VARCHAR(50) NOT NULL,
	last_name     VARCHAR(50) NOT NULL,
	email         VARCHAR(100) NOT NULL UNIQUE,
	phone_number1 VARCHAR(20),
	phone_number2 VARCHAR(20),
	credential_id BIGINT NOT NULL UNIQUE REFERENCES credentials(credential_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS workers (
	worker_id        BIGSERIAL PRIMARY KEY,
	first_name       VARCHAR(50) NOT NULL,
	last_name        VARCHAR(50) NOT NULL,
	address          VARCHAR(255),
	city             VARCHAR(50),
	pincode          VARCHAR(10),
	door_no          VARCHAR(10),
	street_name      VARCHAR(100),
	area             VARCHAR(100),
	experience_years INT,
	available_status VARCHAR(20) NOT NULL DEFAULT 'Available',
	phone_number1    VARCHAR(20),
	phone_number2    VARCHAR(20),
	credential_id    BIGINT NOT NULL UNIQUE REFERENCES credentials(credential_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS skills (
	skill_id   BIGSERIAL PRIMARY KEY,
	skill_name VARCHAR(100) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS worker_skills (
	worker_id BIGINT NOT NULL REFERENCES workers(worker_id) ON DELETE CASCADE,
	skill_id  BIGINT NOT NULL REFERENCES skills(skill_id) ON DELETE CASCADE,
	PRIMARY KEY (worker_id, skill_id)
);

CREATE TABLE IF NOT EXISTS work_requests (
	request_id               BIGSERIAL PRIMARY KEY,
	user_id                  BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	worker_id                BIGINT REFERENCES workers(worker_id) ON DELETE SET NULL,
	skill_id                 BIGINT NOT NULL REFERENCES skills(skill_id) ON DELETE CASCADE,
	description              TEXT NOT NULL,
	request_date             DATE NOT NULL,
	status                   VARCHAR(20) NOT NULL DEFAULT 'Pending',
	location                 VARCHAR(255),
	city                     VARCHAR(50),
	pincode                  VARCHAR(10),
	door_no                  VARCHAR(10),
	street_name              VARCHAR(100),
	area                     VARCHAR(100),
	worker_arrival_time      VARCHAR(20),
	user_confirmation_status VARCHAR(10) NOT NULL DEFAULT 'Pending',
	amount                   NUMERIC(12, 2),
	completed_date           DATE,
	created_at               TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS notifications (
	notification_id BIGSERIAL PRIMARY KEY,
	request_id      BIGINT NOT NULL REFERENCES work_requests(request_id) ON DELETE CASCADE,
	recipient_role  VARCHAR(10) NOT NULL,
	recipient_id    BIGINT NOT NULL,
	message         TEXT NOT NULL,
	status          VARCHAR(10) NOT NULL DEFAULT 'Unread',
	created_at      TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS feedback (
	feedback_id BIGSERIAL PRIMARY KEY,
	request_id  BIGINT NOT NULL UNIQUE REFERENCES work_requests(request_id) ON DELETE CASCADE,
	comments    TEXT,
	rating      INT NOT NULL CHECK (rating BETWEEN 1 AND 5)
);
`

// EnsureSchema creates the relational schema if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
