package database

import (
	"context"
	"database/sql"
)

// schema lists the CREATE TABLE statements for the three record kinds. There
// are intentionally no foreign keys: tickets reference users and events by
// plain id columns only, matching the per-record consistency model of the
// service.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name          VARCHAR(191)    NOT NULL,
		email         VARCHAR(191)    NOT NULL,
		password_hash VARCHAR(255)    NOT NULL,
		is_admin      TINYINT(1)      NOT NULL DEFAULT 0,
		created_at    TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS events (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		owner        VARCHAR(191)    NOT NULL DEFAULT '',
		title        VARCHAR(255)    NOT NULL DEFAULT '',
		description  TEXT,
		organized_by VARCHAR(255)    NOT NULL DEFAULT '',
		event_date   DATETIME        NULL,
		event_time   VARCHAR(32)     NOT NULL DEFAULT '',
		location     VARCHAR(255)    NOT NULL DEFAULT '',
		participants INT             NOT NULL DEFAULT 0,
		booked_count INT             NOT NULL DEFAULT 0,
		income       DOUBLE          NOT NULL DEFAULT 0,
		ticket_price DOUBLE          NOT NULL DEFAULT 0,
		quantity     INT             NOT NULL DEFAULT 0,
		image        VARCHAR(255)    NOT NULL DEFAULT '',
		likes        INT             NOT NULL DEFAULT 0,
		comments     JSON            NULL,
		created_at   TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS tickets (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id      BIGINT UNSIGNED NOT NULL DEFAULT 0,
		event_id     BIGINT UNSIGNED NOT NULL DEFAULT 0,
		holder_name  VARCHAR(191)    NOT NULL DEFAULT '',
		holder_email VARCHAR(191)    NOT NULL DEFAULT '',
		event_name   VARCHAR(255)    NOT NULL DEFAULT '',
		event_date   VARCHAR(64)     NOT NULL DEFAULT '',
		event_time   VARCHAR(32)     NOT NULL DEFAULT '',
		price        DOUBLE          NOT NULL DEFAULT 0,
		qr           TEXT,
		created_at   TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_tickets_user (user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
