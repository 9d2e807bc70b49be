package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables this service owns. Statements are idempotent
// so a restart against an existing database is a no-op.
func EnsureSchema(handle *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trip_requests (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			origin VARCHAR(120) NOT NULL,
			destination VARCHAR(120) NOT NULL,
			start_date VARCHAR(10) NOT NULL DEFAULT '',
			number_of_days INT NOT NULL DEFAULT 0,
			total_budget BIGINT NOT NULL DEFAULT 0,
			travel_style VARCHAR(16) NOT NULL DEFAULT 'BALANCED',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS trip_options (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			trip_request_id BIGINT NOT NULL,
			destination VARCHAR(120) NOT NULL,
			flight_airline VARCHAR(120) NOT NULL DEFAULT '',
			flight_number VARCHAR(20) NOT NULL DEFAULT '',
			flight_price BIGINT NOT NULL DEFAULT 0,
			hotel_name VARCHAR(160) NOT NULL DEFAULT '',
			hotel_price BIGINT NOT NULL DEFAULT 0,
			total_cost BIGINT NOT NULL DEFAULT 0,
			remaining_budget BIGINT NOT NULL DEFAULT 0,
			score DOUBLE NOT NULL DEFAULT 0,
			explanation TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT fk_trip_options_request FOREIGN KEY (trip_request_id) REFERENCES trip_requests(id)
		)`,
		`CREATE TABLE IF NOT EXISTS activities (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			trip_option_id BIGINT NOT NULL,
			name VARCHAR(160) NOT NULL,
			category VARCHAR(32) NOT NULL,
			price BIGINT NOT NULL DEFAULT 0,
			duration_minutes INT NOT NULL DEFAULT 0,
			rating DOUBLE NOT NULL DEFAULT 0,
			locked TINYINT(1) NOT NULL DEFAULT 0,
			CONSTRAINT fk_activities_option FOREIGN KEY (trip_option_id) REFERENCES trip_options(id)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			trip_option_id BIGINT NOT NULL,
			booking_type VARCHAR(16) NOT NULL,
			details JSON NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT fk_bookings_option FOREIGN KEY (trip_option_id) REFERENCES trip_options(id)
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			trip_option_id BIGINT NOT NULL,
			amount BIGINT NOT NULL DEFAULT 0,
			currency VARCHAR(8) NOT NULL DEFAULT 'USD',
			intent_id VARCHAR(120) NOT NULL DEFAULT '',
			billing_name VARCHAR(160) NOT NULL DEFAULT '',
			billing_email VARCHAR(160) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT fk_payments_option FOREIGN KEY (trip_option_id) REFERENCES trip_options(id),
			UNIQUE KEY uq_payments_option (trip_option_id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := handle.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
