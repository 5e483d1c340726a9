package repositories

import "database/sql"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		surname VARCHAR(100) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL UNIQUE,
		phone VARCHAR(32) NOT NULL DEFAULT '',
		password VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL DEFAULT 'user',
		street VARCHAR(255) NOT NULL DEFAULT '',
		city VARCHAR(100) NOT NULL DEFAULT '',
		state VARCHAR(100) NOT NULL DEFAULT '',
		country VARCHAR(100) NOT NULL DEFAULT '',
		postal_code VARCHAR(32) NOT NULL DEFAULT '',
		refresh_token VARCHAR(255) NOT NULL DEFAULT '',
		expires_at DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NULL
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT NOT NULL,
		image VARCHAR(512) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		category_id INT NOT NULL,
		status VARCHAR(16) NOT NULL,
		reported_by INT NOT NULL,
		returned_to INT NULL,
		street VARCHAR(255) NOT NULL DEFAULT '',
		city VARCHAR(100) NOT NULL DEFAULT '',
		state VARCHAR(100) NOT NULL DEFAULT '',
		country VARCHAR(100) NOT NULL DEFAULT '',
		postal_code VARCHAR(32) NOT NULL DEFAULT '',
		latitude DOUBLE NULL,
		longitude DOUBLE NULL,
		date_reported DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		returned_on DATETIME NULL,
		returned_to_owner BOOLEAN NOT NULL DEFAULT FALSE,
		CONSTRAINT fk_items_category FOREIGN KEY (category_id) REFERENCES categories(id),
		CONSTRAINT fk_items_reporter FOREIGN KEY (reported_by) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS item_images (
		id INT AUTO_INCREMENT PRIMARY KEY,
		item_id INT NOT NULL,
		position INT NOT NULL DEFAULT 0,
		url VARCHAR(1024) NOT NULL,
		CONSTRAINT fk_item_images_item FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS claims (
		id INT AUTO_INCREMENT PRIMARY KEY,
		item_id INT NOT NULL,
		claim_by INT NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		date_reported DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_claims_item FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE,
		CONSTRAINT fk_claims_user FOREIGN KEY (claim_by) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS persons (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		age INT NOT NULL,
		guardian_name VARCHAR(255) NOT NULL,
		guardian_phone VARCHAR(32) NOT NULL,
		guardian_relation VARCHAR(64) NOT NULL,
		guardian_street VARCHAR(255) NOT NULL DEFAULT '',
		guardian_city VARCHAR(100) NOT NULL DEFAULT '',
		guardian_state VARCHAR(100) NOT NULL DEFAULT '',
		guardian_country VARCHAR(100) NOT NULL DEFAULT '',
		guardian_postal_code VARCHAR(32) NOT NULL DEFAULT '',
		status VARCHAR(16) NOT NULL,
		reported_by INT NOT NULL,
		found_by INT NULL,
		latitude DOUBLE NOT NULL,
		longitude DOUBLE NOT NULL,
		location_address VARCHAR(512) NOT NULL DEFAULT '',
		date_reported DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		date_found DATETIME NULL,
		returned_to_owner BOOLEAN NOT NULL DEFAULT FALSE,
		CONSTRAINT fk_persons_reporter FOREIGN KEY (reported_by) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS person_images (
		id INT AUTO_INCREMENT PRIMARY KEY,
		person_id INT NOT NULL,
		position INT NOT NULL DEFAULT 0,
		url VARCHAR(1024) NOT NULL,
		CONSTRAINT fk_person_images_person FOREIGN KEY (person_id) REFERENCES persons(id) ON DELETE CASCADE
	)`,
}

// InitSchema creates the tables on startup when they do not exist yet.
func InitSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
