package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// Schema is written in the dialect subset MySQL and SQLite share, so the
// same DDL runs against either driver. Timestamps are always set from Go,
// never by column defaults.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id              VARCHAR(26) PRIMARY KEY,
    categories_name VARCHAR(255) NOT NULL,
    items_count     INT NOT NULL DEFAULT 0,
    created_at      DATETIME NOT NULL,
    updated_at      DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    id                   VARCHAR(26) PRIMARY KEY,
    collection           VARCHAR(32) NOT NULL,
    kind                 VARCHAR(16) NOT NULL,
    item_name            VARCHAR(255) NOT NULL,
    categories_id        VARCHAR(26) NOT NULL,
    categories_name      VARCHAR(255) NOT NULL,
    features             TEXT NOT NULL,
    price_usd            DOUBLE NOT NULL DEFAULT 0,
    price_bdt            DOUBLE NOT NULL DEFAULT 0,
    price                DOUBLE NOT NULL DEFAULT 0,
    quentity             INT NOT NULL DEFAULT 0,
    duration             INT NOT NULL DEFAULT 0,
    duration_type        VARCHAR(8) NOT NULL DEFAULT 'Day',
    review_from          VARCHAR(255) NOT NULL DEFAULT '',
    notes                TEXT,
    status               VARCHAR(16) NOT NULL DEFAULT 'active',
    attachment_public_id VARCHAR(255),
    attachment_url       TEXT,
    created_at           DATETIME NOT NULL,
    updated_at           DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    id                              VARCHAR(26) PRIMARY KEY,
    shop                            VARCHAR(16) NOT NULL,
    date_and_time                   DATETIME NOT NULL,
    date_and_time_formated          VARCHAR(16) NOT NULL,
    item_id                         VARCHAR(26) NOT NULL,
    item_name                       VARCHAR(255) NOT NULL,
    categories                      VARCHAR(255) NOT NULL,
    review_from                     VARCHAR(255) NOT NULL DEFAULT '',
    price_usd                       DOUBLE NOT NULL DEFAULT 0,
    price_bdt                       DOUBLE NOT NULL DEFAULT 0,
    price                           DOUBLE NOT NULL DEFAULT 0,
    billing_first_name              VARCHAR(128) NOT NULL,
    billing_last_name               VARCHAR(128) NOT NULL,
    billing_full_name               VARCHAR(255) NOT NULL,
    billing_email                   VARCHAR(255) NOT NULL,
    billing_phone                   VARCHAR(32) NOT NULL,
    billing_country                 VARCHAR(128) NOT NULL,
    billing_address                 TEXT NOT NULL,
    delivery_date_and_time          DATETIME,
    delivery_date_and_time_formated VARCHAR(16),
    payment_method                  VARCHAR(32),
    status                          VARCHAR(16) NOT NULL DEFAULT 'pending',
    notes                           TEXT,
    created_at                      DATETIME NOT NULL,
    updated_at                      DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS contacts (
    id                     VARCHAR(26) PRIMARY KEY,
    date_and_time          DATETIME NOT NULL,
    date_and_time_formated VARCHAR(16) NOT NULL,
    name                   VARCHAR(255) NOT NULL,
    email                  VARCHAR(255) NOT NULL,
    phone                  VARCHAR(32) NOT NULL,
    subject                VARCHAR(255) NOT NULL,
    message                TEXT NOT NULL,
    status                 VARCHAR(16) NOT NULL DEFAULT 'pending',
    created_at             DATETIME NOT NULL,
    updated_at             DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id                     VARCHAR(26) PRIMARY KEY,
    date_and_time          DATETIME NOT NULL,
    date_and_time_formated VARCHAR(16) NOT NULL,
    first_name             VARCHAR(128) NOT NULL,
    last_name              VARCHAR(128) NOT NULL,
    full_name              VARCHAR(255) NOT NULL,
    email                  VARCHAR(255) NOT NULL,
    phone                  VARCHAR(32) NOT NULL,
    country                VARCHAR(128) NOT NULL,
    gender                 VARCHAR(16) NOT NULL,
    password               VARCHAR(255) NOT NULL,
    role                   VARCHAR(16) NOT NULL DEFAULT 'user',
    status                 VARCHAR(16) NOT NULL DEFAULT 'pending',
    created_at             DATETIME NOT NULL,
    updated_at             DATETIME NOT NULL
);
`

// EnsureSchema creates any missing tables. It runs at startup so a fresh
// database comes up without a separate migration step.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}
	return nil
}
