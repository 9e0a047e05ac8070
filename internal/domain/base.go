package domain

import (
	"database/sql"
	"time"
)

// Model is the persisted base every entity embeds. Rows are never physically
// removed: deletes flip IsDeleted and every read filters on it.
type Model struct {
	ID           int64        `db:"id"`
	CreatedDate  time.Time    `db:"created_date"`
	ModifiedDate sql.NullTime `db:"modified_date"`
	IsDeleted    bool         `db:"is_deleted"`
}

// Base exposes the embedded Model so the generic repository can stamp
// timestamps and soft-delete state without knowing the concrete entity.
func (m *Model) Base() *Model { return m }
