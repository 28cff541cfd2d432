package v1

import (
	"go.etcd.io/bbolt"
)

// MigrationV1 is the bootstrap migration that creates the migrations bucket
type MigrationV1 struct{}

// Version returns the migration version
func (m *MigrationV1) Version() int {
	return 1
}

// Description returns a human-readable description of the migration
func (m *MigrationV1) Description() string {
	return "Bootstrap migration system - create migrations bucket"
}

// Up performs the migration. The migrations bucket itself is created by the
// runner; v1 only verifies the migration system is in place.
func (m *MigrationV1) Up(db *bbolt.DB) error {
	return db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte("migrations")) == nil {
			panic("migrations bucket not found during v1 migration")
		}
		return nil
	})
}

// New creates a new instance of MigrationV1
func New() *MigrationV1 {
	return &MigrationV1{}
}
