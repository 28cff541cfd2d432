package dal

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	usersBucket    = "users"
	channelsBucket = "channels"
)

// BoltDB is the record store for users and channels. Buckets are created by
// the migrations runner before the store is constructed.
type BoltDB struct {
	db *bbolt.DB

	now func() time.Time
}

func NewBoltDB(db *bbolt.DB) (*BoltDB, error) {
	if err := db.View(func(tx *bbolt.Tx) error {
		for _, name := range []string{usersBucket, channelsBucket} {
			if tx.Bucket([]byte(name)) == nil {
				return fmt.Errorf("bucket %q not found, run migrations first", name)
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return &BoltDB{db: db, now: time.Now}, nil
}

func i64tob(id int64) []byte {
	return []byte(fmt.Sprintf("%d", id))
}
