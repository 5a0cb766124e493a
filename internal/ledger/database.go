package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const committedBucket = "committed"

// DB mirrors the committed ledger across process restarts. The in-memory
// Store stays the source of truth within a session; the database is the
// session mechanism durability is delegated to.
type DB interface {
	// AppendCommitted persists a committed batch in arrival order.
	AppendCommitted(records []Record) error

	// LoadCommitted returns all persisted records in commit order.
	LoadCommitted() ([]Record, error)

	// ResetCommitted wipes the persisted ledger.
	ResetCommitted() error

	// Close closes the database.
	Close() error
}

// BoltDB implements DB on a single bbolt file.
type BoltDB struct {
	db *bbolt.DB
}

// NewBoltDB opens (or creates) the ledger database at path.
func NewBoltDB(path string) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(committedBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// AppendCommitted persists a batch under ascending sequence keys so that
// iteration order is commit order.
func (b *BoltDB) AppendCommitted(records []Record) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(committedBucket))
		for _, record := range records {
			seq, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("allocating sequence: %w", err)
			}
			data, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("marshaling record: %w", err)
			}
			key := fmt.Sprintf("%020d", seq)
			if err := bucket.Put([]byte(key), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadCommitted returns every persisted record, oldest first.
func (b *BoltDB) LoadCommitted() ([]Record, error) {
	records := make([]Record, 0)
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(committedBucket))
		return bucket.ForEach(func(k, v []byte) error {
			var record Record
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("unmarshaling record: %w", err)
			}
			records = append(records, record)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ResetCommitted drops and recreates the committed bucket.
func (b *BoltDB) ResetCommitted() error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(committedBucket)); err != nil {
			return fmt.Errorf("deleting bucket: %w", err)
		}
		_, err := tx.CreateBucket([]byte(committedBucket))
		return err
	})
}

// Close closes the database file.
func (b *BoltDB) Close() error {
	return b.db.Close()
}
