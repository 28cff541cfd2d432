package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// User is a single bot user. Users are created on their first inbound event
// and never deleted; Messages counts relayed completion requests.
type User struct {
	ChatID    int64     `json:"chat_id"`
	FirstName string    `json:"first_name,omitempty"`
	Messages  int       `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *BoltDB) CountUsers() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(usersBucket))
		res = b.Stats().KeyN
		return nil
	})
	return res, err
}

func (s *BoltDB) GetUser(chatID int64) (User, bool, error) {
	var res User
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(usersBucket)).Get(i64tob(chatID))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) GetAllUsers() ([]User, error) {
	var res []User

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(usersBucket))
		c := b.Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			var u User
			if err := json.Unmarshal(v, &u); err != nil {
				return fmt.Errorf("unmarshal user: %w", err)
			}
			res = append(res, u)
		}

		return nil
	})

	return res, err
}

func (s *BoltDB) PutUser(user User) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(usersBucket))

		id := i64tob(user.ChatID)
		if data := b.Get(id); data == nil {
			user.CreatedAt = s.now()
		} else {
			var existing User
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("unmarshal existing user for chatID=%d: %w", user.ChatID, err)
			}
			// make sure we do not override created at
			user.CreatedAt = existing.CreatedAt
		}

		data, err := json.Marshal(&user)
		if err != nil {
			return fmt.Errorf("marshal user for chatID=%d: %w", user.ChatID, err)
		}
		if err := b.Put(id, data); err != nil {
			return fmt.Errorf("put user for chatID=%d: %w", user.ChatID, err)
		}

		return nil
	})
}

// IncrementUserMessages bumps the message counter for the user inside a
// single write transaction so concurrent increments cannot interleave.
func (s *BoltDB) IncrementUserMessages(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(usersBucket))

		id := i64tob(chatID)
		data := b.Get(id)
		if data == nil {
			return fmt.Errorf("user with chatID=%d not found", chatID)
		}

		var user User
		if err := json.Unmarshal(data, &user); err != nil {
			return fmt.Errorf("unmarshal user for chatID=%d: %w", chatID, err)
		}

		user.Messages++

		updated, err := json.Marshal(&user)
		if err != nil {
			return fmt.Errorf("marshal user for chatID=%d: %w", chatID, err)
		}
		return b.Put(id, updated)
	})
}
