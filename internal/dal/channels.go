package dal

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

const channelsListKey = "list"

// Channels are stored as a single ordered JSON list under one key. Insertion
// order is preserved so that listing and membership checks are deterministic.

func (s *BoltDB) GetChannels() ([]string, error) {
	var res []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(channelsBucket)).Get([]byte(channelsListKey))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &res)
	})

	return res, err
}

// AddChannel appends the channel to the list if it is not present already.
// Returns true if the channel was added. The read-modify-write cycle runs
// inside a single write transaction.
func (s *BoltDB) AddChannel(channel string) (bool, error) {
	added := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(channelsBucket))

		channels, err := readChannels(b)
		if err != nil {
			return err
		}

		for _, ch := range channels {
			if ch == channel {
				return nil
			}
		}

		added = true
		return writeChannels(b, append(channels, channel))
	})

	return added, err
}

// RemoveChannel removes the channel from the list if present. Returns true
// if the channel was removed.
func (s *BoltDB) RemoveChannel(channel string) (bool, error) {
	removed := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(channelsBucket))

		channels, err := readChannels(b)
		if err != nil {
			return err
		}

		rest := make([]string, 0, len(channels))
		for _, ch := range channels {
			if ch == channel {
				removed = true
				continue
			}
			rest = append(rest, ch)
		}

		if !removed {
			return nil
		}
		return writeChannels(b, rest)
	})

	return removed, err
}

func readChannels(b *bbolt.Bucket) ([]string, error) {
	data := b.Get([]byte(channelsListKey))
	if data == nil {
		return nil, nil
	}

	var res []string
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("unmarshal channels list: %w", err)
	}
	return res, nil
}

func writeChannels(b *bbolt.Bucket, channels []string) error {
	data, err := json.Marshal(channels)
	if err != nil {
		return fmt.Errorf("marshal channels list: %w", err)
	}
	if err := b.Put([]byte(channelsListKey), data); err != nil {
		return fmt.Errorf("put channels list: %w", err)
	}
	return nil
}
