package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	ErrChannelExists        = errors.New("channel already added")
	ErrChannelNotFound      = errors.New("channel not found")
	ErrInvalidChannelHandle = errors.New("invalid channel handle")
)

// Channels manages the set of required channels. Handles are canonical
// @-prefixed usernames; the stored order is the insertion order.
type Channels struct {
	store ChannelsStore

	log *slog.Logger
}

func NewChannels(store ChannelsStore, log *slog.Logger) *Channels {
	return &Channels{
		store: store,
		log:   log.With("component", "service").With("service", "channels"),
	}
}

func (s *Channels) List() ([]string, error) {
	channels, err := s.store.GetChannels()
	if err != nil {
		return nil, fmt.Errorf("get channels: %w", err)
	}
	return channels, nil
}

func (s *Channels) Add(handle string) error {
	handle = strings.TrimSpace(handle)
	if err := validateHandle(handle); err != nil {
		return err
	}

	added, err := s.store.AddChannel(handle)
	if err != nil {
		return fmt.Errorf("add channel %q: %w", handle, err)
	}
	if !added {
		return fmt.Errorf("%w: %s", ErrChannelExists, handle)
	}

	s.log.Info("channel added", "channel", handle)
	return nil
}

func (s *Channels) Remove(handle string) error {
	handle = strings.TrimSpace(handle)

	removed, err := s.store.RemoveChannel(handle)
	if err != nil {
		return fmt.Errorf("remove channel %q: %w", handle, err)
	}
	if !removed {
		return fmt.Errorf("%w: %s", ErrChannelNotFound, handle)
	}

	s.log.Info("channel removed", "channel", handle)
	return nil
}

func validateHandle(handle string) error {
	if handle == "" || !strings.HasPrefix(handle, "@") || len(handle) < 2 {
		return fmt.Errorf("%w: %q", ErrInvalidChannelHandle, handle)
	}
	if strings.ContainsAny(handle, " \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidChannelHandle, handle)
	}
	return nil
}
