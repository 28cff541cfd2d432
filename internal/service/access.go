package service

import (
	"fmt"
	"log/slog"
)

type ChannelsStore interface {
	GetChannels() ([]string, error)
	AddChannel(channel string) (bool, error)
	RemoveChannel(channel string) (bool, error)
}

type MembershipChecker interface {
	IsMember(channel string, userID int64) bool
}

// Access is the subscription gate: a user may use the bot only while they
// are a member of every configured channel. An empty channel set disables
// the gate (default open).
type Access struct {
	store      ChannelsStore
	membership MembershipChecker

	log *slog.Logger
}

func NewAccess(store ChannelsStore, membership MembershipChecker, log *slog.Logger) *Access {
	return &Access{
		store:      store,
		membership: membership,
		log:        log.With("component", "service").With("service", "access"),
	}
}

// IsSubscribed evaluates channels in stored order and short-circuits on the
// first one the user is not a confirmed member of.
func (s *Access) IsSubscribed(userID int64) (bool, error) {
	channels, err := s.store.GetChannels()
	if err != nil {
		return false, fmt.Errorf("get channels: %w", err)
	}

	if len(channels) == 0 {
		return true, nil
	}

	for _, ch := range channels {
		if !s.membership.IsMember(ch, userID) {
			s.log.Debug("user is not a member", "userID", userID, "channel", ch)
			return false, nil
		}
	}

	return true, nil
}
