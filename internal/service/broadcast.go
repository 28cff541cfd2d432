package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

type (
	TelegramClient interface {
		SendMessage(context.Context, string, string) error
	}

	Clock interface {
		Now() time.Time
		Sleep(d time.Duration)
	}

	// Broadcast delivers a message to every known user. Individual send
	// failures are logged and counted, never retried, and never abort the
	// remaining recipients.
	Broadcast struct {
		users    UsersStore
		telegram TelegramClient
		clock    Clock

		delay time.Duration
		log   *slog.Logger
	}
)

func NewBroadcast(users UsersStore, telegram TelegramClient, clock Clock, delay time.Duration, log *slog.Logger) *Broadcast {
	return &Broadcast{
		users:    users,
		telegram: telegram,
		clock:    clock,
		delay:    delay,
		log:      log.With("component", "service").With("service", "broadcast"),
	}
}

// Send returns how many deliveries succeeded out of the total user count.
// The error is non-nil only when the user list cannot be loaded.
func (s *Broadcast) Send(ctx context.Context, text string) (sent, total int, err error) {
	users, err := s.users.GetAllUsers()
	if err != nil {
		return 0, 0, fmt.Errorf("get all users: %w", err)
	}

	start := s.clock.Now()
	for i, u := range users {
		if i > 0 {
			// fixed pause between sends to stay under telegram rate limits
			s.clock.Sleep(s.delay)
		}

		if err := s.telegram.SendMessage(ctx, strconv.FormatInt(u.ChatID, 10), text); err != nil {
			s.log.Warn("broadcast send failed", "chatID", u.ChatID, "error", err)
			continue
		}
		sent++
	}

	s.log.Info("broadcast finished",
		"sent", sent,
		"total", len(users),
		"took", s.clock.Now().Sub(start))

	return sent, len(users), nil
}
