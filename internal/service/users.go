package service

import (
	"fmt"
	"log/slog"

	"github.com/albot-uz/albot/internal/dal"
)

type UsersStore interface {
	CountUsers() (int, error)
	GetUser(chatID int64) (dal.User, bool, error)
	GetAllUsers() ([]dal.User, error)
	PutUser(user dal.User) error
	IncrementUserMessages(chatID int64) error
}

type Users struct {
	store UsersStore

	log *slog.Logger
}

func NewUsers(store UsersStore, log *slog.Logger) *Users {
	return &Users{
		store: store,
		log:   log.With("component", "service").With("service", "users"),
	}
}

// Register records the user on their first inbound event. Re-registering an
// existing user is a no-op.
func (s *Users) Register(chatID int64, firstName string) error {
	_, exists, err := s.store.GetUser(chatID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.store.PutUser(dal.User{ChatID: chatID, FirstName: firstName}); err != nil {
		return fmt.Errorf("put user: %w", err)
	}

	s.log.Info("new user registered", "chatID", chatID)
	return nil
}

func (s *Users) Count() (int, error) {
	count, err := s.store.CountUsers()
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (s *Users) IncrementMessages(chatID int64) error {
	if err := s.store.IncrementUserMessages(chatID); err != nil {
		return fmt.Errorf("increment user messages: %w", err)
	}
	return nil
}
