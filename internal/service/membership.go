package service

import (
	"log/slog"

	tb "gopkg.in/telebot.v3"
)

// ChatMemberClient is the subset of the telegram bot API used for membership
// lookups. Satisfied by *tb.Bot.
type ChatMemberClient interface {
	ChatMemberOf(chat, user tb.Recipient) (*tb.ChatMember, error)
}

// Membership answers "is this user a member of that channel". Any lookup
// failure is treated as "not a member": the gate built on top of this must
// fail closed.
type Membership struct {
	client ChatMemberClient

	log *slog.Logger
}

func NewMembership(client ChatMemberClient, log *slog.Logger) *Membership {
	return &Membership{
		client: client,
		log:    log.With("component", "service").With("service", "membership"),
	}
}

func (s *Membership) IsMember(channel string, userID int64) bool {
	member, err := s.client.ChatMemberOf(channelRecipient(channel), &tb.User{ID: userID})
	if err != nil {
		s.log.Warn("membership check failed, treating as not a member",
			"channel", channel,
			"userID", userID,
			"error", err)
		return false
	}

	switch member.Role {
	case tb.Creator, tb.Administrator, tb.Member:
		return true
	default:
		return false
	}
}

// channelRecipient addresses a channel by its @username handle.
type channelRecipient string

func (r channelRecipient) Recipient() string {
	return string(r)
}
