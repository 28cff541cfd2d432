package telegram

import (
	"fmt"
	"log/slog"

	tb "gopkg.in/telebot.v3"
)

// Bot wires the dispatcher into the telebot instance. Updates arrive through
// the webhook HTTP handler (see webhook.go), not a poller.
type Bot struct {
	bot   *tb.Bot
	token string

	handler *Handler

	log *slog.Logger
}

func NewBot(token string, log *slog.Logger) (*Bot, error) {
	botLog := log.With("component", "bot")

	bot, err := tb.NewBot(tb.Settings{
		Token:     token,
		ParseMode: tb.ModeHTML,
		OnError: func(err error, c tb.Context) {
			if c != nil && c.Sender() != nil {
				botLog.Error("handler failed", "error", err, "chatID", c.Sender().ID)
				return
			}
			botLog.Error("handler failed", "error", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot:   bot,
		token: token,

		log: botLog,
	}, nil
}

// Client exposes the underlying telebot instance for collaborators that need
// raw API access (membership lookups).
func (b *Bot) Client() *tb.Bot {
	return b.bot
}

func (b *Bot) Register(handler *Handler) {
	b.handler = handler

	b.bot.Handle("/start", handler.Start)
	b.bot.Handle("/admin", handler.AdminPanel)

	b.bot.Handle(tb.OnText, handler.Text)
	b.bot.Handle(tb.OnCallback, handler.Callback)
}
