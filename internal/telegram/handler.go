package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tb "gopkg.in/telebot.v3"

	"github.com/albot-uz/albot/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/services.go . AccessService,UsersService,ChannelsService,BroadcastService,CompletionService

const genericErrorMsg = "Xatolik yuz berdi. Birozdan so‘ng urinib ko‘ring."

const (
	msgWelcome            = "🤖 Salom! Men AL-botman. Menga yozishingiz yoki guruhlarda ishlatishingiz mumkin."
	msgSubscribeRequired  = "❌ Botdan foydalanish uchun quyidagi kanallarga obuna bo‘ling:"
	msgSubscribeFirst     = "❌ Iltimos, oldin obuna bo‘ling:"
	msgSubConfirmed       = "✅ Obuna tasdiqlandi! Endi foydalanishingiz mumkin."
	msgStillNotSubscribed = "❌ Hali ham obuna bo‘lmadingiz."
	msgGroupGreeting      = "👋 Salom %s!"

	msgAdminPanel          = "🔐 Admin panel:"
	msgChannelsList        = "📋 Kanallar:\n"
	msgNoChannels          = "📋 Hozircha kanal qo‘shilmagan."
	msgPromptAddChannel    = "➕ Kanal username kiriting (@ bilan):"
	msgPromptRemoveChannel = "➖ O‘chirish uchun kanal username kiriting:"
	msgPromptBroadcast     = "📢 Yuboriladigan xabar matnini kiriting:"
	msgChannelAdded        = "✅ %s qo‘shildi."
	msgChannelRemoved      = "❌ %s o‘chirildi."
	msgChannelInvalid      = "⚠️ Kanal username noto‘g‘ri. @ bilan kiriting."
	msgChannelExists       = "⚠️ Bu kanal allaqachon qo‘shilgan."
	msgChannelNotFound     = "⚠️ Bunday kanal topilmadi."
	msgStats               = "👥 Foydalanuvchilar soni: %d"
	msgBroadcastDone       = "📢 Xabar %d / %d foydalanuvchiga yuborildi."
)

const checkSubCallback = "check_sub"

type (
	AccessService interface {
		IsSubscribed(userID int64) (bool, error)
	}

	UsersService interface {
		Register(chatID int64, firstName string) error
		Count() (int, error)
		IncrementMessages(chatID int64) error
	}

	ChannelsService interface {
		List() ([]string, error)
		Add(handle string) error
		Remove(handle string) error
	}

	BroadcastService interface {
		Send(ctx context.Context, text string) (sent, total int, err error)
	}

	CompletionService interface {
		Complete(ctx context.Context, prompt string) string
	}
)

// adminAction enumerates the fixed admin menu actions. Inbound admin text is
// resolved through adminActions instead of string branching.
type adminAction int

const (
	actionListChannels adminAction = iota + 1
	actionAddChannel
	actionRemoveChannel
	actionStats
	actionBroadcast
	actionBack
)

var adminActions = map[string]adminAction{
	btnListChannels:  actionListChannels,
	btnAddChannel:    actionAddChannel,
	btnRemoveChannel: actionRemoveChannel,
	btnStats:         actionStats,
	btnBroadcast:     actionBroadcast,
	btnBack:          actionBack,
}

type Handler struct {
	access     AccessService
	users      UsersService
	channels   ChannelsService
	broadcast  BroadcastService
	completion CompletionService

	flow    *FlowTracker
	adminID int64

	markups *markups

	log *slog.Logger
}

func NewHandler(
	access AccessService,
	users UsersService,
	channels ChannelsService,
	broadcast BroadcastService,
	completion CompletionService,
	adminID int64,
	log *slog.Logger,
) *Handler {
	return &Handler{
		access:     access,
		users:      users,
		channels:   channels,
		broadcast:  broadcast,
		completion: completion,
		flow:       NewFlowTracker(),
		adminID:    adminID,
		markups:    newMarkups(),
		log:        log.With("component", "handler"),
	}
}

func (h *Handler) Start(c tb.Context) error {
	if handled, err := h.consumePending(c); handled {
		return err
	}

	sender := c.Sender()
	h.log.Debug("start handler called", "chatID", sender.ID)

	if err := h.users.Register(sender.ID, sender.FirstName); err != nil {
		h.log.Error("failed to register user",
			"error", err,
			"chatID", sender.ID)
		return h.sendOrDelete(c, genericErrorMsg, nil)
	}

	subscribed, err := h.access.IsSubscribed(sender.ID)
	if err != nil {
		h.log.Error("failed to check subscription",
			"error", err,
			"chatID", sender.ID)
		return h.sendOrDelete(c, genericErrorMsg, nil)
	}

	if !subscribed {
		return h.sendSubscribeAffordance(c, msgSubscribeRequired)
	}

	return h.sendOrDelete(c, msgWelcome, nil)
}

func (h *Handler) Text(c tb.Context) error {
	if handled, err := h.consumePending(c); handled {
		return err
	}

	sender := c.Sender()

	if sender.ID == h.adminID {
		if action, ok := adminActions[strings.TrimSpace(c.Text())]; ok {
			return h.runAdminAction(c, action)
		}
	}

	if chat := c.Chat(); chat != nil && (chat.Type == tb.ChatGroup || chat.Type == tb.ChatSuperGroup) {
		// free text in groups gets a greeting, never the completion relay
		return c.Reply(fmt.Sprintf(msgGroupGreeting, sender.FirstName))
	}

	if err := h.users.Register(sender.ID, sender.FirstName); err != nil {
		h.log.Error("failed to register user",
			"error", err,
			"chatID", sender.ID)
		return h.sendOrDelete(c, genericErrorMsg, nil)
	}

	subscribed, err := h.access.IsSubscribed(sender.ID)
	if err != nil {
		h.log.Error("failed to check subscription",
			"error", err,
			"chatID", sender.ID)
		return h.sendOrDelete(c, genericErrorMsg, nil)
	}

	if !subscribed {
		return h.sendSubscribeAffordance(c, msgSubscribeFirst)
	}

	reply := h.completion.Complete(context.Background(), c.Text())

	if err := h.users.IncrementMessages(sender.ID); err != nil {
		h.log.Warn("failed to increment user messages",
			"error", err,
			"chatID", sender.ID)
	}

	return h.sendOrDelete(c, reply, nil)
}

// AdminPanel handles the /admin command. Non-admin senders are ignored
// without a reply so the command stays invisible to ordinary users.
func (h *Handler) AdminPanel(c tb.Context) error {
	if c.Sender().ID != h.adminID {
		return nil
	}
	return h.sendOrDelete(c, msgAdminPanel, h.markups.admin)
}

func (h *Handler) Callback(c tb.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.log.Debug("callback router called with nil callback")
		return nil
	}

	chatID := c.Sender().ID
	h.log.Debug("callback received",
		"chatID", chatID,
		"data", callback.Data,
		"unique", callback.Unique)

	// Respond to callback first to remove loading state
	if err := c.Respond(); err != nil {
		h.log.Warn("failed to respond to callback", "error", err, "chatID", chatID)
	}

	data := callback.Data
	if len(data) > 0 && data[0] == '\f' {
		data = data[1:]
	}

	switch data {
	case checkSubCallback:
		subscribed, err := h.access.IsSubscribed(chatID)
		if err != nil {
			h.log.Error("failed to recheck subscription",
				"error", err,
				"chatID", chatID)
			return h.sendOrDelete(c, genericErrorMsg, nil)
		}
		if !subscribed {
			return h.sendSubscribeAffordance(c, msgStillNotSubscribed)
		}
		return h.sendOrDelete(c, msgSubConfirmed, nil)

	default:
		h.log.Debug("no handler matched for callback", "data", data)
		return nil
	}
}

// consumePending completes a pending admin workflow step with the current
// message. Returns true when the event was consumed by a continuation and no
// further routing must happen.
func (h *Handler) consumePending(c tb.Context) (bool, error) {
	chat := c.Chat()
	if chat == nil {
		return false, nil
	}

	cont, ok := h.flow.ConsumeFor(chat.ID, c.Sender().ID)
	if !ok {
		return false, nil
	}

	h.log.Debug("consuming continuation",
		"chatID", chat.ID,
		"step", cont.Step)

	switch cont.Step {
	case StepAddChannel:
		return true, h.addChannelStep(c)
	case StepRemoveChannel:
		return true, h.removeChannelStep(c)
	case StepBroadcast:
		return true, h.broadcastStep(c)
	default:
		h.log.Warn("unknown continuation step", "step", cont.Step)
		return true, nil
	}
}

func (h *Handler) runAdminAction(c tb.Context, action adminAction) error {
	switch action {
	case actionListChannels:
		channels, err := h.channels.List()
		if err != nil {
			h.log.Error("failed to list channels", "error", err)
			return h.sendOrDelete(c, genericErrorMsg, nil)
		}
		if len(channels) == 0 {
			return h.sendOrDelete(c, msgNoChannels, h.markups.admin)
		}
		return h.sendOrDelete(c, msgChannelsList+strings.Join(channels, "\n"), h.markups.admin)

	case actionAddChannel:
		h.flow.Register(c.Chat().ID, Continuation{Step: StepAddChannel, AdminID: c.Sender().ID})
		return h.sendOrDelete(c, msgPromptAddChannel, nil)

	case actionRemoveChannel:
		h.flow.Register(c.Chat().ID, Continuation{Step: StepRemoveChannel, AdminID: c.Sender().ID})
		return h.sendOrDelete(c, msgPromptRemoveChannel, nil)

	case actionStats:
		count, err := h.users.Count()
		if err != nil {
			h.log.Error("failed to count users", "error", err)
			return h.sendOrDelete(c, genericErrorMsg, nil)
		}
		return h.sendOrDelete(c, fmt.Sprintf(msgStats, count), h.markups.admin)

	case actionBroadcast:
		h.flow.Register(c.Chat().ID, Continuation{Step: StepBroadcast, AdminID: c.Sender().ID})
		return h.sendOrDelete(c, msgPromptBroadcast, nil)

	case actionBack:
		return h.sendOrDelete(c, msgAdminPanel, h.markups.admin)

	default:
		h.log.Warn("unknown admin action", "action", action)
		return nil
	}
}

func (h *Handler) addChannelStep(c tb.Context) error {
	handle := strings.TrimSpace(c.Text())

	err := h.channels.Add(handle)
	switch {
	case err == nil:
		return h.sendOrDelete(c, fmt.Sprintf(msgChannelAdded, handle), h.markups.admin)
	case errors.Is(err, service.ErrInvalidChannelHandle):
		return h.sendOrDelete(c, msgChannelInvalid, h.markups.admin)
	case errors.Is(err, service.ErrChannelExists):
		return h.sendOrDelete(c, msgChannelExists, h.markups.admin)
	default:
		h.log.Error("failed to add channel", "error", err, "channel", handle)
		return h.sendOrDelete(c, genericErrorMsg, nil)
	}
}

func (h *Handler) removeChannelStep(c tb.Context) error {
	handle := strings.TrimSpace(c.Text())

	err := h.channels.Remove(handle)
	switch {
	case err == nil:
		return h.sendOrDelete(c, fmt.Sprintf(msgChannelRemoved, handle), h.markups.admin)
	case errors.Is(err, service.ErrChannelNotFound):
		return h.sendOrDelete(c, msgChannelNotFound, h.markups.admin)
	default:
		h.log.Error("failed to remove channel", "error", err, "channel", handle)
		return h.sendOrDelete(c, genericErrorMsg, nil)
	}
}

func (h *Handler) broadcastStep(c tb.Context) error {
	sent, total, err := h.broadcast.Send(context.Background(), c.Text())
	if err != nil {
		h.log.Error("failed to broadcast", "error", err)
		return h.sendOrDelete(c, genericErrorMsg, nil)
	}
	return h.sendOrDelete(c, fmt.Sprintf(msgBroadcastDone, sent, total), h.markups.admin)
}

func (h *Handler) sendSubscribeAffordance(c tb.Context, message string) error {
	channels, err := h.channels.List()
	if err != nil {
		h.log.Error("failed to list channels for affordance", "error", err)
		return h.sendOrDelete(c, genericErrorMsg, nil)
	}
	return h.sendOrDelete(c, message, buildSubscribeMarkup(channels))
}

// sendOrDelete deletes the previous message for callbacks and sends a new one
func (h *Handler) sendOrDelete(c tb.Context, text string, markup *tb.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Delete(); err != nil {
			h.log.Warn("failed to delete message",
				"error", err,
				"chatID", c.Sender().ID)
		}
	}

	return c.Send(text, markup)
}
