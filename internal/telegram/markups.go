package telegram

import (
	"strings"

	tb "gopkg.in/telebot.v3"
)

const (
	btnAddChannel    = "➕ Kanal qo‘shish"
	btnRemoveChannel = "➖ Kanal o‘chirish"
	btnListChannels  = "📋 Kanallar ro‘yxati"
	btnStats         = "👥 Statistika"
	btnBroadcast     = "📢 Hammaga xabar"
	btnBack          = "◀️ Orqaga"

	btnCheckSub = "✅ Tekshirish"
)

// markups aggregates the static keyboard markups used by the bot
type markups struct {
	admin *tb.ReplyMarkup
}

func newMarkups() *markups {
	admin := &tb.ReplyMarkup{ResizeKeyboard: true}
	admin.Reply(
		admin.Row(admin.Text(btnAddChannel), admin.Text(btnRemoveChannel)),
		admin.Row(admin.Text(btnListChannels)),
		admin.Row(admin.Text(btnStats), admin.Text(btnBroadcast)),
		admin.Row(admin.Text(btnBack)),
	)

	return &markups{
		admin: admin,
	}
}

// buildSubscribeMarkup creates the subscribe affordance: one link button per
// required channel plus a recheck button.
func buildSubscribeMarkup(channels []string) *tb.ReplyMarkup {
	markup := &tb.ReplyMarkup{}
	rows := make([]tb.Row, 0, len(channels)+1)

	for _, ch := range channels {
		url := "https://t.me/" + strings.TrimPrefix(ch, "@")
		rows = append(rows, markup.Row(markup.URL("🔗 "+ch, url)))
	}

	rows = append(rows, markup.Row(markup.Data(btnCheckSub, checkSubCallback)))
	markup.Inline(rows...)

	return markup
}
