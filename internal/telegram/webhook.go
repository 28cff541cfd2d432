package telegram

import (
	"encoding/json"
	"fmt"
	"net/http"

	tb "gopkg.in/telebot.v3"
)

const livenessMsg = "AL-Bot ishlayapti!"

// Routes exposes the webhook endpoint and a liveness probe. The webhook path
// contains the bot token, matching what is registered with setWebhook.
func (b *Bot) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /"+b.token, b.handleUpdate)
	mux.HandleFunc("GET /{$}", b.handleIndex)
	return mux
}

func (b *Bot) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var upd tb.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		b.log.Warn("failed to decode update", "error", err)
		http.Error(w, "cannot parse update", http.StatusBadRequest)
		return
	}

	if err := b.process(upd); err != nil {
		b.log.Error("failed to process update", "error", err, "updateID", upd.ID)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// process dispatches the update synchronously. Handler panics are contained
// here so one malformed update cannot take the server down.
func (b *Bot) process(upd tb.Update) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	b.bot.ProcessUpdate(upd)
	return nil
}

func (b *Bot) handleIndex(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte(livenessMsg))
}
