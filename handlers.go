package main

import (
	"context"
	"errors"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"kinobot/internal/store"
)

var cmdRegistry *CommandRegistry

func init() {
	cmdRegistry = SetupCommandRegistry()
}

// handleMessage routes one inbound message: known commands go through
// the registry, plain text is treated as a code lookup. Unknown
// commands get no reply.
func handleMessage(bot BotAPI, msg *tgbotapi.Message) {
	if app == nil {
		slog.Error("App context is nil in handleMessage")
		return
	}
	if msg == nil || msg.From == nil {
		return
	}
	if msg.IsCommand() {
		cmdRegistry.Execute(app, bot, msg)
		return
	}
	if msg.Text != "" {
		handleCodeLookup(app, bot, msg)
	}
}

// handleCodeLookup answers a plain-text message from a verified user
// with the video stored under that code. Unverified users get no
// reply at all: only users who passed /start see lookup behavior.
func handleCodeLookup(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message) {
	if !ctx.Sessions.IsVerified(msg.From.ID) {
		return
	}

	video, err := ctx.Store.Get(context.Background(), msg.Text)
	if errors.Is(err, store.ErrNotFound) {
		sendPlain(bot, msg.Chat.ID, msgCodeNotFound)
		return
	}
	if err != nil {
		// storage failure aborts this one lookup, nothing more
		slog.Error("Video lookup failed", "err", err, "user", msg.From.ID)
		return
	}

	sendVideo(bot, msg.Chat.ID, video)
}
