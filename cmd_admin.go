package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"kinobot/internal/code"
)

// Admin commands reply to nobody but configured admins: a non-admin
// invoking them gets complete silence, not an error.

type UploadCmd struct{}

func (c *UploadCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string) {
	if msg.From == nil || !ctx.Config.IsAdmin(msg.From.ID) {
		return
	}

	if msg.ReplyToMessage == nil || msg.ReplyToMessage.Video == nil {
		sendPlain(bot, msg.Chat.ID, msgUploadNeedsReply)
		return
	}
	if len(args) < 2 {
		sendPlain(bot, msg.Chat.ID, msgUploadUsage)
		return
	}

	rawCode := args[0]
	title := strings.Join(args[1:], " ")
	fileID := msg.ReplyToMessage.Video.FileID

	if err := ctx.Store.Put(context.Background(), rawCode, title, fileID); err != nil {
		slog.Error("Video upload failed", "err", err, "code", rawCode, "admin", msg.From.ID)
		return
	}
	sendPlain(bot, msg.Chat.ID, fmt.Sprintf(msgUploadOK, code.Normalize(rawCode), title))
}
func (c *UploadCmd) Description() string { return "Register a video under a code" }

type DeleteCmd struct{}

func (c *DeleteCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string) {
	if msg.From == nil || !ctx.Config.IsAdmin(msg.From.ID) {
		return
	}

	if len(args) != 1 {
		sendPlain(bot, msg.Chat.ID, msgDeleteUsage)
		return
	}

	removed, err := ctx.Store.Delete(context.Background(), args[0])
	if err != nil {
		slog.Error("Video delete failed", "err", err, "code", args[0], "admin", msg.From.ID)
		return
	}
	if removed {
		sendPlain(bot, msg.Chat.ID, fmt.Sprintf(msgDeleteOK, code.Normalize(args[0])))
	} else {
		sendPlain(bot, msg.Chat.ID, msgDeleteNotFound)
	}
}
func (c *DeleteCmd) Description() string { return "Remove a registered video" }

type StatusCmd struct{}

func (c *StatusCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string) {
	if msg.From == nil || !ctx.Config.IsAdmin(msg.From.ID) {
		return
	}
	sendMarkdown(bot, msg.Chat.ID, getStatusText(ctx))
}
func (c *StatusCmd) Description() string { return "Show bot diagnostics" }
