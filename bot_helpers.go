package main

import (
	"fmt"
	"html"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"kinobot/internal/store"
)

// safeSend sends a Telegram message and logs any error
func safeSend(bot BotAPI, msg tgbotapi.Chattable) {
	if bot == nil {
		return
	}
	if _, err := bot.Send(msg); err != nil {
		slog.Error("Telegram send failed", "err", err)
	}
}

func sendPlain(bot BotAPI, chatID int64, text string) {
	safeSend(bot, tgbotapi.NewMessage(chatID, text))
}

func sendMarkdown(bot BotAPI, chatID int64, text string) {
	if bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := bot.Send(msg); err != nil {
		slog.Error("Error sending Markdown message. Retrying as plain text", "err", err)
		msg.ParseMode = ""
		safeSend(bot, msg)
	}
}

// sendVideo delivers a stored video with an HTML caption carrying the
// title and the normalized code.
func sendVideo(bot BotAPI, chatID int64, v *store.Video) {
	video := tgbotapi.NewVideo(chatID, tgbotapi.FileID(v.FileID))
	video.Caption = fmt.Sprintf("📹 <b>%s</b>\nCode: <code>%s</code>", html.EscapeString(v.Title), v.Code)
	video.ParseMode = tgbotapi.ModeHTML
	safeSend(bot, video)
}

// joinKeyboard builds one join button per mandatory channel, each
// pointing at that channel.
func joinKeyboard(channels []int64) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(channels))
	for _, channelID := range channels {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(joinButtonLabel, channelLink(channelID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// channelLink converts an internal channel ID (-100xxxxxxxxxx) into
// the t.me link for that channel.
func channelLink(channelID int64) string {
	s := strconv.FormatInt(channelID, 10)
	s = strings.TrimPrefix(s, "-100")
	s = strings.TrimPrefix(s, "-")
	return "https://t.me/c/" + s
}
