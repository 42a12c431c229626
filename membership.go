package main

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// memberStatusOK reports whether a chat-member status counts as
// being in the channel.
func memberStatusOK(status string) bool {
	switch status {
	case "member", "creator", "administrator":
		return true
	}
	return false
}

// checkMembership reports whether the user is currently a member (or
// admin/owner) of every mandatory channel, querying the channels in
// configured order and stopping at the first failure. A failed query
// counts as not being a member of that channel, so the check fails
// closed when the bot cannot see into a channel.
func checkMembership(bot BotAPI, channels []int64, userID int64) bool {
	for _, channelID := range channels {
		member, err := bot.GetChatMember(tgbotapi.GetChatMemberConfig{
			ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
				ChatID: channelID,
				UserID: userID,
			},
		})
		if err != nil {
			slog.Warn("Chat member lookup failed", "channel", channelID, "user", userID, "err", err)
			return false
		}
		if !memberStatusOK(member.Status) {
			return false
		}
	}
	return true
}
