package main

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type StartCmd struct{}

// Execute runs the membership check and transitions the session to
// verified on success. Re-running /start while already verified runs
// the full check again.
func (c *StartCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string) {
	if msg.From == nil {
		return
	}

	if checkMembership(bot, ctx.Config.MandatoryChannels, msg.From.ID) {
		ctx.Sessions.MarkVerified(msg.From.ID)
		sendPlain(bot, msg.Chat.ID, msgVerified)
		return
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, msgJoinPrompt)
	reply.ReplyMarkup = joinKeyboard(ctx.Config.MandatoryChannels)
	safeSend(bot, reply)
}
func (c *StartCmd) Description() string { return "Verify channel membership" }

type HelpCmd struct{}

func (c *HelpCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string) {
	if msg.From == nil {
		return
	}
	text := msgHelp
	if ctx.Config.IsAdmin(msg.From.ID) {
		text += msgHelpAdmin
	}
	sendPlain(bot, msg.Chat.ID, text)
}
func (c *HelpCmd) Description() string { return "Show usage" }
