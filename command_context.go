package main

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Command is the interface that all bot commands must implement.
// args holds the whitespace-split words following the command name.
type Command interface {
	Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string)
	Description() string
}

// CommandRegistry holds the map of commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, cmd Command) {
	r.commands[name] = cmd
}

// Execute runs a command if found. Unregistered commands are left
// unhandled so the router can ignore them silently.
func (r *CommandRegistry) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message) bool {
	if msg == nil {
		return false
	}
	cmdName := msg.Command()
	if cmdName == "" {
		return false
	}
	cmd, ok := r.commands[cmdName]
	if !ok {
		return false
	}
	cmd.Execute(ctx, bot, msg, strings.Fields(msg.CommandArguments()))
	return true
}
