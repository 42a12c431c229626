package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"kinobot/internal/store"
)

func main() {
	cfg, err := loadConfig("config.json")
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	setupLogger(cfg.LogFile)
	defer closeLogger()

	st, err := store.NewVideoStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("❌ Error opening video store: %v", err)
	}
	defer st.Close()

	app = InitApp(cfg, st)

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("❌ Error starting bot: %v", err)
	}
	slog.Info("Bot started", "username", bot.Self.UserName,
		"channels", len(cfg.MandatoryChannels), "admins", len(cfg.AdminIDs))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.PollTimeoutSeconds
	updates := bot.GetUpdatesChan(u)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			go func(msg *tgbotapi.Message) {
				defer func() {
					if r := recover(); r != nil {
						slog.Error("Panic recovered in handler", "err", r, "stack", string(debug.Stack()))
					}
				}()
				handleMessage(bot, msg)
			}(update.Message)
		case <-sigChan:
			slog.Info("Shutting down...")
			bot.StopReceivingUpdates()
			return
		}
	}
}
