package main

import (
	"path/filepath"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"kinobot/internal/store"
)

const (
	testAdminID   = int64(99)
	testUserID    = int64(7)
	testChannelA  = int64(-1001234567890)
	testChannelB  = int64(-1009876543210)
	testVideoFile = "BAACAgIAAxkBAAM-test-file-id"
)

type fakeBot struct {
	sent        []tgbotapi.Chattable
	requests    []tgbotapi.Chattable
	members     map[int64]string // channel ID -> status for GetChatMember
	memberErrs  map[int64]error
	memberCalls []int64
	nextID      int
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.sent = append(b.sent, c)
	b.nextID++
	return tgbotapi.Message{MessageID: b.nextID, Chat: &tgbotapi.Chat{ID: 1}}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{}, nil
}

func (b *fakeBot) GetChatMember(c tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	b.memberCalls = append(b.memberCalls, c.ChatID)
	if err := b.memberErrs[c.ChatID]; err != nil {
		return tgbotapi.ChatMember{}, err
	}
	status, ok := b.members[c.ChatID]
	if !ok {
		status = "left"
	}
	return tgbotapi.ChatMember{Status: status}, nil
}

// memberEverywhere makes the queried user a member of both test channels.
func (b *fakeBot) memberEverywhere() {
	b.members = map[int64]string{testChannelA: "member", testChannelB: "member"}
}

func newTestAppContext(t *testing.T) *AppContext {
	t.Helper()
	st, err := store.NewVideoStore(filepath.Join(t.TempDir(), "videos.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cfg := &Config{
		BotToken:          "test-token",
		MandatoryChannels: []int64{testChannelA, testChannelB},
		AdminIDs:          []int64{testAdminID},
		DatabasePath:      "videos.db",
	}
	return &AppContext{Config: cfg, Store: st, Sessions: NewSessionStore()}
}

func swapApp(t *testing.T, ctx *AppContext) {
	t.Helper()
	prev := app
	app = ctx
	t.Cleanup(func() { app = prev })
}

// textMessage builds a plain-text message from the given user.
func textMessage(userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: userID},
		From: &tgbotapi.User{ID: userID},
	}
}

// commandMessage builds a message whose first word is a bot command.
func commandMessage(userID int64, text string) *tgbotapi.Message {
	cmdLen := len(text)
	if i := strings.Index(text, " "); i >= 0 {
		cmdLen = i
	}
	msg := textMessage(userID, text)
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}}
	return msg
}

// sentTexts collects the text of every plain message the fake bot sent.
func sentTexts(b *fakeBot) []string {
	var texts []string
	for _, c := range b.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			texts = append(texts, m.Text)
		}
	}
	return texts
}

func TestHandleMessageNilIgnored(t *testing.T) {
	swapApp(t, newTestAppContext(t))

	bot := &fakeBot{}
	handleMessage(bot, nil)
	if len(bot.sent) != 0 {
		t.Fatalf("expected no reply for nil message")
	}
}

func TestHandleMessageNoFromIgnored(t *testing.T) {
	swapApp(t, newTestAppContext(t))

	bot := &fakeBot{}
	handleMessage(bot, &tgbotapi.Message{Text: "x42", Chat: &tgbotapi.Chat{ID: 1}})
	if len(bot.sent) != 0 {
		t.Fatalf("expected no reply for message without sender")
	}
}

func TestUnknownCommandIgnored(t *testing.T) {
	swapApp(t, newTestAppContext(t))

	bot := &fakeBot{}
	handleMessage(bot, commandMessage(testUserID, "/frobnicate"))
	if len(bot.sent) != 0 {
		t.Fatalf("unknown command should produce no reply, got %d", len(bot.sent))
	}
}
