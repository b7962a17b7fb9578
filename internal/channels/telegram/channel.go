// Package telegram runs a long-polling Telegram channel that feeds the
// same assistant pipeline as the webhook. Chat ids map to sender ids as
// "tg:<chatID>" so Telegram state shares nothing with webhook senders.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/nextlevelbuilder/dayclaw/internal/agent"
)

// telegramMaxMessageLen is the safe limit per message. Telegram's hard
// limit is 4096; 4000 leaves headroom.
const telegramMaxMessageLen = 4000

const senderIDPrefix = "tg:"

// Channel consumes Telegram updates and sends replies.
type Channel struct {
	bot       *telego.Bot
	assistant *agent.Assistant
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewChannel(token string, assistant *agent.Assistant) (*Channel, error) {
	bot, err := telego.NewBot(token, telego.WithDefaultLogger(false, true))
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Channel{bot: bot, assistant: assistant}, nil
}

func (c *Channel) Name() string { return "telegram" }

// Start begins long polling. Each update runs to completion in the poll
// goroutine; one request per sender is the expected workload.
func (c *Channel) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	updates, err := c.bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		cancel()
		return fmt.Errorf("start long polling: %w", err)
	}

	go func() {
		defer close(c.done)
		for update := range updates {
			c.handleUpdate(ctx, update)
		}
	}()

	slog.Info("telegram: channel started")
	return nil
}

// Stop halts polling and waits for the consumer to drain.
func (c *Channel) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	slog.Info("telegram: channel stopped")
}

func (c *Channel) handleUpdate(ctx context.Context, update telego.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	senderID := senderIDPrefix + strconv.FormatInt(msg.Chat.ID, 10)
	reply, err := c.assistant.HandleMessage(ctx, senderID, normalizeCommand(msg.Text))
	if err != nil {
		slog.Error("telegram: request failed", "sender", senderID, "error", err)
		reply = "I hit a snag handling that one. Give me a moment and try again."
	}
	if reply == "" {
		return
	}

	if err := c.sendChunked(ctx, msg.Chat.ID, reply); err != nil {
		slog.Warn("telegram: send failed", "chat", msg.Chat.ID, "error", err)
	}
}

// SendText implements scheduler.Sender for "tg:" sender ids.
func (c *Channel) SendText(ctx context.Context, senderID, text string) error {
	raw, ok := strings.CutPrefix(senderID, senderIDPrefix)
	if !ok {
		return fmt.Errorf("not a telegram sender: %s", senderID)
	}
	chatID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("bad telegram chat id %q: %w", raw, err)
	}
	return c.sendChunked(ctx, chatID, text)
}

func (c *Channel) sendChunked(ctx context.Context, chatID int64, text string) error {
	for _, chunk := range chunkText(text, telegramMaxMessageLen) {
		if _, err := c.bot.SendMessage(ctx, tu.Message(tu.ID(chatID), chunk)); err != nil {
			return err
		}
	}
	return nil
}

// normalizeCommand strips the @botname suffix Telegram appends to group
// commands, so "/plan@dayclaw_bot add x" routes like "/plan add x".
func normalizeCommand(text string) string {
	if !strings.HasPrefix(text, "/") {
		return text
	}
	head := strings.SplitN(text, " ", 2)
	cmd := strings.SplitN(head[0], "@", 2)[0]
	if len(head) == 2 {
		return cmd + " " + head[1]
	}
	return cmd
}

func chunkText(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}
	var chunks []string
	for len(text) > limit {
		cut := limit
		// Prefer breaking on a newline inside the window.
		if idx := strings.LastIndexByte(text[:limit], '\n'); idx > limit/2 {
			cut = idx
		}
		chunks = append(chunks, text[:cut])
		text = strings.TrimLeft(text[cut:], "\n")
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
