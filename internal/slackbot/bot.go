// Package slackbot runs the orchestrator as a Slack bot over Socket Mode.
// App mentions and direct messages become conversation turns.
package slackbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"go.uber.org/zap"

	"github.com/neves/zen-bridge/internal/orchestrator"
)

// Config holds Slack bot configuration
type Config struct {
	BotToken string // xoxb-...
	AppToken string // xapp-... (for Socket Mode)
	Debug    bool
}

// Bot bridges Slack events to the orchestrator.
type Bot struct {
	config       Config
	client       *slack.Client
	socketClient *socketmode.Client
	orch         *orchestrator.Orchestrator
	logger       *zap.Logger
	botUserID    string
}

// NewBot creates a new Slack bot bound to an orchestrator.
func NewBot(cfg Config, orch *orchestrator.Orchestrator, logger *zap.Logger) (*Bot, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("slack bot token is required")
	}
	if cfg.AppToken == "" {
		return nil, fmt.Errorf("slack app token is required for Socket Mode")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := slack.New(
		cfg.BotToken,
		slack.OptionDebug(cfg.Debug),
		slack.OptionAppLevelToken(cfg.AppToken),
	)

	socketClient := socketmode.New(
		client,
		socketmode.OptionDebug(cfg.Debug),
	)

	bot := &Bot{
		config:       cfg,
		client:       client,
		socketClient: socketClient,
		orch:         orch,
		logger:       logger,
	}

	authTest, err := client.AuthTest()
	if err != nil {
		return nil, fmt.Errorf("auth test failed: %w", err)
	}
	bot.botUserID = authTest.UserID
	logger.Info("slack bot authenticated", zap.String("bot_user", bot.botUserID))

	return bot, nil
}

// Run processes events until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	go b.handleEvents(ctx)
	return b.socketClient.RunContext(ctx)
}

func (b *Bot) handleEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-b.socketClient.Events:
			if evt.Type != socketmode.EventTypeEventsAPI {
				continue
			}
			eventsAPIEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
			if !ok {
				continue
			}
			b.socketClient.Ack(*evt.Request)

			if eventsAPIEvent.Type == slackevents.CallbackEvent {
				b.handleCallbackEvent(ctx, eventsAPIEvent)
			}
		}
	}
}

func (b *Bot) handleCallbackEvent(ctx context.Context, event slackevents.EventsAPIEvent) {
	switch ev := event.InnerEvent.Data.(type) {
	case *slackevents.AppMentionEvent:
		text := strings.TrimSpace(strings.Replace(ev.Text, fmt.Sprintf("<@%s>", b.botUserID), "", 1))
		b.respond(ctx, ev.Channel, ev.TimeStamp, text)
	case *slackevents.MessageEvent:
		// DMs only; channel traffic requires a mention.
		if ev.ChannelType != "im" || ev.BotID != "" || ev.User == b.botUserID {
			return
		}
		b.respond(ctx, ev.Channel, ev.TimeStamp, strings.TrimSpace(ev.Text))
	}
}

func (b *Bot) respond(ctx context.Context, channel, threadTS, text string) {
	if text == "" {
		b.post(channel, threadTS, "Ask me to query or insert data, e.g. `query the orders table`.")
		return
	}

	if text == "/clear" {
		b.orch.ClearHistory()
		b.post(channel, threadTS, "Conversation cleared.")
		return
	}
	if text == "/tools" {
		names := b.orch.ToolNames()
		if len(names) == 0 {
			b.post(channel, threadTS, "No tools registered.")
			return
		}
		b.post(channel, threadTS, "Registered tools: "+strings.Join(names, ", "))
		return
	}

	reply := b.orch.ProcessRequest(ctx, text)
	b.post(channel, threadTS, reply)
}

func (b *Bot) post(channel, threadTS, text string) {
	_, _, err := b.client.PostMessage(
		channel,
		slack.MsgOptionText(text, false),
		slack.MsgOptionTS(threadTS),
	)
	if err != nil {
		b.logger.Warn("slack post failed", zap.Error(err))
	}
}
