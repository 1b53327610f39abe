// Package telegram adapts the dispatcher to the Telegram Bot API. It owns
// the reply keyboard and message routing; all conversation logic lives in
// the bot package.
package telegram

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/dkenzhe/college-bot/internal/bot"
	"github.com/dkenzhe/college-bot/pkg/config"
)

// Bot wraps the telebot client around the dispatcher.
type Bot struct {
	client   *tele.Bot
	dispatch *bot.Dispatcher
	menu     *tele.ReplyMarkup
	logger   *zap.Logger
}

// New builds the telebot client, the reply keyboard and the handler wiring.
func New(cfg config.TelegramConfig, dispatch *bot.Dispatcher, logger *zap.Logger) (*Bot, error) {
	client, err := tele.NewBot(tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
	})
	if err != nil {
		return nil, err
	}

	b := &Bot{
		client:   client,
		dispatch: dispatch,
		menu:     buildMenu(),
		logger:   logger,
	}

	client.Handle("/start", b.onMessage)
	client.Handle("/help", b.onMessage)
	client.Handle(tele.OnText, b.onMessage)

	return b, nil
}

// buildMenu lays the button labels out two per row.
func buildMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	labels := bot.MenuLabels()

	var rows []tele.Row
	for i := 0; i < len(labels); i += 2 {
		if i+1 < len(labels) {
			rows = append(rows, menu.Row(menu.Text(labels[i]), menu.Text(labels[i+1])))
		} else {
			rows = append(rows, menu.Row(menu.Text(labels[i])))
		}
	}
	menu.Reply(rows...)
	return menu
}

func (b *Bot) onMessage(c tele.Context) error {
	reply := b.dispatch.HandleMessage(context.Background(), c.Chat().ID, c.Text())
	if reply.ShowMenu {
		return c.Send(reply.Text, b.menu)
	}
	return c.Send(reply.Text)
}

// Start begins long polling and blocks until Stop is called.
func (b *Bot) Start() {
	b.logger.Info("telegram polling started")
	b.client.Start()
}

// Stop terminates long polling.
func (b *Bot) Stop() {
	b.client.Stop()
	b.logger.Info("telegram polling stopped")
}
