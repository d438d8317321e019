package telegram

import (
	"context"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"salary-aggregation-service/internal/salaries/core/dialog"
	"salary-aggregation-service/internal/salaries/core/domain"
)

// API is the part of *tgbotapi.BotAPI the bot uses.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot routes chat updates to one dialog.Conversation per chat.
type Bot struct {
	api         API
	agg         dialog.Aggregator
	pollTimeout int

	mu       sync.Mutex
	sessions map[int64]*dialog.Conversation
}

func NewBot(api API, agg dialog.Aggregator, pollTimeout int) *Bot {
	return &Bot{
		api:         api,
		agg:         agg,
		pollTimeout: pollTimeout,
		sessions:    make(map[int64]*dialog.Conversation),
	}
}

// Run long-polls updates until ctx is done. Updates are handled one at a
// time, which keeps every conversation single-threaded.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(ctx, upd)
		}
	}
}

func (b *Bot) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	switch {
	case upd.CallbackQuery != nil:
		b.handleCallback(upd.CallbackQuery)
	case upd.Message != nil:
		b.handleMessage(ctx, upd.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	conv := b.session(msg.Chat.ID)

	var reply dialog.Reply
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			reply = conv.Start()
		default:
			reply = conv.Help()
		}
	} else {
		reply = conv.HandleText(ctx, msg.Text)
	}

	b.send(msg.Chat.ID, reply)
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("telegram: answer callback %s: %v", cb.ID, err)
	}

	if cb.Message == nil || cb.Message.Chat == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	reply := b.session(chatID).SelectGranularity(cb.Data)
	b.send(chatID, reply)
}

func (b *Bot) session(chatID int64) *dialog.Conversation {
	b.mu.Lock()
	defer b.mu.Unlock()

	conv, ok := b.sessions[chatID]
	if !ok {
		conv = dialog.NewConversation(b.agg)
		b.sessions[chatID] = conv
	}
	return conv
}

func (b *Bot) send(chatID int64, reply dialog.Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if markup := keyboardMarkup(reply.Keyboard); markup != nil {
		msg.ReplyMarkup = markup
	}

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("telegram: send to chat %d: %v", chatID, err)
	}
}

func keyboardMarkup(k dialog.Keyboard) any {
	switch k {
	case dialog.KeyboardMainMenu:
		kb := tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(dialog.TextSalaryMenu)),
		)
		kb.InputFieldPlaceholder = dialog.TextMenuPlaceholder
		return kb
	case dialog.KeyboardGroupTypes:
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Месяц", string(domain.Month))),
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("День", string(domain.Day))),
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Час", string(domain.Hour))),
		)
	default:
		return nil
	}
}
