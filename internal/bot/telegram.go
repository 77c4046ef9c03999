package bot

import (
	"context"
	"time"

	"github.com/DanRulev/vocaquiz/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api      *tgbotapi.BotAPI
	bot      BotSender
	quiz     *QuizT
	cards    *FlashcardT
	settings *SettingsT
	log      *zap.Logger
}

// NewBot connects to the Bot API. Debug output is on in development.
func NewBot(botToken, env string) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = env == "development"

	return bot, nil
}

func NewTelegramAPI(bot *tgbotapi.BotAPI, service ServiceI, timeout time.Duration, log *zap.Logger) *TelegramAPI {
	t := newTelegramAPI(bot, service, timeout, log)
	t.api = bot
	return t
}

func newTelegramAPI(bot BotSender, service ServiceI, timeout time.Duration, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:      bot,
		quiz:     NewQuizTAPI(bot, service, timeout, log),
		cards:    NewFlashcardTAPI(bot, service, timeout, log),
		settings: NewSettingsTAPI(bot, service, timeout, log),
		log:      log,
	}
}

// Start polls for updates until ctx is done.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)

	t.log.Info("bot started", zap.String("username", t.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			t.log.Info("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

// Notifier sends engine notifications to the user's private chat.
type Notifier struct {
	bot BotSender
	log *zap.Logger
}

func NewNotifier(bot BotSender, log *zap.Logger) *Notifier {
	return &Notifier{bot: bot, log: log}
}

var severityIcons = map[models.Severity]string{
	models.SeverityInfo:    "ℹ️",
	models.SeveritySuccess: "✅",
	models.SeverityWarning: "⚠️",
	models.SeverityError:   "❌",
}

func (n *Notifier) Notify(userID int64, message string, severity models.Severity) {
	icon, ok := severityIcons[severity]
	if !ok {
		icon = severityIcons[models.SeverityInfo]
	}
	sendMessage(n.bot, n.log, tgbotapi.NewMessage(userID, icon+" "+message))
}

// escapeMarkdown makes text safe outside of markdown entities.
func escapeMarkdown(text string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, text)
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Error("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("message sent", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
