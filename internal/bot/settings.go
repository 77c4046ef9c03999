package bot

import (
	"context"
	"strings"
	"time"

	"github.com/DanRulev/vocaquiz/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type SettingsSI interface {
	Settings(ctx context.Context, userID int64) models.Settings
	SetDifficulty(ctx context.Context, userID int64, difficulty models.Difficulty) (models.Settings, error)
	SetLanguage(ctx context.Context, userID int64, language models.Direction) (models.Settings, error)
}

var difficultyLabels = []struct {
	value models.Difficulty
	label string
}{
	{models.DifficultyEasy, "łatwy"},
	{models.DifficultyMedium, "średni"},
	{models.DifficultyHard, "trudny"},
}

var languageLabels = []struct {
	value models.Direction
	label string
}{
	{models.DirectionEnPl, "EN → PL"},
	{models.DirectionPlEn, "PL → EN"},
	{models.DirectionMixed, "mieszany"},
}

type SettingsT struct {
	bot     BotSender
	service SettingsSI
	timeout time.Duration
	log     *zap.Logger
}

func NewSettingsTAPI(bot BotSender, service SettingsSI, timeout time.Duration, log *zap.Logger) *SettingsT {
	return &SettingsT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *SettingsT) sendSettings(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	settings := t.service.Settings(ctx, userID)

	msg := tgbotapi.NewMessage(chatID, settingsText(settings))
	msg.ParseMode = "markdown"
	keyboard := settingsKeyboard(settings)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

func (t *SettingsT) handleSettingsCallbackQuery(query *tgbotapi.CallbackQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	chatID := query.Message.Chat.ID
	userID := query.From.ID
	data := query.Data

	var (
		settings models.Settings
		err      error
	)
	switch {
	case strings.HasPrefix(data, prefixDifficulty):
		settings, err = t.service.SetDifficulty(ctx, userID, models.Difficulty(strings.TrimPrefix(data, prefixDifficulty)))
	case strings.HasPrefix(data, prefixLanguage):
		settings, err = t.service.SetLanguage(ctx, userID, models.Direction(strings.TrimPrefix(data, prefixLanguage)))
	default:
		t.log.Warn("unknown settings callback", zap.String("data", data))
		return
	}
	if err != nil {
		t.log.Warn("failed to update settings", zap.Int64("user_id", userID), zap.String("data", data), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Nie udało się zapisać ustawień."))
		return
	}

	editMsg := tgbotapi.NewEditMessageTextAndMarkup(chatID, query.Message.MessageID, settingsText(settings), settingsKeyboard(settings))
	editMsg.ParseMode = "markdown"

	sendMessage(t.bot, t.log, editMsg)
}

func settingsText(s models.Settings) string {
	difficulty, language := string(s.Difficulty), string(s.Language)
	for _, d := range difficultyLabels {
		if d.value == s.Difficulty {
			difficulty = d.label
		}
	}
	for _, l := range languageLabels {
		if l.value == s.Language {
			language = l.label
		}
	}

	return "⚙️ *Ustawienia*\n\n" +
		"🎚 Poziom trudności: *" + difficulty + "*\n" +
		"🔀 Kierunek tłumaczenia: *" + language + "*"
}

func settingsKeyboard(s models.Settings) tgbotapi.InlineKeyboardMarkup {
	difficulties := make([]tgbotapi.InlineKeyboardButton, 0, len(difficultyLabels))
	for _, d := range difficultyLabels {
		label := d.label
		if d.value == s.Difficulty {
			label = "✅ " + label
		}
		difficulties = append(difficulties, tgbotapi.NewInlineKeyboardButtonData(label, prefixDifficulty+string(d.value)))
	}

	languages := make([]tgbotapi.InlineKeyboardButton, 0, len(languageLabels))
	for _, l := range languageLabels {
		label := l.label
		if l.value == s.Language {
			label = "✅ " + label
		}
		languages = append(languages, tgbotapi.NewInlineKeyboardButtonData(label, prefixLanguage+string(l.value)))
	}

	return tgbotapi.NewInlineKeyboardMarkup(difficulties, languages)
}
