package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/vocaquiz/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type FlashcardSI interface {
	Categories() []models.Category
	OpenDeck(ctx context.Context, userID int64, deck string) (models.Flashcard, error)
	NextCard(ctx context.Context, userID int64) (models.Flashcard, error)
	PrevCard(ctx context.Context, userID int64) (models.Flashcard, error)
	FlipCard(ctx context.Context, userID int64) (models.Flashcard, error)
	ToggleCardBookmark(ctx context.Context, userID int64) (models.Flashcard, error)
	Bookmarks(ctx context.Context, userID int64) []string
}

type FlashcardT struct {
	bot     BotSender
	service FlashcardSI
	timeout time.Duration
	log     *zap.Logger
}

func NewFlashcardTAPI(bot BotSender, service FlashcardSI, timeout time.Duration, log *zap.Logger) *FlashcardT {
	return &FlashcardT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *FlashcardT) sendDecks(chatID int64) {
	keyboard := categoryKeyboard(t.service.Categories(), prefixDeck)
	keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⭐ Zakładki", prefixDeck+models.BookmarksDeck),
	))

	msg := tgbotapi.NewMessage(chatID, "🃏 Wybierz talię fiszek:")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

func (t *FlashcardT) sendBookmarks(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	bookmarks := t.service.Bookmarks(ctx, message.From.ID)
	if len(bookmarks) == 0 {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "⭐ Nie masz jeszcze zakładek. Dodasz je w fiszkach."))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⭐ Zakładki (%d):\n", len(bookmarks)))
	for _, b := range bookmarks {
		sb.WriteString("• ")
		sb.WriteString(b)
		sb.WriteString("\n")
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, sb.String())
	keyboard := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🃏 Przeglądaj", prefixDeck+models.BookmarksDeck),
	))
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

func (t *FlashcardT) handleCardCallbackQuery(query *tgbotapi.CallbackQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	chatID := query.Message.Chat.ID
	userID := query.From.ID
	data := query.Data

	if strings.HasPrefix(data, prefixDeck) {
		card, err := t.service.OpenDeck(ctx, userID, strings.TrimPrefix(data, prefixDeck))
		if err != nil {
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userErrorText(err)))
			return
		}

		msg := tgbotapi.NewMessage(chatID, cardText(card))
		msg.ParseMode = "markdown"
		keyboard := cardKeyboard(card)
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, t.log, msg)
		return
	}

	var (
		card models.Flashcard
		err  error
	)
	switch data {
	case dataCardPrev:
		card, err = t.service.PrevCard(ctx, userID)
	case dataCardNext:
		card, err = t.service.NextCard(ctx, userID)
	case dataCardFlip:
		card, err = t.service.FlipCard(ctx, userID)
	case dataCardMark:
		card, err = t.service.ToggleCardBookmark(ctx, userID)
	default:
		t.log.Warn("unknown card callback", zap.String("data", data))
		return
	}
	if err != nil {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userErrorText(err)))
		return
	}

	keyboard := cardKeyboard(card)
	editMsg := tgbotapi.NewEditMessageTextAndMarkup(chatID, query.Message.MessageID, cardText(card), keyboard)
	editMsg.ParseMode = "markdown"

	sendMessage(t.bot, t.log, editMsg)
}

func cardText(card models.Flashcard) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("🃏 %s (%d/%d)", escapeMarkdown(card.DeckName), card.Index+1, card.Total))
	if card.Bookmarked {
		sb.WriteString(" ⭐")
	}
	sb.WriteString("\n\n🇬🇧 ")
	sb.WriteString(escapeMarkdown(card.Word.English))
	if card.Word.Type != "" {
		sb.WriteString(" (")
		sb.WriteString(escapeMarkdown(card.Word.Type))
		sb.WriteString(")")
	}

	if !card.Flipped {
		return sb.String()
	}

	sb.WriteString("\n🇵🇱 ")
	sb.WriteString(escapeMarkdown(card.Word.Polish))

	if ex := card.Word.Examples; ex != nil {
		sb.WriteString("\n\n💬 ")
		sb.WriteString(escapeMarkdown(ex.English))
		sb.WriteString("\n💬 ")
		sb.WriteString(escapeMarkdown(ex.Polish))
	}
	if len(card.Word.Synonyms) > 0 {
		sb.WriteString("\n\n≈ ")
		sb.WriteString(escapeMarkdown(strings.Join(card.Word.Synonyms, ", ")))
	}
	if len(card.Word.Antonyms) > 0 {
		sb.WriteString("\n≠ ")
		sb.WriteString(escapeMarkdown(strings.Join(card.Word.Antonyms, ", ")))
	}

	return sb.String()
}

func cardKeyboard(card models.Flashcard) tgbotapi.InlineKeyboardMarkup {
	flip := "🔄 Pokaż"
	if card.Flipped {
		flip = "🔄 Ukryj"
	}
	mark := "☆ Zapisz"
	if card.Bookmarked {
		mark = "⭐ Usuń z zakładek"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️", dataCardPrev),
			tgbotapi.NewInlineKeyboardButtonData(flip, dataCardFlip),
			tgbotapi.NewInlineKeyboardButtonData("▶️", dataCardNext),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(mark, dataCardMark),
		),
	)
}
