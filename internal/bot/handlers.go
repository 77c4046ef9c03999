package bot

import (
	"errors"
	"strings"

	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/DanRulev/vocaquiz/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonCategoryQuiz  = "📚 Quiz z kategorii"
	ButtonRandomQuiz    = "🎲 Losowy quiz"
	ButtonDifficultQuiz = "🔥 Trudne słowa"
	ButtonFinalQuiz     = "🏆 Egzamin końcowy"
	ButtonFlashcards    = "🃏 Fiszki"
	ButtonProgress      = "📊 Mój postęp"
	ButtonSettings      = "⚙️ Ustawienia"
	ButtonHelp          = "ℹ️ Pomoc"
)

const (
	prefixCategoryQuiz = "cq_"
	prefixAnswer       = "qa_"
	dataQuizNext       = "quiz_next"
	dataQuizStop       = "quiz_stop"

	prefixDeck   = "fc_"
	dataCardPrev = "card_prev"
	dataCardFlip = "card_flip"
	dataCardNext = "card_next"
	dataCardMark = "card_mark"

	prefixDifficulty = "diff_"
	prefixLanguage   = "lang_"

	dataMainMenu = "main_menu"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "stats":
		t.quiz.sendQuizStats(message)
	case "bookmarks":
		t.cards.sendBookmarks(message)
	case "stop":
		if message.From != nil {
			t.quiz.stopQuiz(message.Chat.ID, message.From.ID)
		}
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Nieznana komenda. Użyj /start")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Cześć! Jestem botem do nauki angielskich słówek!\n\n" +
		"✨ Co potrafię:\n" +
		"• 📚 Quizy z kategorii i losowe\n" +
		"• 🔥 Powtórki trudnych słów\n" +
		"• 🏆 Egzamin końcowy na czas\n" +
		"• 🃏 Fiszki z zakładkami\n\n" +
		"Wybierz opcję z menu poniżej!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) showMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🏠 Menu główne:")
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonCategoryQuiz),
			tgbotapi.NewKeyboardButton(ButtonRandomQuiz),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonDifficultQuiz),
			tgbotapi.NewKeyboardButton(ButtonFinalQuiz),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonFlashcards),
			tgbotapi.NewKeyboardButton(ButtonProgress),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonSettings),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Dostępne komendy:
/start — uruchom bota
/help — ta wiadomość
/stats — twoje wyniki
/bookmarks — zapisane słowa
/stop — przerwij bieżący quiz

🎯 Quizy:
• "Quiz z kategorii" — 15 pytań, zaliczenie od 12
• "Losowy quiz" — 20 pytań ze wszystkich kategorii, zaliczenie od 70%
• "Trudne słowa" — słowa, z którymi masz problem (min. 5)
• "Egzamin końcowy" — 50 pytań w godzinę, po zaliczeniu 75% kategorii

✍️ Na pytania otwarte odpowiadaj zwykłą wiadomością.
⚙️ W ustawieniach zmienisz poziom trudności i kierunek tłumaczenia.
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID
	text := message.Text

	switch {
	case text == ButtonCategoryQuiz:
		t.quiz.sendCategories(message.Chat.ID)
	case text == ButtonRandomQuiz:
		t.quiz.startQuiz(message.Chat.ID, userID, models.QuizRandom, "")
	case text == ButtonDifficultQuiz:
		t.quiz.startQuiz(message.Chat.ID, userID, models.QuizDifficult, "")
	case text == ButtonFinalQuiz:
		t.quiz.startQuiz(message.Chat.ID, userID, models.QuizFinal, "")
	case text == ButtonFlashcards:
		t.cards.sendDecks(message.Chat.ID)
	case text == ButtonProgress:
		t.quiz.sendQuizStats(message)
	case text == ButtonSettings:
		t.settings.sendSettings(message.Chat.ID, userID)
	case text == ButtonHelp:
		t.handleHelpCommand(message)
	case t.quiz.awaitingAnswer(userID):
		t.quiz.answerText(message.Chat.ID, userID, text)

	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Nie rozumiem. Użyj przycisków poniżej.")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil || query.From == nil {
		t.log.Warn("callback without message", zap.String("callback_id", query.ID))
		return
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, prefixCategoryQuiz),
		strings.HasPrefix(data, prefixAnswer),
		data == dataQuizNext || data == dataQuizStop:
		t.quiz.handleQuizCallbackQuery(query)

	case strings.HasPrefix(data, prefixDeck), strings.HasPrefix(data, "card_"):
		t.cards.handleCardCallbackQuery(query)

	case strings.HasPrefix(data, prefixDifficulty), strings.HasPrefix(data, prefixLanguage):
		t.settings.handleSettingsCallbackQuery(query)

	case data == dataMainMenu:
		t.showMainMenu(query.Message.Chat.ID)

	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}

// userErrorText turns engine errors into something a user can act on.
func userErrorText(err error) string {
	var insufficient *service.InsufficientDataError
	switch {
	case errors.As(err, &insufficient):
		switch insufficient.QuizType {
		case models.QuizDifficult:
			return "🔥 Za mało trudnych słów. Rozwiąż więcej quizów, a pojawią się tutaj."
		case models.QuizFinal:
			return "🔒 Egzamin końcowy odblokujesz po zaliczeniu 75% kategorii."
		case "":
			return "📭 Tu nie ma jeszcze żadnych słów."
		}
		return "⚠️ Za mało danych, aby rozpocząć quiz."
	case errors.Is(err, service.ErrNoSession):
		return "Brak aktywnego quizu. Wybierz quiz z menu."
	case errors.Is(err, service.ErrEmptyAnswer):
		return "✍️ Odpowiedź nie może być pusta."
	case errors.Is(err, service.ErrInvalidState):
		return "Ta akcja nie jest teraz dostępna."
	case errors.Is(err, service.ErrUnknownCategory):
		return "Nieznana kategoria."
	case errors.Is(err, service.ErrUnknownOption):
		return "Nieznana odpowiedź. Wybierz jedną z opcji."
	}
	return "❌ Coś poszło nie tak. Spróbuj później."
}
