package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/DanRulev/vocaquiz/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type QuizSI interface {
	Categories() []models.Category
	StartQuiz(ctx context.Context, userID int64, quizType models.QuizType, category string) (models.QuizProgress, error)
	CurrentQuestion(ctx context.Context, userID int64) (models.QuizProgress, error)
	AwaitingAnswer(userID int64) bool
	SubmitAnswer(ctx context.Context, userID int64, answer string) (models.Feedback, error)
	SubmitChoice(ctx context.Context, userID int64, choice models.Choice) (models.Feedback, error)
	NextQuestion(ctx context.Context, userID int64) (models.QuizProgress, *models.QuizResult, error)
	AbandonQuiz(userID int64)
	StatsReport(ctx context.Context, userID int64) string
}

type QuizT struct {
	bot     BotSender
	service QuizSI
	timeout time.Duration
	log     *zap.Logger
}

func NewQuizTAPI(bot BotSender, service QuizSI, timeout time.Duration, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *QuizT) sendCategories(chatID int64) {
	categories := t.service.Categories()
	if len(categories) == 0 {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "📭 Brak kategorii."))
		return
	}

	msg := tgbotapi.NewMessage(chatID, "📚 Wybierz kategorię:")
	keyboard := categoryKeyboard(categories, prefixCategoryQuiz)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) startQuiz(chatID, userID int64, quizType models.QuizType, category string) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	progress, err := t.service.StartQuiz(ctx, userID, quizType, category)
	if err != nil {
		t.log.Info("failed to start quiz", zap.Int64("user_id", userID), zap.String("type", string(quizType)), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userErrorText(err)))
		return
	}

	intro := fmt.Sprintf("🚀 %s\nPytań: %d", escapeMarkdown(progress.CategoryName), progress.Total)
	if progress.Remaining > 0 {
		intro += fmt.Sprintf("\n⏱ Limit czasu: %d min", int(progress.Remaining.Minutes()))
	}
	msg := tgbotapi.NewMessage(chatID, intro)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, t.log, msg)

	t.sendQuestion(chatID, progress)
}

func (t *QuizT) sendQuestion(chatID int64, progress models.QuizProgress) {
	msg := tgbotapi.NewMessage(chatID, questionText(progress))
	msg.ParseMode = "markdown"

	keyboard := questionKeyboard(progress)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) awaitingAnswer(userID int64) bool {
	return t.service.AwaitingAnswer(userID)
}

func (t *QuizT) answerText(chatID, userID int64, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	feedback, err := t.service.SubmitAnswer(ctx, userID, text)
	if err != nil {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userErrorText(err)))
		return
	}

	msg := tgbotapi.NewMessage(chatID, feedbackText(feedback))
	msg.ParseMode = "markdown"
	if keyboard, ok := feedbackKeyboard(feedback); ok {
		msg.ReplyMarkup = &keyboard
	}

	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) sendQuizStats(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	msg := tgbotapi.NewMessage(message.Chat.ID, t.service.StatsReport(ctx, message.From.ID))
	msg.ParseMode = "markdown"

	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) stopQuiz(chatID, userID int64) {
	t.service.AbandonQuiz(userID)
	sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "⏹ Quiz przerwany. Wynik nie został zapisany."))
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	data := query.Data
	chatID := query.Message.Chat.ID
	userID := query.From.ID

	switch {
	case strings.HasPrefix(data, prefixCategoryQuiz):
		t.startQuiz(chatID, userID, models.QuizCategory, strings.TrimPrefix(data, prefixCategoryQuiz))
	case strings.HasPrefix(data, prefixAnswer):
		t.processChoice(query)
	case data == dataQuizNext:
		t.nextQuestion(query)
	case data == dataQuizStop:
		t.stopQuiz(chatID, userID)
	default:
		t.log.Warn("unknown quiz callback", zap.String("data", data))
	}
}

func (t *QuizT) processChoice(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	userID := query.From.ID

	choice, ok := parseChoice(query.Data)
	if !ok {
		t.log.Warn("malformed answer callback", zap.String("data", query.Data))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	feedback, err := t.service.SubmitChoice(ctx, userID, choice)
	if err != nil {
		if errors.Is(err, service.ErrInvalidState) {
			t.log.Debug("stale answer ignored", zap.Int64("user_id", userID), zap.String("data", query.Data))
			return
		}
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userErrorText(err)))
		return
	}

	editMsg := tgbotapi.NewEditMessageText(
		chatID,
		query.Message.MessageID,
		fmt.Sprintf("%s\n\n%s", escapeMarkdown(query.Message.Text), feedbackText(feedback)),
	)
	editMsg.ParseMode = "markdown"
	if keyboard, ok := feedbackKeyboard(feedback); ok {
		editMsg.ReplyMarkup = &keyboard
	}

	sendMessage(t.bot, t.log, editMsg)
}

func (t *QuizT) nextQuestion(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	userID := query.From.ID

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	progress, result, err := t.service.NextQuestion(ctx, userID)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidState) {
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userErrorText(err)))
		}
		return
	}

	if result != nil {
		msg := tgbotapi.NewMessage(chatID, resultText(*result))
		msg.ParseMode = "markdown"
		keyboard := resultKeyboard(*result)
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, t.log, msg)
		return
	}

	t.sendQuestion(chatID, progress)
}

func questionText(p models.QuizProgress) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("❓ *Pytanie %d/%d*", p.Index+1, p.Total))
	if p.Remaining > 0 {
		sb.WriteString(fmt.Sprintf("  ⏱ %s", formatDuration(p.Remaining)))
	}
	sb.WriteString("\n\n")

	q := p.Question
	switch {
	case q.Type == models.QuestionSentenceTranslation && q.Direction == models.DirectionPlEn:
		sb.WriteString("Przetłumacz zdanie na angielski:")
	case q.Type == models.QuestionSentenceTranslation:
		sb.WriteString("Przetłumacz zdanie na polski:")
	case q.Direction == models.DirectionPlEn:
		sb.WriteString("Jak po angielsku:")
	default:
		sb.WriteString("Jak po polsku:")
	}
	sb.WriteString("\n👉 ")
	sb.WriteString(escapeMarkdown(q.Prompt))

	if q.Type != models.QuestionMultipleChoice {
		sb.WriteString("\n\n✍️ Wpisz odpowiedź w wiadomości.")
	}

	return sb.String()
}

func questionKeyboard(p models.QuizProgress) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	for i, option := range p.Question.Options {
		choice := models.Choice{SessionID: p.SessionID, Question: p.Index, Option: i}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(option, choiceData(choice)))

		if len(row) == 2 {
			buttons = append(buttons, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 2)
		}
	}

	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏹ Przerwij", dataQuizStop),
	))

	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

// choiceData encodes a choice as qa_<session>_<question>_<option>.
func choiceData(c models.Choice) string {
	return fmt.Sprintf("%s%s_%d_%d", prefixAnswer, c.SessionID, c.Question, c.Option)
}

func parseChoice(data string) (models.Choice, bool) {
	parts := strings.Split(strings.TrimPrefix(data, prefixAnswer), "_")
	if len(parts) != 3 || parts[0] == "" {
		return models.Choice{}, false
	}

	question, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.Choice{}, false
	}
	option, err := strconv.Atoi(parts[2])
	if err != nil {
		return models.Choice{}, false
	}

	return models.Choice{SessionID: parts[0], Question: question, Option: option}, true
}

func feedbackText(f models.Feedback) string {
	if f.TimedOut {
		text := "⏰ *Czas minął!* Odpowiedź nie została zaliczona."
		if f.Result != nil {
			text += "\n\n" + resultText(*f.Result)
		}
		return text
	}

	status := "✅ *Dobrze!*"
	if !f.Record.IsCorrect {
		status = "❌ *Źle.* Poprawna odpowiedź: " + escapeMarkdown(f.Record.CorrectAnswer)
	}

	return fmt.Sprintf("%s\nWynik: %d/%d", status, f.Score, f.Index+1)
}

func feedbackKeyboard(f models.Feedback) (tgbotapi.InlineKeyboardMarkup, bool) {
	if f.TimedOut {
		if f.Result == nil {
			return tgbotapi.InlineKeyboardMarkup{}, false
		}
		return resultKeyboard(*f.Result), true
	}

	label := "➡️ Dalej"
	if f.Last {
		label = "🏁 Zakończ"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(label, dataQuizNext)),
	), true
}

func resultText(r models.QuizResult) string {
	var sb strings.Builder

	sb.WriteString("🏁 *Quiz zakończony*\n\n")
	sb.WriteString(escapeMarkdown(r.CategoryName))
	sb.WriteString(fmt.Sprintf("\n🎯 Wynik: *%d/%d* (%d%%)", r.Score, r.Total, r.Percentage))
	sb.WriteString(fmt.Sprintf("\n📏 Próg zaliczenia: %d", r.PassScore))
	sb.WriteString(fmt.Sprintf("\n⏱ Czas: %s", formatDuration(r.TimeSpent)))

	if r.Passed {
		sb.WriteString("\n\n🎉 Zaliczony!")
	} else {
		sb.WriteString("\n\n📚 Niezaliczony. Spróbuj jeszcze raz!")
	}

	return sb.String()
}

func resultKeyboard(r models.QuizResult) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 2)
	if r.QuizType == models.QuizCategory {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Jeszcze raz", prefixCategoryQuiz+r.Category),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🏠 Menu", dataMainMenu),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func categoryKeyboard(categories []models.Category, prefix string) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	for _, c := range categories {
		label := strings.TrimSpace(c.Icon + " " + c.Name)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, prefix+c.Key))

		if len(row) == 2 {
			buttons = append(buttons, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 2)
		}
	}

	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
