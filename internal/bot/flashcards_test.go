package bot

import (
	"testing"
	"time"

	mock_bot "github.com/DanRulev/vocaquiz/internal/bot/mock"
	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/DanRulev/vocaquiz/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFlashcardTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI)) (*FlashcardT, *mock_bot.MockBot) {
	t.Helper()

	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService)
	}

	return NewFlashcardTAPI(mockBot, mockService, time.Second, zap.NewNop()), mockBot
}

func dogCard(flipped, bookmarked bool) models.Flashcard {
	return models.Flashcard{
		Deck:     "animals",
		DeckName: "Zwierzęta",
		Index:    2,
		Total:    16,
		Word: models.Word{
			English:  "dog",
			Polish:   "pies",
			Type:     "noun",
			Examples: &models.Example{English: "The dog barks.", Polish: "Pies szczeka."},
		},
		Flipped:    flipped,
		Bookmarked: bookmarked,
	}
}

func TestFlashcardT_sendDecks(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cardsT, mb := newFlashcardTMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().Categories().Return([]models.Category{
			{Key: "animals", Name: "Zwierzęta", Icon: "🐾"},
			{Key: "food", Name: "Jedzenie", Icon: "🍎"},
			{Key: "home", Name: "Dom"},
		})
	})

	cardsT.sendDecks(123)

	require.Len(t, mb.SentMessages, 1)
	msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Equal(t, []string{"fc_animals", "fc_food", "fc_home", "fc_bookmarks"}, inlineData(t, msg.ReplyMarkup))

	keyboard := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
	assert.Equal(t, "🐾 Zwierzęta", keyboard.InlineKeyboard[0][0].Text)
	assert.Equal(t, "Dom", keyboard.InlineKeyboard[1][0].Text)
}

func TestFlashcardT_handleCardCallbackQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       string
		f          func(*mock_bot.MockServiceI)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "open deck sends a new card",
			data: "fc_animals",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().OpenDeck(gomock.Any(), int64(456), "animals").Return(dogCard(false, false), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "🃏 Zwierzęta (3/16)\n\n🇬🇧 dog (noun)", msg.Text)
				assert.Equal(t, []string{dataCardPrev, dataCardFlip, dataCardNext, dataCardMark}, inlineData(t, msg.ReplyMarkup))
			},
		},
		{
			name: "empty bookmarks deck",
			data: "fc_bookmarks",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().OpenDeck(gomock.Any(), int64(456), models.BookmarksDeck).
					Return(models.Flashcard{}, &service.InsufficientDataError{Reason: "no bookmarked words"})
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "📭 Tu nie ma jeszcze żadnych słów.", msg.Text)
			},
		},
		{
			name: "flip edits the card",
			data: dataCardFlip,
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().FlipCard(gomock.Any(), int64(456)).Return(dogCard(true, true), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				edit, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				require.True(t, ok)
				assert.Equal(t, "🃏 Zwierzęta (3/16) ⭐\n\n🇬🇧 dog (noun)\n🇵🇱 pies\n\n💬 The dog barks.\n💬 Pies szczeka.", edit.Text)
				assert.Equal(t, "🔄 Ukryj", edit.ReplyMarkup.InlineKeyboard[0][1].Text)
				assert.Equal(t, "⭐ Usuń z zakładek", edit.ReplyMarkup.InlineKeyboard[1][0].Text)
			},
		},
		{
			name: "next",
			data: dataCardNext,
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().NextCard(gomock.Any(), int64(456)).Return(dogCard(false, false), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				_, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.True(t, ok)
			},
		},
		{
			name: "prev without an open deck",
			data: dataCardPrev,
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().PrevCard(gomock.Any(), int64(456)).Return(models.Flashcard{}, service.ErrNoSession)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				_, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.True(t, ok)
			},
		},
		{
			name: "bookmark",
			data: dataCardMark,
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().ToggleCardBookmark(gomock.Any(), int64(456)).Return(dogCard(false, true), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				edit := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, edit.Text, "⭐")
			},
		},
		{
			name: "unknown",
			data: "card_shuffle",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cardsT, mb := newFlashcardTMock(t, ctrl, tt.f)
			cardsT.handleCardCallbackQuery(callback(tt.data))

			tt.assertFunc(t, mb)
		})
	}
}

func TestFlashcardT_sendBookmarks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		bookmarks  []string
		assertFunc func(*testing.T, tgbotapi.MessageConfig)
	}{
		{
			name: "empty",
			assertFunc: func(t *testing.T, msg tgbotapi.MessageConfig) {
				assert.Contains(t, msg.Text, "Nie masz jeszcze zakładek")
				assert.Nil(t, msg.ReplyMarkup)
			},
		},
		{
			name:      "listed",
			bookmarks: []string{"cat", "dog"},
			assertFunc: func(t *testing.T, msg tgbotapi.MessageConfig) {
				assert.Equal(t, "⭐ Zakładki (2):\n• cat\n• dog\n", msg.Text)
				assert.Equal(t, []string{"fc_bookmarks"}, inlineData(t, msg.ReplyMarkup))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cardsT, mb := newFlashcardTMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Bookmarks(gomock.Any(), int64(456)).Return(tt.bookmarks)
			})

			cardsT.sendBookmarks(&tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}, From: &tgbotapi.User{ID: 456}})

			require.Len(t, mb.SentMessages, 1)
			tt.assertFunc(t, mb.SentMessages[0].(tgbotapi.MessageConfig))
		})
	}
}
