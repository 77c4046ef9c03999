package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/vocaquiz/internal/models"
	"go.uber.org/zap"
)

type CursorStore interface {
	Set(userID int64, cursor models.FlashcardCursor)
	Get(userID int64) (models.FlashcardCursor, bool)
	Delete(userID int64)
}

type FlashcardS struct {
	vocab    VocabularyI
	settings *SettingsS
	cursors  CursorStore
	log      *zap.Logger
}

func NewFlashcardService(vocab VocabularyI, settings *SettingsS, cursors CursorStore, log *zap.Logger) *FlashcardS {
	return &FlashcardS{
		vocab:    vocab,
		settings: settings,
		cursors:  cursors,
		log:      log,
	}
}

// OpenDeck starts browsing a category, or the bookmarks deck, from its first card.
func (f *FlashcardS) OpenDeck(ctx context.Context, userID int64, deck string) (models.Flashcard, error) {
	if _, _, err := f.deck(ctx, userID, deck); err != nil {
		return models.Flashcard{}, err
	}

	cursor := models.FlashcardCursor{Deck: deck}
	f.cursors.Set(userID, cursor)

	return f.card(ctx, userID, cursor)
}

func (f *FlashcardS) NextCard(ctx context.Context, userID int64) (models.Flashcard, error) {
	return f.move(ctx, userID, 1)
}

func (f *FlashcardS) PrevCard(ctx context.Context, userID int64) (models.Flashcard, error) {
	return f.move(ctx, userID, -1)
}

func (f *FlashcardS) FlipCard(ctx context.Context, userID int64) (models.Flashcard, error) {
	cursor, ok := f.cursors.Get(userID)
	if !ok {
		return models.Flashcard{}, ErrNoSession
	}

	cursor.Flipped = !cursor.Flipped
	f.cursors.Set(userID, cursor)

	return f.card(ctx, userID, cursor)
}

// ToggleCardBookmark bookmarks or unbookmarks the word on the current card.
func (f *FlashcardS) ToggleCardBookmark(ctx context.Context, userID int64) (models.Flashcard, error) {
	cursor, ok := f.cursors.Get(userID)
	if !ok {
		return models.Flashcard{}, ErrNoSession
	}

	card, err := f.card(ctx, userID, cursor)
	if err != nil {
		return models.Flashcard{}, err
	}

	bookmarked, err := f.settings.ToggleBookmark(ctx, userID, card.Word.English)
	if err != nil {
		return models.Flashcard{}, err
	}
	card.Bookmarked = bookmarked

	return card, nil
}

func (f *FlashcardS) move(ctx context.Context, userID int64, step int) (models.Flashcard, error) {
	cursor, ok := f.cursors.Get(userID)
	if !ok {
		return models.Flashcard{}, ErrNoSession
	}

	_, words, err := f.deck(ctx, userID, cursor.Deck)
	if err != nil {
		f.cursors.Delete(userID)
		return models.Flashcard{}, err
	}

	cursor.Index = ((cursor.Index+step)%len(words) + len(words)) % len(words)
	cursor.Flipped = false
	f.cursors.Set(userID, cursor)

	return f.card(ctx, userID, cursor)
}

func (f *FlashcardS) card(ctx context.Context, userID int64, cursor models.FlashcardCursor) (models.Flashcard, error) {
	name, words, err := f.deck(ctx, userID, cursor.Deck)
	if err != nil {
		return models.Flashcard{}, err
	}

	// the bookmarks deck shrinks when words are unbookmarked
	index := min(cursor.Index, len(words)-1)
	word := words[index]

	return models.Flashcard{
		Deck:       cursor.Deck,
		DeckName:   name,
		Index:      index,
		Total:      len(words),
		Word:       word,
		Flipped:    cursor.Flipped,
		Bookmarked: f.settings.IsBookmarked(ctx, userID, word.English),
	}, nil
}

func (f *FlashcardS) deck(ctx context.Context, userID int64, deck string) (string, []models.Word, error) {
	if deck == models.BookmarksDeck {
		words := f.bookmarkedWords(ctx, userID)
		if len(words) == 0 {
			return "", nil, &InsufficientDataError{Reason: "no bookmarked words"}
		}
		return "Zakładki", words, nil
	}

	c, ok := f.vocab.Category(deck)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownCategory, deck)
	}
	if len(c.Words) == 0 {
		return "", nil, &InsufficientDataError{Reason: "category has no words"}
	}

	return c.Name, c.Words, nil
}

func (f *FlashcardS) bookmarkedWords(ctx context.Context, userID int64) []models.Word {
	marked := make(map[string]bool)
	for _, b := range f.settings.Bookmarks(ctx, userID) {
		marked[strings.ToLower(b)] = true
	}

	words := make([]models.Word, 0, len(marked))
	for _, w := range f.vocab.Words() {
		key := strings.ToLower(w.English)
		if marked[key] {
			words = append(words, w)
			delete(marked, key)
		}
	}

	return words
}
