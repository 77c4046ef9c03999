package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Frequency string

const (
	FrequencyHigh   Frequency = "high"
	FrequencyMedium Frequency = "medium"
	FrequencyLow    Frequency = "low"
)

type Example struct {
	English string `json:"english" validate:"required"`
	Polish  string `json:"polish" validate:"required"`
}

type Word struct {
	English    string     `json:"english" validate:"required"`
	Polish     string     `json:"polish" validate:"required"`
	Type       string     `json:"type,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Frequency  Frequency  `json:"frequency,omitempty" validate:"omitempty,oneof=high medium low"`
	Examples   *Example   `json:"examples,omitempty" validate:"omitempty"`
	Synonyms   []string   `json:"synonyms,omitempty"`
	Antonyms   []string   `json:"antonyms,omitempty"`
}

// Level returns the word difficulty, medium when untagged.
func (w Word) Level() Difficulty {
	if w.Difficulty == "" {
		return DifficultyMedium
	}
	return w.Difficulty
}

type Category struct {
	Key   string `json:"-"`
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon,omitempty"`
	Words []Word `json:"words" validate:"dive"`
}

// BookmarksDeck is the flashcard deck built from the user's bookmarks.
const BookmarksDeck = "bookmarks"

type FlashcardCursor struct {
	Deck    string
	Index   int
	Flipped bool
}

type Flashcard struct {
	Deck       string
	DeckName   string
	Index      int
	Total      int
	Word       Word
	Flipped    bool
	Bookmarked bool
}
