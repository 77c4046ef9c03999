package service

import (
	"unicode/utf8"

	"github.com/DanRulev/vocaquiz/internal/models"
)

const (
	distractorCount     = 3
	distractorMinLength = 2
	enPlShare           = 0.7
)

type typeShare struct {
	qType models.QuestionType
	share float64
}

var typeDistribution = map[models.Difficulty][]typeShare{
	models.DifficultyEasy: {
		{models.QuestionMultipleChoice, 0.8},
		{models.QuestionTextInput, 0.2},
	},
	models.DifficultyMedium: {
		{models.QuestionMultipleChoice, 0.6},
		{models.QuestionTextInput, 0.4},
	},
	models.DifficultyHard: {
		{models.QuestionMultipleChoice, 0.4},
		{models.QuestionTextInput, 0.4},
		{models.QuestionSentenceTranslation, 0.2},
	},
}

// WordPool is the vocabulary distractors are drawn from.
type WordPool interface {
	Words() []models.Word
}

type Generator struct {
	pool WordPool
	rnd  Rand
}

func NewGenerator(pool WordPool, rnd Rand) *Generator {
	return &Generator{pool: pool, rnd: rnd}
}

// Generate shuffles words, keeps at most count of them and builds one question per word.
// Words that cannot back the sampled question type are dropped, so fewer than count may come back.
func (g *Generator) Generate(words []models.Word, count int, difficulty models.Difficulty, direction models.Direction) []models.Question {
	selected := make([]models.Word, len(words))
	copy(selected, words)
	shuffle(g.rnd, selected)

	if count >= 0 && len(selected) > count {
		selected = selected[:count]
	}

	questions := make([]models.Question, 0, len(selected))
	for _, word := range selected {
		qType := g.pickType(difficulty)
		dir := g.pickDirection(direction)

		q, ok := g.buildQuestion(word, qType, dir)
		if !ok {
			continue
		}
		questions = append(questions, q)
	}

	return questions
}

func (g *Generator) pickType(difficulty models.Difficulty) models.QuestionType {
	shares, ok := typeDistribution[difficulty]
	if !ok {
		shares = typeDistribution[models.DifficultyMedium]
	}

	r := g.rnd.Float64()
	acc := 0.0
	for _, s := range shares {
		acc += s.share
		if r < acc {
			return s.qType
		}
	}
	return shares[len(shares)-1].qType
}

func (g *Generator) pickDirection(direction models.Direction) models.Direction {
	if direction == models.DirectionEnPl || direction == models.DirectionPlEn {
		return direction
	}
	if g.rnd.Float64() < enPlShare {
		return models.DirectionEnPl
	}
	return models.DirectionPlEn
}

func (g *Generator) buildQuestion(word models.Word, qType models.QuestionType, dir models.Direction) (models.Question, bool) {
	q := models.Question{
		Type:      qType,
		Direction: dir,
		Word:      word,
	}

	if qType == models.QuestionSentenceTranslation {
		if word.Examples == nil {
			return models.Question{}, false
		}
		q.Prompt, q.CorrectAnswer = word.Examples.English, word.Examples.Polish
		if dir == models.DirectionPlEn {
			q.Prompt, q.CorrectAnswer = word.Examples.Polish, word.Examples.English
		}
		return q, true
	}

	q.Prompt, q.CorrectAnswer = sourceText(word, dir), targetText(word, dir)

	if qType == models.QuestionMultipleChoice {
		distractors := g.distractors(word, q.CorrectAnswer, dir)
		if len(distractors) == 0 {
			q.Type = models.QuestionTextInput
			return q, true
		}

		q.Options = append(distractors, q.CorrectAnswer)
		shuffle(g.rnd, q.Options)
	}

	return q, true
}

func (g *Generator) distractors(word models.Word, correct string, dir models.Direction) []string {
	pool := g.pool.Words()

	candidates := collectDistractors(pool, word, correct, dir, true)
	if len(candidates) < distractorCount {
		candidates = collectDistractors(pool, word, correct, dir, false)
	}

	shuffle(g.rnd, candidates)
	return candidates[:min(distractorCount, len(candidates))]
}

func collectDistractors(pool []models.Word, word models.Word, correct string, dir models.Direction, sameType bool) []string {
	seen := map[string]bool{normalizeAnswer(correct): true}
	out := make([]string, 0)

	for _, w := range pool {
		if sameType && w.Type != word.Type {
			continue
		}

		text := targetText(w, dir)
		if utf8.RuneCountInString(text) <= distractorMinLength {
			continue
		}

		key := normalizeAnswer(text)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, text)
	}

	return out
}

func sourceText(w models.Word, dir models.Direction) string {
	if dir == models.DirectionPlEn {
		return w.Polish
	}
	return w.English
}

func targetText(w models.Word, dir models.Direction) string {
	if dir == models.DirectionPlEn {
		return w.English
	}
	return w.Polish
}
