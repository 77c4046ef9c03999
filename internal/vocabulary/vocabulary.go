package vocabulary

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/DanRulev/vocaquiz/pkg/validator"
	"github.com/samber/lo"
)

//go:embed default.json
var defaultVocabulary []byte

type file struct {
	Categories map[string]models.Category `json:"categories" validate:"required,min=1,dive"`
}

// Vocabulary is a read-only set of categorized words.
type Vocabulary struct {
	keys       []string
	categories map[string]models.Category
}

func New(categories map[string]models.Category) *Vocabulary {
	v := &Vocabulary{
		keys:       lo.Keys(categories),
		categories: make(map[string]models.Category, len(categories)),
	}
	sort.Strings(v.keys)

	for key, c := range categories {
		c.Key = key
		v.categories[key] = c
	}

	return v
}

func Default() (*Vocabulary, error) {
	return Parse(defaultVocabulary)
}

// Load reads a vocabulary file, falling back to the embedded set for an empty path.
func Load(path string) (*Vocabulary, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Vocabulary, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode vocabulary: %w", err)
	}

	if err := validator.ValidateStruct(f); err != nil {
		return nil, err
	}

	for key, c := range f.Categories {
		if len(c.Words) == 0 {
			return nil, errors.New("category " + key + " has no words")
		}
	}

	return New(f.Categories), nil
}

// Categories returns the categories ordered by key.
func (v *Vocabulary) Categories() []models.Category {
	return lo.Map(v.keys, func(key string, _ int) models.Category {
		return v.categories[key]
	})
}

func (v *Vocabulary) Category(key string) (models.Category, bool) {
	c, ok := v.categories[key]
	return c, ok
}

// Words returns every word across categories in category order.
func (v *Vocabulary) Words() []models.Word {
	words := make([]models.Word, 0)
	for _, key := range v.keys {
		words = append(words, v.categories[key].Words...)
	}
	return words
}

func (v *Vocabulary) CategoryCount() int {
	return len(v.keys)
}
