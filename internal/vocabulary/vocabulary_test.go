package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	v, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 4, v.CategoryCount())
	assert.Len(t, v.Words(), 64)

	keys := make([]string, 0)
	for _, c := range v.Categories() {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"animals", "food", "home", "verbs"}, keys)

	animals, ok := v.Category("animals")
	require.True(t, ok)
	assert.Equal(t, "Animals", animals.Name)
	assert.Equal(t, "dog", animals.Words[0].English)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid",
			data: `{"categories":{"c":{"name":"C","words":[{"english":"a","polish":"b","difficulty":"hard"}]}}}`,
		},
		{
			name:    "not json",
			data:    `{categories`,
			wantErr: true,
		},
		{
			name:    "no categories",
			data:    `{"categories":{}}`,
			wantErr: true,
		},
		{
			name:    "empty category",
			data:    `{"categories":{"c":{"name":"C","words":[]}}}`,
			wantErr: true,
		},
		{
			name:    "missing polish",
			data:    `{"categories":{"c":{"name":"C","words":[{"english":"a"}]}}}`,
			wantErr: true,
		},
		{
			name:    "bad difficulty",
			data:    `{"categories":{"c":{"name":"C","words":[{"english":"a","polish":"b","difficulty":"extreme"}]}}}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := Parse([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			c, ok := v.Category("c")
			require.True(t, ok)
			assert.Equal(t, "c", c.Key)
			assert.Equal(t, models.DifficultyHard, c.Words[0].Level())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vocab.json")
	err := os.WriteFile(path, []byte(`{"categories":{"x":{"name":"X","words":[{"english":"one","polish":"jeden"}]}}}`), 0o600)
	require.NoError(t, err)

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, v.CategoryCount())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	v, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, v.CategoryCount())
}
