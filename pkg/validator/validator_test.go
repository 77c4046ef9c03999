package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Level string `validate:"oneof=easy medium hard"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{name: "valid", in: sample{Name: "x", Level: "easy"}},
		{name: "missing name", in: sample{Level: "hard"}, wantErr: "sample.Name"},
		{name: "bad level", in: sample{Name: "x", Level: "extreme"}, wantErr: "Tag: oneof"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateValue(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateValue("pl-en", "oneof=en-pl pl-en mixed"))
	require.Error(t, ValidateValue("de-en", "oneof=en-pl pl-en mixed"))
}
