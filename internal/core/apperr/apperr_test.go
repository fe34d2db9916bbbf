package apperr_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"inkwell/internal/core/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Text string `json:"text" validate:"required,max=5"`
	Slug string `json:"slug" validate:"required,slug"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		in     sample
		fields []string
	}{
		{name: "valid", in: sample{Text: "hi", Slug: "news_1"}},
		{name: "empty text", in: sample{Slug: "news"}, fields: []string{"text"}},
		{name: "long text", in: sample{Text: strings.Repeat("a", 6), Slug: "news"}, fields: []string{"text"}},
		{name: "bad slug", in: sample{Text: "hi", Slug: "no spaces"}, fields: []string{"slug"}},
		{name: "everything wrong", in: sample{}, fields: []string{"text", "slug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperr.Validate(tt.in)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			fields := apperr.FieldErrors(err)
			assert.Len(t, fields, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestValidationErrorWrapping(t *testing.T) {
	err := fmt.Errorf("create post: %w", apperr.NewValidationError("group", "unknown group"))

	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.False(t, errors.Is(err, apperr.ErrNotFound))
	assert.Equal(t, map[string]string{"group": "unknown group"}, apperr.FieldErrors(err))
	assert.Nil(t, apperr.FieldErrors(apperr.ErrNotFound))
}
