package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositiveInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected int
		wantErr  bool
	}{
		{name: "integer", raw: "3", expected: 3},
		{name: "padded integer", raw: " 12 ", expected: 12},
		{name: "whole decimal", raw: "4.0", expected: 4},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "fraction", raw: "2.5", wantErr: true},
		{name: "letters", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "infinity", raw: "Inf", wantErr: true},
		{name: "not a number", raw: "NaN", wantErr: true},
		{name: "too large", raw: "1e12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePositiveInt(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNotPositiveInteger)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text", input: "Vegetable biryani", expected: "Vegetable biryani"},
		{name: "trims", input: "  Bread  ", expected: "Bread"},
		{name: "strips script", input: "Rice<script>alert(1)</script>", expected: "Rice"},
		{name: "strips tags keeps text", input: "<b>Dal</b> makhani", expected: "Dal makhani"},
		{name: "keeps ampersand", input: "Rice & beans", expected: "Rice & beans"},
		{name: "only markup", input: "<img src=x onerror=alert(1)>", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SanitizeText(tt.input))
		})
	}
}
