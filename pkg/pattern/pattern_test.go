package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cruzhacks/portal/pkg/pattern"
)

const binaryNoise = "Æ2ÄLbã¼ð♦▬;Ü▼.‰∟ôˆ⌂o♀xi„¸ŸœéÂ¿È»►¿¥õ8ŸVÎ(¸ç3¹OÄ_#D…2↑↑↔Û♣é@ 4D'ÅP9’V.§‡V♫€˜r9*¹È¤¦♠~qc♫­…Q▬5µ◄‚‰,Ž¾Ó*®"

func TestHasNonAlphanumericPunctuation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		reject bool
	}{
		{"alphabet", "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUZWXYZ", false},
		{"digits", "1234567890", false},
		{"letters and digits", "abc123", false},
		{"spaces", "a 1 b 2", false},
		{"common punctuation", `+-(){}.,/\_@#$%^&*:;"'`, false},
		{"empty", "", false},
		{"emoji", "🔥", true},
		{"binary data", binaryNoise, true},
		{"accented letter", "José", true},
		{"tilde", "a~b", true},
		{"angle brackets", "<script>", true},
		{"newline", "line\nbreak", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.reject, pattern.HasNonAlphanumericPunctuation(tt.input))
		})
	}
}

func TestHasNonAlphanumericPunctuationNewline(t *testing.T) {
	t.Parallel()

	t.Run("accepts line breaks", func(t *testing.T) {
		assert.False(t, pattern.HasNonAlphanumericPunctuationNewline("Doors open at 9.\r\nBring a laptop."))
	})

	t.Run("accepts the punctuation set", func(t *testing.T) {
		assert.False(t, pattern.HasNonAlphanumericPunctuationNewline(pattern.Punctuation))
	})

	t.Run("rejects emoji", func(t *testing.T) {
		assert.True(t, pattern.HasNonAlphanumericPunctuationNewline("party 🎉\n"))
	})

	t.Run("rejects tabs", func(t *testing.T) {
		assert.True(t, pattern.HasNonAlphanumericPunctuationNewline("a\tb"))
	})
}

func TestHasNonAlphanumeric(t *testing.T) {
	t.Parallel()

	assert.False(t, pattern.HasNonAlphanumeric("Hackathon2024"))
	assert.False(t, pattern.HasNonAlphanumeric(""))
	assert.True(t, pattern.HasNonAlphanumeric("Opening Ceremony"))
	assert.True(t, pattern.HasNonAlphanumeric("week-1"))
	assert.True(t, pattern.HasNonAlphanumeric("ünïcode"))
}

func TestIsInvalidPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		reject bool
	}{
		{"standard format", "123-456-7890", false},
		{"parentheses", "(123) 456-7890", false},
		{"periods as dividers", "123.456.7890", false},
		{"spaces as dividers", "123 456 7890", false},
		{"international format", "+1 123.456.7890", false},
		{"digits only", "9251111111", false},
		{"national with trunk prefix", "020 7946 0958", false},
		{"international uneven groups", "+44 20 7946 0958", false},
		{"international pairs", "+33 1 23 45 67 89", false},
		{"international without separators", "+442079460958", false},
		{"international too long", "+1 234 567 890 123 456", true},
		{"double separator", "123--456-7890", true},
		{"plus without digits", "+", true},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"alphabet characters", "abcdefghi", true},
		{"letters mixed with digits", "123-456-789O", true},
		{"four groups", "123-456-7890-1023", true},
		{"too few digits", "123-4567", true},
		{"missing plus on country code", "1 123 456 7890 55", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.reject, pattern.IsInvalidPhone(tt.input))
		})
	}
}
