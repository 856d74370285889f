package helpers

import (
	"regexp"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Cozy Bunny Amigurumi":   "cozy-bunny-amigurumi",
		"Home Decor":             "home-decor",
		"  Spaced   Out  ":       "spaced-out",
		"Crochet & Knit Basics!": "crochet-and-knit-basics",
	}

	urlSafe := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	for in, want := range cases {
		got := GenerateSlug(in)
		assert.Equal(t, want, got)
		assert.Regexp(t, urlSafe, got)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	type form struct {
		Name  string `validate:"required"`
		Image string `validate:"max=5"`
	}

	err := validator.New().Struct(&form{Image: "too-long-value"})
	require.Error(t, err)

	errs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	messages := FormatValidationErrors(errs)
	assert.Contains(t, messages, "name")
	assert.Contains(t, messages, "image")
	assert.Equal(t, "Name is required.", messages["name"])
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("loops-and-stitches")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "loops-and-stitches", hash)

	assert.True(t, PasswordCompare(hash, []byte("loops-and-stitches")))
	assert.False(t, PasswordCompare(hash, []byte("wrong")))
}
