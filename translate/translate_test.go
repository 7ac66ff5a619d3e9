package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("pointer 12", From("pointer %d", 12))
	assert.Equal("char 'a'", From("char '%c'", 'a'))
}

func TestLocalesOverride(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(LANG_OVERRIDE, "fr-FR")
	assert.Equal([]string{"fr-FR"}, Locales())
}

func TestLocalesDefault(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(LANG_OVERRIDE, "")
	locales := Locales()
	assert.NotEmpty(locales)
}
