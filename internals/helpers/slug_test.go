package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDiacritics(t *testing.T) {
	assert.Equal(t, "Trafico", StripDiacritics("Tráfico"))
	assert.Equal(t, "Menu del dia", StripDiacritics("Menú del día"))
	assert.Equal(t, "plain", StripDiacritics("plain"))
}

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Menú del Día", "menu-del-dia"},
		{"  Postres & Café  ", "postres-cafe"},
		{"Ceviche---Mixto", "ceviche-mixto"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in))
	}
}

func TestGenerateSlug_CapsLength(t *testing.T) {
	long := GenerateSlug("plato especial de la casa con salsa de la abuela y guarnicion doble de papas")
	assert.LessOrEqual(t, len(long), DefaultSlugMaxLen)
	assert.NotEqual(t, "-", long[len(long)-1:])
}
