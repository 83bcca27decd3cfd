package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Garcia", RemoveDiacritics("García"))
	assert.Equal(t, "Cafe Central", RemoveDiacritics("Café Central"))
	assert.Equal(t, "almacen numero 3", RemoveDiacritics("almacén número 3"))
	assert.Equal(t, "", RemoveDiacritics(""))
	assert.Equal(t, "plain ascii", RemoveDiacritics("plain ascii"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cafe central", Normalize("Café Central"))
	assert.Equal(t, "credito", Normalize("CRÉDITO"))
}

func TestNormalize_DiacriticCaseInvariance(t *testing.T) {
	variants := []string{"García", "garcía", "GARCIA", "garcia", "GARCÍA"}
	want := Normalize(variants[0])
	for _, v := range variants {
		assert.Equal(t, want, Normalize(v), "variant %q", v)
	}
}

func TestExtractDigits(t *testing.T) {
	assert.Equal(t, "123450", ExtractDigits("1,234.50"))
	assert.Equal(t, "1234", ExtractDigits("1234"))
	assert.Equal(t, "20551093", ExtractDigits("RUC 20551093"))
	assert.Equal(t, "", ExtractDigits("sin números"))
	assert.Equal(t, "", ExtractDigits(""))
}
