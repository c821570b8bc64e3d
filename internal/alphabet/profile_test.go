package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRoundTrip(t *testing.T) {
	for _, p := range []*Profile{Russian, English} {
		for i := 0; i < p.Size; i++ {
			require.Equal(t, i, p.Index(p.FromIndex(i)), "lang=%s i=%d", p.Lang, i)
		}
	}
}

func TestYoPosition(t *testing.T) {
	// «ё» выпадает из Unicode-последовательности, но в алфавите стоит шестой
	assert.Equal(t, 6, Russian.Index('ё'))
	assert.Equal(t, 6, Russian.Index('Ё'))
	assert.Equal(t, 'ё', Russian.FromIndex(6))
	assert.Equal(t, 5, Russian.Index('е'))
	assert.Equal(t, 7, Russian.Index('ж'))
}

func TestIndexForeign(t *testing.T) {
	assert.Equal(t, -1, Russian.Index('q'))
	assert.Equal(t, -1, Russian.Index(' '))
	assert.Equal(t, -1, English.Index('я'))
	assert.Equal(t, -1, English.Index('!'))
}

func TestFrequenciesSumToOne(t *testing.T) {
	for _, p := range []*Profile{Russian, English} {
		sum := 0.0
		for i := 0; i < p.Size; i++ {
			sum += p.Freq(i)
		}
		assert.InDelta(t, 1.0, sum, 0.01, "lang=%s", p.Lang)
	}
}

func TestCommonBigram(t *testing.T) {
	st := [2]rune{'с', 'т'}
	assert.True(t, Russian.CommonBigram(Russian.Index(st[0]), Russian.Index(st[1])))
	assert.True(t, English.CommonBigram(English.Index('t'), English.Index('h')))
	// Редкая пара
	assert.False(t, English.CommonBigram(English.Index('q'), English.Index('q')))
	assert.False(t, Russian.CommonBigram(Russian.Index('ъ'), Russian.Index('ъ')))
}

func TestByLang(t *testing.T) {
	assert.Same(t, Russian, ByLang("ru"))
	assert.Same(t, English, ByLang("en"))
	assert.Same(t, Russian, ByLang(""))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "елка", Russian.Normalize("ёлка"))
	assert.Equal(t, "Ежик", Russian.Normalize("Ёжик"))
	assert.Equal(t, "hello", English.Normalize("hello"))
}

func TestLetterCount(t *testing.T) {
	assert.Equal(t, 9, Russian.LetterCount("Привет мир!"))
	assert.Equal(t, 0, Russian.LetterCount("hello"))
	assert.Equal(t, 10, English.LetterCount("Hello world, привет"))
}
