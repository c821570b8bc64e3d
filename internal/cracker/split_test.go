package cracker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitByLanguageTwoParts(t *testing.T) {
	segs := SplitByLanguage("Привет мир hello world")
	require.Len(t, segs, 2)

	assert.Equal(t, "ru", segs[0].Lang)
	assert.Equal(t, "Привет мир ", segs[0].Text)
	assert.Equal(t, 0, segs[0].Start)

	assert.Equal(t, "en", segs[1].Lang)
	assert.Equal(t, "hello world", segs[1].Text)
	// Граница легла после пробела, не внутри слова
	assert.Equal(t, segs[0].End, segs[1].Start)
	assert.Equal(t, len([]rune("Привет мир hello world")), segs[1].End)
}

func TestSplitByLanguageSingle(t *testing.T) {
	segs := SplitByLanguage("Только русский текст.")
	require.Len(t, segs, 1)
	assert.Equal(t, "ru", segs[0].Lang)
	assert.Equal(t, "Только русский текст.", segs[0].Text)
}

func TestSplitByLanguageNoLetters(t *testing.T) {
	assert.Empty(t, SplitByLanguage("123 ... !!!"))
	assert.Empty(t, SplitByLanguage(""))
}

func TestSplitByLanguageNoWhitespaceNearby(t *testing.T) {
	// Пробела в пределах десяти кодовых точек нет: режем прямо в точке смены
	text := strings.Repeat("а", 15) + "english"
	segs := SplitByLanguage(text)
	require.Len(t, segs, 2)
	assert.Equal(t, 15, segs[0].End)
	assert.Equal(t, 15, segs[1].Start)
	assert.Equal(t, "english", segs[1].Text)
}

func TestSplitByLanguageManyTransitions(t *testing.T) {
	segs := SplitByLanguage("один two три four")
	require.Len(t, segs, 4)
	langs := []string{}
	var prevEnd int
	for i, s := range segs {
		langs = append(langs, s.Lang)
		if i > 0 {
			assert.Equal(t, prevEnd, s.Start, "сегменты стыкуются без дыр")
		}
		prevEnd = s.End
	}
	assert.Equal(t, []string{"ru", "en", "ru", "en"}, langs)
}

func TestSplitByLanguageNeutralTail(t *testing.T) {
	// Хвост из знаков достаётся последнему сегменту
	segs := SplitByLanguage("мир peace!!!")
	require.Len(t, segs, 2)
	assert.Equal(t, "peace!!!", segs[1].Text)
}
