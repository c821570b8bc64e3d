package cracker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virpom/caesar-cipher-cracker/internal/alphabet"
	"github.com/virpom/caesar-cipher-cracker/internal/dictionary"
)

func setOf(words ...string) dictionary.Set {
	s := dictionary.Set{}
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func setFromText(text string, p *alphabet.Profile) dictionary.Set {
	s := dictionary.Set{}
	for _, w := range ExtractWords(text, p) {
		s[w] = struct{}{}
	}
	return s
}

const ruLong = "Мы были на реке и видели как туман медленно поднимался над водой. " +
	"Он сказал что все они будут ждать нас у старого дома за лесом. " +
	"Она так и не смогла понять почему это было важно для него но решила что спорить не будет. " +
	"Ночь была тихая и тёплая и никто не хотел уходить домой раньше времени."

const enLong = "He said that they would go to the old house by the river when the sun was down. " +
	"We did not know what they would say about it but all of them could see " +
	"that this was the one thing that would not wait."

func TestCombineWeightBands(t *testing.T) {
	a := New(dictionary.FromSets(nil, nil))
	// chi=0 даёт chiNorm=1: комбинация равна весу частотной метрики
	assert.InDelta(t, 0.35, a.combine(0, 0, 0, 0, 150), 1e-9)
	assert.InDelta(t, 0.20, a.combine(0, 0, 0, 0, 50), 1e-9)
	assert.InDelta(t, 0.10, a.combine(0, 0, 0, 0, 15), 1e-9)
	assert.InDelta(t, 0.05, a.combine(0, 0, 0, 0, 5), 1e-9)
	// Насыщение: chi за порогом обнуляет частотную составляющую
	assert.InDelta(t, 0.45, a.combine(1000, 1, 0, 0, 5), 1e-9)
}

func TestCrackKnownRussian(t *testing.T) {
	a := New(dictionary.FromSets(setOf("привет", "мир"), nil))
	results := a.Crack("Фхнжйч снх", alphabet.Russian)

	require.Len(t, results, 33)
	best := results[0]
	assert.Equal(t, 5, best.Shift)
	assert.Equal(t, "Привет мир", best.Text)
	assert.Equal(t, 2, best.Matches)
	assert.Equal(t, 2, best.TotalWords)
	assert.Greater(t, best.Confidence(), 50.0)
}

func TestCrackKnownEnglish(t *testing.T) {
	a := New(dictionary.FromSets(nil, setOf("hello", "world")))
	results := a.Crack("Khoor zruog", alphabet.English)

	require.Len(t, results, 26)
	assert.Equal(t, 3, results[0].Shift)
	assert.Equal(t, "Hello world", results[0].Text)
}

func TestCrackRecoversLongRussian(t *testing.T) {
	require.GreaterOrEqual(t, alphabet.Russian.LetterCount(ruLong), 200)

	// Встроенного минимума слов достаточно: на длинном тексте решает частотная статистика
	a := New(dictionary.FromSets(setOf(builtinRu()...), nil))
	enc := alphabet.Russian.Encrypt(ruLong, 17)
	results := a.Crack(enc, alphabet.Russian)

	assert.Equal(t, 17, results[0].Shift)
	assert.Equal(t, ruLong, results[0].Text)
}

func TestCrackRecoversLongEnglish(t *testing.T) {
	a := New(dictionary.FromSets(nil, setOf(builtinEn()...)))
	enc := alphabet.English.Encrypt(enLong, 19)
	results := a.Crack(enc, alphabet.English)

	assert.Equal(t, 19, results[0].Shift)
	assert.Equal(t, enLong, results[0].Text)
}

func TestCrackEmptyInput(t *testing.T) {
	a := New(dictionary.FromSets(nil, nil))
	results := a.Crack("", alphabet.Russian)
	require.Len(t, results, 33)
	// Без букв все оценки одинаково нулевые, ничья разрешается меньшим ключом
	assert.Equal(t, 0, results[0].Shift)
	assert.Empty(t, results[0].Text)
}

func TestConfidenceClamped(t *testing.T) {
	r := ShiftResult{Combined: 1.4}
	assert.Equal(t, 100.0, r.Confidence())
	r = ShiftResult{Combined: 0.37}
	assert.InDelta(t, 37.0, r.Confidence(), 1e-9)
}

func TestDetectProfile(t *testing.T) {
	a := New(dictionary.FromSets(nil, nil))
	assert.Same(t, alphabet.Russian, a.DetectProfile("Привет, world"))
	assert.Same(t, alphabet.English, a.DetectProfile("hello мир and more words"))
	assert.Same(t, alphabet.English, a.DetectProfile("12345"))
}

func TestIsBilingual(t *testing.T) {
	a := New(dictionary.FromSets(nil, nil))
	assert.True(t, a.IsBilingual("Привет мир hello world"))
	assert.False(t, a.IsBilingual("Просто русский текст без вставок"))
	// Единственная чужая буква на длинном тексте — меньше пяти процентов
	assert.False(t, a.IsBilingual(strings.Repeat("привет ", 10)+"x"))
	assert.False(t, a.IsBilingual("..."))
}

func TestIsPlaintext(t *testing.T) {
	dict := dictionary.FromSets(setFromText(ruLong, alphabet.Russian), nil)
	a := New(dict)

	assert.True(t, a.IsPlaintext(ruLong))
	assert.False(t, a.IsPlaintext(alphabet.Russian.Encrypt(ruLong, 13)))
}

func TestIsPlaintextEnglishBuiltin(t *testing.T) {
	a := New(dictionary.FromSets(nil, setOf(builtinEn()...)))
	assert.True(t, a.IsPlaintext(enLong))
	assert.False(t, a.IsPlaintext(alphabet.English.Encrypt(enLong, 13)))
}

func TestIsPlaintextShortText(t *testing.T) {
	// Мало букв и мало словарных совпадений — считаем шифртекстом
	a := New(dictionary.FromSets(nil, nil))
	assert.False(t, a.IsPlaintext("Фхнжйч снх"))
}

func builtinRu() []string {
	return []string{
		"и", "в", "не", "на", "он", "что", "как", "а", "то", "все",
		"она", "так", "его", "но", "да", "ты", "же", "вы", "за", "бы",
		"по", "от", "из", "для", "это", "мы", "они", "был", "быть",
	}
}

func builtinEn() []string {
	return []string{
		"the", "be", "to", "of", "and", "in", "that", "have", "it", "for",
		"not", "on", "with", "he", "as", "you", "do", "at", "this", "but",
		"his", "by", "from", "they", "we", "say", "her", "she", "or", "an",
		"will", "my", "one", "all", "would", "there", "their", "what", "so",
		"if", "about", "who", "get", "which", "go", "when", "can", "no",
	}
}
