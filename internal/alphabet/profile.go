// Package alphabet определяет языковые профили (русский и английский):
// порядок букв, эталонные частоты, таблицы биграмм и суффиксы для стемминга.
package alphabet

import "strings"

// Profile — неизменяемое описание алфавита одного языка. Вся языкозависимая
// логика (классификация символов, индексация, нормализация) живёт здесь,
// остальные пакеты получают профиль явно и не ветвятся по строке языка.
type Profile struct {
	Lang    string // "ru" или "en"
	Name    string // человекочитаемое имя
	Size    int
	MinStem int     // минимальная длина основы после стемминга
	PlainIC float64 // порог Index of Coincidence для открытого текста

	freq     []float64
	bigrams  []bool // плоская таблица size×size
	suffixes []string

	index     func(rune) int
	fromIndex func(int) rune
	isLower   func(rune) bool
	isUpper   func(rune) bool
	toLower   func(rune) rune
	toUpper   func(rune) rune
	normalize func(string) string // nil, если нормализация не нужна
}

// =====================
// Классификация символов
// =====================

func isRuLower(r rune) bool { return (r >= 'а' && r <= 'я') || r == 'ё' }
func isRuUpper(r rune) bool { return (r >= 'А' && r <= 'Я') || r == 'Ё' }
func isEnLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isEnUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func ruToLower(r rune) rune {
	switch {
	case r == 'Ё':
		return 'ё'
	case r >= 'А' && r <= 'Я':
		return r + 0x20
	}
	return r
}

func ruToUpper(r rune) rune {
	switch {
	case r == 'ё':
		return 'Ё'
	case r >= 'а' && r <= 'я':
		return r - 0x20
	}
	return r
}

func enToLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 32
	}
	return r
}

func enToUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 32
	}
	return r
}

// Индекс буквы — позиция в традиционном порядке алфавита, не в Unicode.
// Русская «ё» стоит вне кодовой последовательности, но занимает позицию 6.
func ruIndex(r rune) int {
	r = ruToLower(r)
	switch {
	case r == 'ё':
		return 6
	case r >= 'а' && r <= 'е':
		return int(r - 'а')
	case r >= 'ж' && r <= 'я':
		return int(r-'ж') + 7
	}
	return -1
}

func ruFromIndex(i int) rune {
	switch {
	case i == 6:
		return 'ё'
	case i < 6:
		return 'а' + rune(i)
	}
	return 'ж' + rune(i-7)
}

func enIndex(r rune) int {
	r = enToLower(r)
	if r >= 'a' && r <= 'z' {
		return int(r - 'a')
	}
	return -1
}

func enFromIndex(i int) rune { return 'a' + rune(i) }

// NormalizeYo заменяет ё→е: словари часто хранят написание через «е».
func NormalizeYo(s string) string {
	if !strings.ContainsAny(s, "ёЁ") {
		return s
	}
	return strings.NewReplacer("ё", "е", "Ё", "Е").Replace(s)
}

// =====================
// Профили
// =====================

var Russian = &Profile{
	Lang:      "ru",
	Name:      "Русский",
	Size:      33,
	MinStem:   3,
	PlainIC:   0.045,
	freq:      ruFreq[:],
	bigrams:   buildBigramTable(33, ruIndex, ruCommonBigrams),
	suffixes:  ruSuffixes,
	index:     ruIndex,
	fromIndex: ruFromIndex,
	isLower:   isRuLower,
	isUpper:   isRuUpper,
	toLower:   ruToLower,
	toUpper:   ruToUpper,
	normalize: NormalizeYo,
}

var English = &Profile{
	Lang:      "en",
	Name:      "English",
	Size:      26,
	MinStem:   2,
	PlainIC:   0.055,
	freq:      enFreq[:],
	bigrams:   buildBigramTable(26, enIndex, enCommonBigrams),
	suffixes:  enSuffixes,
	index:     enIndex,
	fromIndex: enFromIndex,
	isLower:   isEnLower,
	isUpper:   isEnUpper,
	toLower:   enToLower,
	toUpper:   enToUpper,
}

func buildBigramTable(size int, index func(rune) int, bigrams []string) []bool {
	table := make([]bool, size*size)
	for _, bg := range bigrams {
		rs := []rune(bg)
		if len(rs) != 2 {
			continue
		}
		a, b := index(rs[0]), index(rs[1])
		if a >= 0 && b >= 0 {
			table[a*size+b] = true
		}
	}
	return table
}

// ByLang возвращает профиль по тегу языка; всё, что не "en" — русский.
func ByLang(lang string) *Profile {
	if lang == "en" {
		return English
	}
	return Russian
}

// =====================
// Методы профиля
// =====================

// Index возвращает позицию буквы в алфавите или -1 для чужих символов.
func (p *Profile) Index(r rune) int { return p.index(r) }

// FromIndex — строчная буква по позиции в алфавите.
func (p *Profile) FromIndex(i int) rune { return p.fromIndex(i) }

func (p *Profile) IsLetter(r rune) bool { return p.isLower(r) || p.isUpper(r) }
func (p *Profile) IsUpper(r rune) bool  { return p.isUpper(r) }
func (p *Profile) ToLower(r rune) rune  { return p.toLower(r) }
func (p *Profile) ToUpper(r rune) rune  { return p.toUpper(r) }

// Freq — эталонная относительная частота буквы с данным индексом.
func (p *Profile) Freq(i int) float64 { return p.freq[i] }

// CommonBigram сообщает, входит ли упорядоченная пара индексов в число
// самых частых биграмм языка.
func (p *Profile) CommonBigram(a, b int) bool { return p.bigrams[a*p.Size+b] }

// Suffixes — список морфологических окончаний, длинные раньше коротких.
func (p *Profile) Suffixes() []string { return p.suffixes }

// Normalize приводит слово к словарному написанию (для русского ё→е).
func (p *Profile) Normalize(word string) string {
	if p.normalize == nil {
		return word
	}
	return p.normalize(word)
}

// LetterCount — число букв данного алфавита в тексте.
func (p *Profile) LetterCount(text string) int {
	n := 0
	for _, r := range text {
		if p.IsLetter(r) {
			n++
		}
	}
	return n
}
