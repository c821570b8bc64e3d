package cracker

import (
	"strings"

	"github.com/virpom/caesar-cipher-cracker/internal/alphabet"
	"github.com/virpom/caesar-cipher-cracker/internal/dictionary"
)

// =====================
// Метрики правдоподобия
// =====================

// chiSentinel возвращается вместо бесконечности, когда в тексте нет букв.
const chiSentinel = 1e9

// letterIndices — последовательность алфавитных индексов букв текста.
func letterIndices(text string, p *alphabet.Profile) []int {
	out := make([]int, 0, len(text)/2)
	for _, r := range text {
		if i := p.Index(r); i >= 0 {
			out = append(out, i)
		}
	}
	return out
}

// ChiSquared сравнивает наблюдаемые частоты букв с эталонными:
// Σ (observed-expected)²/expected. Меньше = ближе к естественному тексту.
func ChiSquared(text string, p *alphabet.Profile) float64 {
	idxs := letterIndices(text, p)
	n := len(idxs)
	if n == 0 {
		return chiSentinel
	}

	counts := make([]int, p.Size)
	for _, i := range idxs {
		counts[i]++
	}

	chi := 0.0
	for i := 0; i < p.Size; i++ {
		expected := p.Freq(i) * float64(n)
		if expected > 0 {
			diff := float64(counts[i]) - expected
			chi += diff * diff / expected
		}
	}
	return chi
}

// BigramScore — доля соседних пар букв, входящих в число частых биграмм.
// На текстах короче четырёх букв не определена (0).
func BigramScore(text string, p *alphabet.Profile) float64 {
	idxs := letterIndices(text, p)
	if len(idxs) < 4 {
		return 0
	}
	hits, total := 0, len(idxs)-1
	for i := 0; i < total; i++ {
		if p.CommonBigram(idxs[i], idxs[i+1]) {
			hits++
		}
	}
	return float64(hits) / float64(total)
}

// IndexOfCoincidence — вероятность совпадения двух случайно выбранных букв.
// Для естественного русского ≈0.055, английского ≈0.067, шума ≈1/size.
func IndexOfCoincidence(text string, p *alphabet.Profile) float64 {
	idxs := letterIndices(text, p)
	n := len(idxs)
	if n < 2 {
		return 0
	}
	counts := make([]int, p.Size)
	for _, i := range idxs {
		counts[i]++
	}
	ic := 0.0
	for _, c := range counts {
		ic += float64(c) * float64(c-1)
	}
	return ic / (float64(n) * float64(n-1))
}

// ExtractWords — максимальные серии из двух и более букв алфавита,
// в нижнем регистре.
func ExtractWords(text string, p *alphabet.Profile) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) >= 2 {
			words = append(words, string(cur))
		}
		cur = cur[:0]
	}
	for _, r := range text {
		if p.IsLetter(r) {
			cur = append(cur, p.ToLower(r))
		} else {
			flush()
		}
	}
	flush()
	return words
}

// StemWord отрезает первый подходящий суффикс из списка профиля. Порядок
// списка — и есть правило выбора: берётся первый суффикс, который совпадает
// с окончанием и оставляет основу длиннее MinStem.
func StemWord(word string, p *alphabet.Profile) string {
	wlen := len([]rune(word))
	for _, suf := range p.Suffixes() {
		slen := len([]rune(suf))
		if wlen > slen+p.MinStem && strings.HasSuffix(word, suf) {
			return word[:len(word)-len(suf)]
		}
	}
	return word
}

// DictScore — многоуровневый словарный анализ. Для каждого слова по порядку:
//  1. точное совпадение — полный вес;
//  2. нормализация (ё→е) — полный вес;
//  3. стемминг — вес 0.8;
//  4. нормализация + стемминг — вес 0.7.
//
// Итог: 0.5·(доля совпавших слов) + 0.5·(взвешенная по длине доля).
// Возвращает оценку, число совпавших и общее число слов.
func DictScore(text string, dict dictionary.Set, p *alphabet.Profile) (float64, int, int) {
	words := ExtractWords(text, p)
	if len(words) == 0 {
		return 0, 0, 0
	}

	matches := 0
	matchW, totalW := 0.0, 0.0

	for _, word := range words {
		wlen := float64(len([]rune(word)))
		totalW += wlen

		if dict.Contains(word) {
			matches++
			matchW += wlen
			continue
		}

		norm := p.Normalize(word)
		if norm != word && dict.Contains(norm) {
			matches++
			matchW += wlen
			continue
		}

		if st := StemWord(word, p); st != word && dict.Contains(st) {
			matches++
			matchW += wlen * 0.8
			continue
		}

		if norm != word {
			if st := StemWord(norm, p); st != norm && dict.Contains(st) {
				matches++
				matchW += wlen * 0.7
			}
		}
	}

	ratio := float64(matches) / float64(len(words))
	weighted := 0.0
	if totalW > 0 {
		weighted = matchW / totalW
	}
	return ratio*0.5 + weighted*0.5, matches, len(words)
}

// StemDictScore — агрессивный стемминг: после обычного стемминга усекаем
// слово посимвольно, пока длина не упадёт ниже MinStem, и ищем каждый
// вариант в словаре. Подбирает слова, чьих окончаний нет в списке суффиксов.
func StemDictScore(text string, dict dictionary.Set, p *alphabet.Profile) float64 {
	words := ExtractWords(text, p)
	if len(words) == 0 {
		return 0
	}

	hits := 0
	for _, word := range words {
		candidate := []rune(StemWord(p.Normalize(word), p))
		for len(candidate) >= p.MinStem {
			if dict.Contains(string(candidate)) {
				hits++
				break
			}
			candidate = candidate[:len(candidate)-1]
		}
	}
	return float64(hits) / float64(len(words))
}
