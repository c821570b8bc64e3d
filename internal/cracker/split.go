package cracker

import "github.com/virpom/caesar-cipher-cracker/internal/alphabet"

// =====================
// Разбиение двуязычного текста
// =====================

// SplitByLanguage режет текст на односложные по языку отрезки. Нейтральные
// символы (знаки, цифры, пробелы) не меняют язык и остаются в текущем
// сегменте. Чтобы не резать слово пополам, от точки смены языка ищем пробел
// назад, но не дальше десяти кодовых точек. Текст без букв даёт пустой
// результат.
func SplitByLanguage(text string) []LangSegment {
	cps := []rune(text)
	var segments []LangSegment
	curLang := ""
	curStart := 0

	for i, r := range cps {
		var det string
		switch {
		case alphabet.Russian.IsLetter(r):
			det = "ru"
		case alphabet.English.IsLetter(r):
			det = "en"
		default:
			continue
		}

		if curLang == "" {
			curLang = det
			continue
		}
		if det == curLang {
			continue
		}

		// Смена языка: откатываемся к ближайшему пробелу
		splitAt := i
		low := i - 10
		if low < curStart {
			low = curStart
		}
		for j := i - 1; j >= low; j-- {
			if cps[j] == ' ' || cps[j] == '\n' || cps[j] == '\t' {
				splitAt = j + 1
				break
			}
		}
		if splitAt > curStart {
			segments = append(segments, LangSegment{
				Text:  string(cps[curStart:splitAt]),
				Lang:  curLang,
				Start: curStart,
				End:   splitAt,
			})
		}
		curStart = splitAt
		curLang = det
	}

	if curLang != "" && curStart < len(cps) {
		segments = append(segments, LangSegment{
			Text:  string(cps[curStart:]),
			Lang:  curLang,
			Start: curStart,
			End:   len(cps),
		})
	}
	return segments
}
