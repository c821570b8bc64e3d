package cracker

import "github.com/virpom/caesar-cipher-cracker/internal/alphabet"

// =====================
// Детектор смешанных шифров
// =====================

// MixedDetector ищет внутренние границы смены ключа скользящим окном:
// для каждой позиции подбирается лучший ключ её окрестности, карта ключей
// сглаживается голосованием большинства, точки смены дают границы сегментов,
// слишком короткие сегменты вливаются в предыдущий.
type MixedDetector struct {
	analyzer *Analyzer
}

func NewMixedDetector(a *Analyzer) *MixedDetector {
	return &MixedDetector{analyzer: a}
}

// Detect возвращает сегменты текста с их лучшими результатами взлома.
// Для коротких текстов (меньше двух окон букв) сегментация не имеет смысла —
// текст взламывается целиком.
func (d *MixedDetector) Detect(text string, p *alphabet.Profile) []Segment {
	cfg := d.analyzer.cfg
	cps := []rune(text)

	if p.LetterCount(text) < cfg.WindowSize*2 {
		best := d.analyzer.Crack(text, p)[0]
		return []Segment{{Text: best.Text, Start: 0, End: len(cps), Best: best}}
	}

	smap := d.computeShiftMap(cps, p)
	bounds := d.findBoundaries(smap)

	segments := make([]Segment, 0, len(bounds))
	for _, b := range bounds {
		segText := string(cps[b[0]:b[1]])
		best := d.analyzer.Crack(segText, p)[0]
		segments = append(segments, Segment{Text: best.Text, Start: b[0], End: b[1], Best: best})
	}
	return segments
}

// IsMixed — расходятся ли сегменты в лучшем ключе.
func IsMixed(segments []Segment) bool {
	for i := 1; i < len(segments); i++ {
		if segments[i].Best.Shift != segments[0].Best.Shift {
			return true
		}
	}
	return false
}

// computeShiftMap подбирает для каждой позиции лучший ключ её окна.
// Небуквенные позиции наследуют ключ предыдущей (0 в начале). Оконная
// оценка — только биграммы и chi-squared: словарь на полуслове бесполезен.
func (d *MixedDetector) computeShiftMap(cps []rune, p *alphabet.Profile) []int {
	cfg := d.analyzer.cfg
	n := len(cps)
	halfW := cfg.WindowSize / 2
	smap := make([]int, 0, n)

	for i := 0; i < n; i++ {
		if !p.IsLetter(cps[i]) {
			prev := 0
			if len(smap) > 0 {
				prev = smap[len(smap)-1]
			}
			smap = append(smap, prev)
			continue
		}

		start, end := i-halfW, i+halfW
		if start < 0 {
			start = 0
		}
		if end > n {
			end = n
		}
		window := string(cps[start:end])

		bestShift, bestScore := 0, -1.0
		for s := 0; s < p.Size; s++ {
			dec := p.Decrypt(window, s)
			chiNorm := 1 - ChiSquared(dec, p)/cfg.ChiSaturation
			if chiNorm < 0 {
				chiNorm = 0
			}
			score := cfg.WindowBigramW*BigramScore(dec, p) + cfg.WindowChiW*chiNorm
			if score > bestScore {
				bestScore = score
				bestShift = s
			}
		}
		smap = append(smap, bestShift)
	}
	return smap
}

// findBoundaries сглаживает карту сдвигов модой окрестности ±SmoothRadius
// (при равенстве голосов остаётся собственное значение позиции), выделяет
// точки смены и вливает сегменты короче MinSegment в предыдущий.
func (d *MixedDetector) findBoundaries(smap []int) [][2]int {
	cfg := d.analyzer.cfg
	n := len(smap)
	if n == 0 {
		return [][2]int{{0, 0}}
	}

	smoothed := make([]int, n)
	for i := 0; i < n; i++ {
		start, end := i-cfg.SmoothRadius, i+cfg.SmoothRadius+1
		if start < 0 {
			start = 0
		}
		if end > n {
			end = n
		}
		counts := map[int]int{}
		for j := start; j < end; j++ {
			counts[smap[j]]++
		}
		// Собственное значение позиции выигрывает при равенстве голосов;
		// между чужими равными побеждает меньший ключ
		own := smap[i]
		mode, modeCnt := own, counts[own]
		for k, v := range counts {
			if v > modeCnt || (v == modeCnt && mode != own && k < mode) {
				mode, modeCnt = k, v
			}
		}
		smoothed[i] = mode
	}

	var bounds [][2]int
	segStart, cur := 0, smoothed[0]
	for i := 1; i < n; i++ {
		if smoothed[i] != cur {
			bounds = append(bounds, [2]int{segStart, i})
			segStart, cur = i, smoothed[i]
		}
	}
	bounds = append(bounds, [2]int{segStart, n})

	// Левая свёртка: короткий сегмент присоединяется к предыдущему; первый
	// короткий остаётся и поглощает следующих
	merged := bounds[:0]
	for _, b := range bounds {
		if b[1]-b[0] < cfg.MinSegment && len(merged) > 0 {
			merged[len(merged)-1][1] = b[1]
		} else {
			merged = append(merged, b)
		}
	}
	return merged
}
