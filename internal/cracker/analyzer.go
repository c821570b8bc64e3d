package cracker

import (
	"sort"

	"github.com/virpom/caesar-cipher-cracker/internal/alphabet"
	"github.com/virpom/caesar-cipher-cracker/internal/dictionary"
)

// Analyzer перебирает ключи и оценивает кандидатов. Словарь передаётся при
// создании и используется только на чтение.
type Analyzer struct {
	cfg  Config
	dict *dictionary.Dictionary
}

func New(dict *dictionary.Dictionary) *Analyzer {
	return NewWithConfig(dict, DefaultConfig())
}

func NewWithConfig(dict *dictionary.Dictionary, cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg, dict: dict}
}

func (a *Analyzer) Config() Config { return a.cfg }

func (a *Analyzer) Dictionary() *dictionary.Dictionary { return a.dict }

// AnalyzeShift — полный анализ одного варианта сдвига.
func (a *Analyzer) AnalyzeShift(text string, shift int, p *alphabet.Profile) ShiftResult {
	dec := p.Decrypt(text, shift)
	dict := a.dict.Words(p)

	chi := ChiSquared(dec, p)
	bg := BigramScore(dec, p)
	ds, matches, total := DictScore(dec, dict, p)
	ss := StemDictScore(dec, dict, p)

	// Веса подбираются по числу букв исходного шифртекста
	combined := a.combine(chi, bg, ds, ss, p.LetterCount(text))

	return ShiftResult{
		Shift:       shift,
		Text:        dec,
		ChiSquared:  chi,
		BigramScore: bg,
		DictScore:   ds,
		StemScore:   ss,
		Combined:    combined,
		Matches:     matches,
		TotalWords:  total,
	}
}

// combine сводит четыре метрики в одну оценку. Короткие тексты дают мало
// статистики для chi-squared, поэтому его вес растёт с длиной, а вес
// биграмм — падает.
func (a *Analyzer) combine(chi, bg, ds, ss float64, nLetters int) float64 {
	chiNorm := 1 - chi/a.cfg.ChiSaturation
	if chiNorm < 0 {
		chiNorm = 0
	}

	var wChi, wBg, wDict, wStem float64
	switch {
	case nLetters >= 100:
		wChi, wBg, wDict, wStem = 0.35, 0.10, 0.35, 0.20
	case nLetters >= 30:
		wChi, wBg, wDict, wStem = 0.20, 0.20, 0.35, 0.25
	case nLetters >= 10:
		wChi, wBg, wDict, wStem = 0.10, 0.30, 0.35, 0.25
	default:
		wChi, wBg, wDict, wStem = 0.05, 0.45, 0.30, 0.20
	}

	return wChi*chiNorm + wBg*bg + wDict*ds + wStem*ss
}

// Crack перебирает все сдвиги алфавита и возвращает результаты по убыванию
// комбинированной оценки; при равенстве выигрывает меньший ключ.
func (a *Analyzer) Crack(text string, p *alphabet.Profile) []ShiftResult {
	results := make([]ShiftResult, 0, p.Size)
	for s := 0; s < p.Size; s++ {
		results = append(results, a.AnalyzeShift(text, s, p))
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Combined == results[j].Combined {
			return results[i].Shift < results[j].Shift
		}
		return results[i].Combined > results[j].Combined
	})
	return results
}

// DetectProfile выбирает язык по большинству букв.
func (a *Analyzer) DetectProfile(text string) *alphabet.Profile {
	ru, en := 0, 0
	for _, r := range text {
		switch {
		case alphabet.Russian.IsLetter(r):
			ru++
		case alphabet.English.IsLetter(r):
			en++
		}
	}
	if ru > en {
		return alphabet.Russian
	}
	return alphabet.English
}

// IsBilingual — двуязычен ли текст: язык-меньшинство должен набрать больше
// BilingualShare от всех классифицированных букв.
func (a *Analyzer) IsBilingual(text string) bool {
	ru, en := 0, 0
	for _, r := range text {
		switch {
		case alphabet.Russian.IsLetter(r):
			ru++
		case alphabet.English.IsLetter(r):
			en++
		}
	}
	total := ru + en
	if total == 0 {
		return false
	}
	minor := ru
	if en < ru {
		minor = en
	}
	return float64(minor)/float64(total) > a.cfg.BilingualShare
}

// IsPlaintext — похож ли текст на незашифрованный. Сначала по доле
// словарных слов, затем (для текстов от PlainMinLetter букв) по Index of
// Coincidence вместе со словарной оценкой.
func (a *Analyzer) IsPlaintext(text string) bool {
	p := a.DetectProfile(text)
	dict := a.dict.Words(p)
	ds, matches, total := DictScore(text, dict, p)

	if total > 0 && float64(matches)/float64(total) >= a.cfg.PlainRatio {
		return true
	}

	if p.LetterCount(text) >= a.cfg.PlainMinLetter {
		ic := IndexOfCoincidence(text, p)
		return ic > p.PlainIC && ds > a.cfg.PlainDictScore
	}
	return false
}
