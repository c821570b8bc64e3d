// Package cracker реализует взлом шифра сдвига: четыре независимые метрики
// правдоподобия, их адаптивную комбинацию, перебор ключей, детектор
// открытого текста и сегментацию смешанных шифров.
package cracker

// ShiftResult — итог анализа одного варианта сдвига. Создаётся один раз и
// дальше не меняется.
type ShiftResult struct {
	Shift       int     // ключ
	Text        string  // расшифрованный текст
	ChiSquared  float64 // меньше = лучше
	BigramScore float64 // [0..1]
	DictScore   float64 // [0..1]
	StemScore   float64 // [0..1]
	Combined    float64 // [0..1]
	Matches     int     // словарных слов
	TotalWords  int     // всего слов
}

// Confidence — комбинированная оценка в процентах.
func (r ShiftResult) Confidence() float64 {
	c := r.Combined * 100
	if c > 100 {
		return 100
	}
	return c
}

// Segment — участок текста со своим ключом (для смешанного шифра).
// Границы — в кодовых точках исходного текста.
type Segment struct {
	Text  string // расшифрованный текст сегмента
	Start int
	End   int
	Best  ShiftResult
}

// LangSegment — участок текста одного языка (для двуязычного ввода).
type LangSegment struct {
	Text  string // исходный (нерасшифрованный) текст сегмента
	Lang  string // "ru" или "en"
	Start int
	End   int
}
