package cracker

// Config — подобранные константы анализа. Значения по умолчанию проверены
// на текстах от пары слов до нескольких абзацев.
type Config struct {
	ChiSaturation  float64 // нормировка chi-squared: max(0, 1-chi/ChiSaturation)
	WindowSize     int     // окно скользящего анализа смешанного шифра
	SmoothRadius   int     // радиус сглаживания карты сдвигов
	MinSegment     int     // сегменты короче вливаются в предыдущий
	WindowBigramW  float64 // вес биграмм в оконной оценке
	WindowChiW     float64 // вес chi-squared в оконной оценке
	PlainRatio     float64 // доля словарных слов для признания текста открытым
	PlainDictScore float64 // нижний порог словарной оценки при проверке по IC
	PlainMinLetter int     // минимум букв для проверки по IC
	BilingualShare float64 // доля меньшинства, после которой текст двуязычный
}

func DefaultConfig() Config {
	return Config{
		ChiSaturation:  500,
		WindowSize:     40,
		SmoothRadius:   7,
		MinSegment:     15,
		WindowBigramW:  0.6,
		WindowChiW:     0.4,
		PlainRatio:     0.7,
		PlainDictScore: 0.4,
		PlainMinLetter: 30,
		BilingualShare: 0.05,
	}
}
