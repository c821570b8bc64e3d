package alphabet

// =====================
// Лингвистические константы
// =====================

// Частоты букв русского языка (НКРЯ), индекс = позиция буквы в алфавите
var ruFreq = [33]float64{
	0.0801, 0.0159, 0.0454, 0.0170, 0.0298, // а б в г д
	0.0845, 0.0004, 0.0094, 0.0165, 0.0735, // е ё ж з и
	0.0121, 0.0349, 0.0440, 0.0321, 0.0670, // й к л м н
	0.1097, 0.0281, 0.0473, 0.0547, 0.0626, // о п р с т
	0.0262, 0.0026, 0.0097, 0.0048, 0.0144, // у ф х ц ч
	0.0073, 0.0036, 0.0004, 0.0190, 0.0174, // ш щ ъ ы ь
	0.0032, 0.0064, 0.0201, // э ю я
}

// Частоты букв английского языка (Cornell)
var enFreq = [26]float64{
	0.0817, 0.0129, 0.0278, 0.0425, 0.1270, // a b c d e
	0.0223, 0.0202, 0.0609, 0.0697, 0.0015, // f g h i j
	0.0077, 0.0403, 0.0241, 0.0675, 0.0751, // k l m n o
	0.0193, 0.0010, 0.0599, 0.0633, 0.0906, // p q r s t
	0.0276, 0.0098, 0.0236, 0.0015, 0.0197, // u v w x y
	0.0007, // z
}

// Самые частые биграммы
var ruCommonBigrams = []string{
	"ст", "но", "то", "на", "ен", "ни", "ко", "ра", "ов", "ро",
	"ос", "ал", "ер", "он", "не", "ли", "по", "ре", "ор", "ан",
	"пр", "ет", "ол", "та", "ел", "ка", "во", "ти", "ва", "од",
	"ат", "ле", "от", "те", "ла", "ом", "де", "ес", "ве", "ло",
	"ог", "за", "ск", "ть", "ин", "ит", "пе", "се", "об", "да",
	"ем", "го", "ас", "из", "ие", "ри", "ил", "ед", "ар", "ам",
	"до", "ис", "тр", "ны", "ми", "ча", "бо", "ег", "ру",
	"ме", "мо", "ги", "ди", "ви", "бе", "ак", "ки", "ое",
}

var enCommonBigrams = []string{
	"th", "he", "in", "er", "an", "re", "on", "at", "en", "nd",
	"ti", "es", "or", "te", "of", "ed", "is", "it", "al", "ar",
	"st", "to", "nt", "ng", "se", "ha", "as", "ou", "io", "le",
	"ve", "co", "me", "de", "hi", "ri", "ro", "ic", "ne", "ea",
	"ra", "ce", "li", "ch", "ll", "be", "ma", "si", "om", "ur",
	"ca", "el", "ta", "la", "ns", "ge", "ec", "il",
	"pe", "ol", "no", "na", "us", "di", "wa", "em", "ac", "ss",
}

// Суффиксы для стемминга; порядок фиксирован — сначала длинные
var ruSuffixes = []string{
	"ость", "ение", "ание", "ться", "ются", "ится", "ного", "ному",
	"ским", "ской", "ных", "ные", "ный", "ная", "ное", "ной",
	"ого", "ому", "ыми", "ами", "ями", "ать", "ять", "еть", "ить",
	"ует", "ает", "ют", "ут", "ит", "ет",
	"ов", "ев", "ей", "ий", "ый", "ой", "ая", "ое", "ие",
	"ом", "ем", "ам", "ям", "ах", "ях", "ых", "их",
	"ал", "ил", "ел", "ол", "ул", "ть", "ся", "сь",
}

var enSuffixes = []string{
	"tion", "ness", "ment", "able", "ible", "ious", "eous",
	"ing", "ous", "ful", "ive", "ity", "ent", "ant", "ion",
	"ism", "ist", "ory", "ary", "ery", "ure", "age", "ise", "ize",
	"ly", "er", "ed", "es", "al", "en", "ty", "or", "ic", "le", "s",
}
