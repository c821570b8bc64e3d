package dictionary

// Встроенный минимум: самые частотные слова, чтобы анализ работал даже без
// файла словаря.

var builtinRussian = []string{
	"и", "в", "не", "на", "он", "что", "как", "а", "то", "все",
	"она", "так", "его", "но", "да", "ты", "же", "вы", "за", "бы",
	"по", "от", "из", "для", "это", "мы", "они", "был", "быть",
}

var builtinEnglish = []string{
	"the", "be", "to", "of", "and", "in", "that", "have", "it", "for",
	"not", "on", "with", "he", "as", "you", "do", "at", "this", "but",
	"his", "by", "from", "they", "we", "say", "her", "she", "or", "an",
	"will", "my", "one", "all", "would", "there", "their", "what", "so",
	"if", "about", "who", "get", "which", "go", "when", "can", "no",
}
