// Package options содержит настройки загрузки словарей.
package options

var DefaultOptions = DictOptions{
	RussianFile: "russian_dict.txt",
	EnglishFile: "english_dict.txt",
	MinWordLen:  2,
	MaxWordLen:  50,
	MinFileSize: 100, // файлы меньше считаем мусором
}

type DictOptions struct {
	SearchDirs  []string // каталоги поиска; пусто = рядом с бинарём, CWD, HOME
	RussianFile string
	EnglishFile string
	MinWordLen  int
	MaxWordLen  int
	MinFileSize int64
}

type Options interface {
	Apply(options *DictOptions)
}

type FuncConfig struct {
	ops func(options *DictOptions)
}

func (w FuncConfig) Apply(conf *DictOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *DictOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithSearchDirs(dirs ...string) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.SearchDirs = dirs
	})
}

func WithRussianFile(name string) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.RussianFile = name
	})
}

func WithEnglishFile(name string) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.EnglishFile = name
	})
}

func WithWordLength(minLen, maxLen int) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.MinWordLen = minLen
		options.MaxWordLen = maxLen
	})
}

func WithMinFileSize(size int64) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.MinFileSize = size
	})
}
