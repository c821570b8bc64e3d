// Package dictionary загружает и отдаёт словари известных слов для
// лингвистического анализа. Источники: файл со списком слов (по одному на
// строку), встроенный минимальный набор и, опционально, пользовательские
// слова из Redis. Любой источник может отсутствовать — словарь деградирует,
// но остаётся рабочим.
package dictionary

import (
	"context"
	"log"
	"sync"

	"github.com/virpom/caesar-cipher-cracker/internal/alphabet"
	"github.com/virpom/caesar-cipher-cracker/pkg/options"
)

// Set — множество слов в нижнем регистре. Только чтение после загрузки.
type Set map[string]struct{}

func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Set) Size() int { return len(s) }

func (s Set) add(word string) { s[word] = struct{}{} }

// Dictionary лениво загружает словари по языкам. Загрузка каждого языка
// выполняется ровно один раз; после неё множества не мутируют, поэтому
// читать их можно из любых горутин.
type Dictionary struct {
	opts  options.DictOptions
	store *Store // может быть nil

	ruOnce sync.Once
	enOnce sync.Once
	ru     Set
	en     Set
}

// New создаёт словарь. store может быть nil — тогда пользовательские слова
// не подмешиваются.
func New(store *Store, opts ...options.Options) *Dictionary {
	conf := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&conf)
	}
	return &Dictionary{opts: conf, store: store}
}

// FromSets собирает словарь из готовых множеств; удобно в тестах и там, где
// загрузка с диска не нужна.
func FromSets(ru, en Set) *Dictionary {
	d := &Dictionary{}
	d.ruOnce.Do(func() {})
	d.enOnce.Do(func() {})
	if ru == nil {
		ru = Set{}
	}
	if en == nil {
		en = Set{}
	}
	d.ru, d.en = ru, en
	return d
}

// Words возвращает множество слов для языка профиля.
func (d *Dictionary) Words(p *alphabet.Profile) Set {
	if p == alphabet.English {
		d.enOnce.Do(func() { d.en = d.load(p, d.opts.EnglishFile, builtinEnglish) })
		return d.en
	}
	d.ruOnce.Do(func() { d.ru = d.load(p, d.opts.RussianFile, builtinRussian) })
	return d.ru
}

// Size — суммарный объём обоих словарей (загружает оба).
func (d *Dictionary) Size() int {
	return d.Words(alphabet.Russian).Size() + d.Words(alphabet.English).Size()
}

func (d *Dictionary) load(p *alphabet.Profile, filename string, builtin []string) Set {
	set := Set{}
	if path := findWordlist(filename, d.opts); path != "" {
		if err := loadWordlist(path, p, d.opts, set); err != nil {
			log.Printf("словарь %s: %v (работаем без файла)", path, err)
		}
	}
	for _, w := range builtin {
		set.add(w)
	}
	if d.store != nil {
		words, err := d.store.All(context.Background(), p.Lang)
		if err != nil {
			log.Printf("пользовательский словарь (%s): %v", p.Lang, err)
		}
		for _, w := range words {
			set.add(lowercase(w, p))
		}
	}
	return set
}

func lowercase(word string, p *alphabet.Profile) string {
	rs := []rune(word)
	for i, r := range rs {
		rs[i] = p.ToLower(r)
	}
	return string(rs)
}
