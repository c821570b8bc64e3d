package dictionary

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"

	"github.com/virpom/caesar-cipher-cracker/internal/alphabet"
	"github.com/virpom/caesar-cipher-cracker/pkg/options"
)

// =====================
// Поиск и загрузка файла словаря
// =====================

// findWordlist ищет файл словаря: в каталогах из настроек, иначе рядом с
// бинарём, в текущем каталоге и в HOME. Возвращает "" если не нашли.
func findWordlist(name string, opts options.DictOptions) string {
	dirs := opts.SearchDirs
	if len(dirs) == 0 {
		if exe, err := os.Executable(); err == nil {
			dirs = append(dirs, filepath.Dir(exe))
		}
		dirs = append(dirs, ".")
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, home)
		}
	}
	for _, dir := range dirs {
		p := filepath.Join(dir, name)
		if fi, err := os.Stat(p); err == nil && fi.Size() > opts.MinFileSize {
			return p
		}
	}
	return ""
}

// loadWordlist читает список слов через mmap: словари бывают на миллионы
// строк, и копировать их в кучу целиком незачем. Строки обрезаются от
// хвостовых пробелов и CR, фильтруются по длине и алфавиту, приводятся к
// нижнему регистру.
func loadWordlist(path string, p *alphabet.Profile, opts options.DictOptions, dst Set) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("открытие: %v", err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mmap: %v", err)
	}
	defer m.Unmap()

	// Unmap должен получить исходный срез, поэтому по файлу идём
	// отдельным курсором.
	data := []byte(m)
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		line = bytes.TrimRight(line, " \r\t")
		if len(line) == 0 {
			continue
		}
		if w, ok := cleanWord(string(line), p, opts); ok {
			dst.add(w)
		}
	}
	return nil
}

// cleanWord проверяет слово из файла: длина в кодовых точках, только буквы
// профиля, нижний регистр.
func cleanWord(line string, p *alphabet.Profile, opts options.DictOptions) (string, bool) {
	rs := []rune(line)
	if len(rs) < opts.MinWordLen || len(rs) > opts.MaxWordLen {
		return "", false
	}
	for i, r := range rs {
		r = p.ToLower(r)
		if !p.IsLetter(r) {
			return "", false
		}
		rs[i] = r
	}
	return string(rs), true
}
