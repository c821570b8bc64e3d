// Package config читает необязательный файл настроек caesar.toml.
// Отсутствующий файл — не ошибка: работают значения по умолчанию.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/virpom/caesar-cipher-cracker/internal/cracker"
)

type Dictionary struct {
	Dirs    []string `toml:"dirs"`    // каталоги поиска словарей
	Russian string   `toml:"russian"` // имя файла русского словаря
	English string   `toml:"english"` // имя файла английского словаря
}

type Redis struct {
	Addr     string `toml:"addr"` // пусто = пользовательский словарь выключен
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type Mixed struct {
	WindowSize int `toml:"window_size"`
	MinSegment int `toml:"min_segment"`
}

type Config struct {
	Dictionary Dictionary `toml:"dictionary"`
	Redis      Redis      `toml:"redis"`
	Mixed      Mixed      `toml:"mixed"`
}

func Default() Config {
	c := cracker.DefaultConfig()
	return Config{
		Dictionary: Dictionary{
			Russian: "russian_dict.txt",
			English: "english_dict.txt",
		},
		Mixed: Mixed{
			WindowSize: c.WindowSize,
			MinSegment: c.MinSegment,
		},
	}
}

// Load читает файл настроек. path == "" — ищем caesar.toml рядом с бинарём
// и в ~/.config/caesar/; если файла нет, возвращаются значения по умолчанию.
// Явно указанный путь обязан существовать.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = discover()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return cfg, fmt.Errorf("настройки %s: %v", path, err)
	}
	return cfg, nil
}

// candidates перечисляет возможные расположения caesar.toml. Переменная,
// чтобы тесты подставляли собственный список.
var candidates = func() []string {
	var out []string
	if exe, err := os.Executable(); err == nil {
		out = append(out, filepath.Join(filepath.Dir(exe), "caesar.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		out = append(out, filepath.Join(home, ".config", "caesar", "caesar.toml"))
	}
	return out
}

func discover() string {
	for _, p := range candidates() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// CrackerConfig переносит настройки в конфигурацию анализатора.
func (c Config) CrackerConfig() cracker.Config {
	out := cracker.DefaultConfig()
	if c.Mixed.WindowSize > 0 {
		out.WindowSize = c.Mixed.WindowSize
	}
	if c.Mixed.MinSegment > 0 {
		out.MinSegment = c.Mixed.MinSegment
	}
	return out
}
