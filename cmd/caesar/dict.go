package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/virpom/caesar-cipher-cracker/internal/alphabet"
	"github.com/virpom/caesar-cipher-cracker/internal/config"
	"github.com/virpom/caesar-cipher-cracker/internal/dictionary"
)

// =====================
// Пользовательский словарь (Redis)
// =====================

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Пользовательский словарь в Redis",
	Long:  "Добавление и удаление слов, которые учитываются при оценке кандидатов наравне со встроенным словарём.",
}

func init() {
	dictCmd.AddCommand(dictAddCmd, dictRemoveCmd, dictCountCmd)
}

// buildStore подключается к Redis; для команд dict адрес обязателен.
func buildStore() (*dictionary.Store, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	addr := redisAddr(cfg)
	if addr == "" {
		return nil, fmt.Errorf("Redis не настроен: задайте REDIS_ADDR или redis.addr в caesar.toml")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: getenv("REDIS_PASSWORD", cfg.Redis.Password),
		DB:       getenvInt("REDIS_DB", cfg.Redis.DB),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis %s недоступен: %v", addr, err)
	}
	return dictionary.NewStore(client), nil
}

func dictLang() string {
	if flagLang == "en" {
		return "en"
	}
	return "ru"
}

var dictAddCmd = &cobra.Command{
	Use:   "add <слово>...",
	Short: "Добавить слова в словарь",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := buildStore()
		if err != nil {
			return err
		}
		lang := dictLang()
		p := alphabet.ByLang(lang)
		ctx := context.Background()
		added := 0
		for _, w := range args {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" || !allLetters(w, p) {
				warnColor.Printf("пропущено: %q (не слово языка %s)\n", w, lang)
				continue
			}
			if err := store.Add(ctx, lang, w); err != nil {
				return err
			}
			added++
		}
		goodColor.Printf("Добавлено слов: %d\n", added)
		return nil
	},
}

var dictRemoveCmd = &cobra.Command{
	Use:   "remove <слово>...",
	Short: "Удалить слова из словаря",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := buildStore()
		if err != nil {
			return err
		}
		lang := dictLang()
		ctx := context.Background()
		for _, w := range args {
			if err := store.Remove(ctx, lang, strings.ToLower(strings.TrimSpace(w))); err != nil {
				return err
			}
		}
		goodColor.Printf("Удалено слов: %d\n", len(args))
		return nil
	},
}

var dictCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Количество пользовательских слов",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := buildStore()
		if err != nil {
			return err
		}
		n, err := store.Count(context.Background(), dictLang())
		if err != nil {
			return err
		}
		fmt.Printf("Слов в пользовательском словаре (%s): %d\n", dictLang(), n)
		return nil
	},
}

func allLetters(w string, p *alphabet.Profile) bool {
	for _, r := range w {
		if !p.IsLetter(r) {
			return false
		}
	}
	return true
}
