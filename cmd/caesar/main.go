// Команда caesar подбирает ключ шифра сдвига без его знания: перебор
// ключей с многоуровневой оценкой, определение языка, разбор двуязычных
// и смешанных (несколько ключей) текстов.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/virpom/caesar-cipher-cracker/internal/alphabet"
	"github.com/virpom/caesar-cipher-cracker/internal/config"
	"github.com/virpom/caesar-cipher-cracker/internal/cracker"
	"github.com/virpom/caesar-cipher-cracker/internal/dictionary"
	"github.com/virpom/caesar-cipher-cracker/pkg/options"
)

var (
	flagRaw    bool
	flagMixed  bool
	flagLang   string
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:   "caesar [текст...]",
	Short: "Автоматическая дешифровка шифра Цезаря",
	Long: `Caesar Cipher Cracker — взлом шифра сдвига без известного ключа.

Текст передаётся аргументами, через pipe или вводится интерактивно
(пустая строка завершает ввод).`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runCrack,
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&flagLang, "lang", "l", "", "принудительно задать язык: ru или en")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "путь к файлу настроек caesar.toml")
	rootCmd.Flags().BoolVarP(&flagRaw, "raw", "r", false, "вывести только расшифрованный текст")
	rootCmd.Flags().BoolVarP(&flagMixed, "mixed", "m", false, "принудительно проверить смешанный шифр")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(dictCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildAnalyzer собирает зависимости: настройки, словарь (файлы +
// пользовательские слова из Redis, если задан адрес) и анализатор.
func buildAnalyzer() (*cracker.Analyzer, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	var store *dictionary.Store
	if addr := redisAddr(cfg); addr != "" {
		store = dictionary.NewStore(redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: getenv("REDIS_PASSWORD", cfg.Redis.Password),
			DB:       getenvInt("REDIS_DB", cfg.Redis.DB),
		}))
	}

	dictOpts := []options.Options{
		options.WithRussianFile(cfg.Dictionary.Russian),
		options.WithEnglishFile(cfg.Dictionary.English),
	}
	if len(cfg.Dictionary.Dirs) > 0 {
		dictOpts = append(dictOpts, options.WithSearchDirs(cfg.Dictionary.Dirs...))
	}

	dict := dictionary.New(store, dictOpts...)
	return cracker.NewWithConfig(dict, cfg.CrackerConfig()), nil
}

func redisAddr(cfg config.Config) string {
	return getenv("REDIS_ADDR", cfg.Redis.Addr)
}

// readText возвращает текст и признак автоматического (неинтерактивного)
// режима: аргументы, затем pipe, затем интерактивный многострочный ввод.
func readText(args []string) (string, bool, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), true, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", true, fmt.Errorf("чтение stdin: %v", err)
		}
		return trimPiped(string(data)), true, nil
	}
	if flagRaw {
		return "", false, fmt.Errorf("в режиме --raw текст передаётся аргументом или через pipe")
	}
	printHeader()
	return askMultiline("Введите зашифрованный текст:"), false, nil
}

func askMultiline(prompt string) string {
	promptColor.Println(prompt)
	dimColor.Println("(пустая строка = конец ввода)")
	var lines []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func confirm(question string) bool {
	fmt.Printf("%s (y/n): ", question)
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(sc.Text())) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}

func runCrack(cmd *cobra.Command, args []string) error {
	text, auto, err := readText(args)
	if err != nil {
		return err
	}
	switch strings.ToLower(text) {
	case "", "exit", "quit", "q":
		return nil
	}

	analyzer, err := buildAnalyzer()
	if err != nil {
		return err
	}
	detector := cracker.NewMixedDetector(analyzer)

	forced := flagLang != ""
	profile := alphabet.ByLang(flagLang)
	if !forced {
		profile = analyzer.DetectProfile(text)
	}

	// Двуязычный текст: режем по языкам и взламываем части независимо
	if !forced && analyzer.IsBilingual(text) {
		parts := crackBilingual(analyzer, text)
		if flagRaw {
			for _, p := range parts {
				fmt.Print(p.best.Text)
			}
			fmt.Println()
			return nil
		}
		if auto {
			printHeader()
		}
		printBilingual(parts, analyzer.Dictionary().Size())
		return nil
	}

	if flagRaw {
		return runRaw(analyzer, detector, text, profile)
	}

	if auto {
		printHeader()
	}

	isPlain := analyzer.IsPlaintext(text)
	printInfo(analyzer.Dictionary().Size(), isPlain, profile.Name)

	if isPlain && !auto {
		if !confirm("Текст похож на незашифрованный. Продолжить?") {
			return nil
		}
	}

	results := analyzer.Crack(text, profile)
	best := results[0]

	useMixed := flagMixed
	if !useMixed && best.Confidence() < 60 && len([]rune(text)) > 60 {
		if auto {
			useMixed = true
		} else {
			useMixed = confirm(fmt.Sprintf("Достоверность низкая (%.0f%%). Проверить смешанный шифр?", best.Confidence()))
		}
	}

	if useMixed {
		segments := detector.Detect(text, profile)
		if cracker.IsMixed(segments) {
			printMixed(segments)
			return nil
		}
	}
	printSingle(best, top(results, 5))
	return nil
}

func runRaw(analyzer *cracker.Analyzer, detector *cracker.MixedDetector, text string, profile *alphabet.Profile) error {
	results := analyzer.Crack(text, profile)
	best := results[0]

	if flagMixed || (best.Confidence() < 60 && len([]rune(text)) > 60) {
		segments := detector.Detect(text, profile)
		if cracker.IsMixed(segments) {
			for _, s := range segments {
				fmt.Print(s.Text)
			}
			fmt.Println()
			return nil
		}
	}
	fmt.Println(best.Text)
	return nil
}

type bilingualPart struct {
	seg  cracker.LangSegment
	best cracker.ShiftResult
}

func crackBilingual(analyzer *cracker.Analyzer, text string) []bilingualPart {
	var parts []bilingualPart
	for _, seg := range cracker.SplitByLanguage(text) {
		p := alphabet.ByLang(seg.Lang)
		best := analyzer.Crack(seg.Text, p)[0]
		parts = append(parts, bilingualPart{seg: seg, best: best})
	}
	return parts
}

func top(results []cracker.ShiftResult, n int) []cracker.ShiftResult {
	if len(results) < n {
		return results
	}
	return results[:n]
}

// trimPiped убирает только хвостовые пробелы и переводы строк: ведущие
// символы остаются, чтобы позиции сегментов совпадали с введённым текстом.
func trimPiped(s string) string {
	return strings.TrimRight(s, " \r\n")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
