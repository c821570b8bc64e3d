package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/virpom/caesar-cipher-cracker/internal/cracker"
)

// =====================
// Оформление вывода
// =====================

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	promptColor = color.New(color.FgWhite, color.Bold)
	dimColor    = color.New(color.Faint)
	goodColor   = color.New(color.FgGreen, color.Bold)
	warnColor   = color.New(color.FgYellow, color.Bold)
	badColor    = color.New(color.FgRed, color.Bold)
	labelColor  = color.New(color.FgMagenta)
)

const previewWidth = 60

func printHeader() {
	headerColor.Println("╔══════════════════════════════════════╗")
	headerColor.Println("║        CAESAR CIPHER CRACKER         ║")
	headerColor.Println("╚══════════════════════════════════════╝")
}

func printInfo(dictSize int, plain bool, langName string) {
	dimColor.Printf("Словарь: %d слов | Язык: %s\n", dictSize, langName)
	if plain {
		warnColor.Println("Текст похож на незашифрованный")
	}
	fmt.Println()
}

// confColor подбирает цвет под величину достоверности.
func confColor(conf float64) *color.Color {
	switch {
	case conf >= 80:
		return goodColor
	case conf >= 50:
		return warnColor
	}
	return badColor
}

func printSingle(best cracker.ShiftResult, alternatives []cracker.ShiftResult) {
	labelColor.Println("── Результат ──")
	fmt.Printf("Сдвиг: %d | Достоверность: %s\n",
		best.Shift, confColor(best.Confidence()).Sprintf("%.1f%%", best.Confidence()))
	dimColor.Printf("χ²=%.1f биграммы=%.2f словарь=%.2f (%d/%d) основы=%.2f\n",
		best.ChiSquared, best.BigramScore, best.DictScore,
		best.Matches, best.TotalWords, best.StemScore)
	fmt.Println()
	fmt.Println(best.Text)

	if len(alternatives) < 2 {
		return
	}
	fmt.Println()
	labelColor.Println("── Другие варианты ──")
	for _, r := range alternatives[1:] {
		dimColor.Printf("  сдвиг %2d (%5.1f%%): %s\n",
			r.Shift, r.Confidence(), preview(r.Text))
	}
}

func printMixed(segments []cracker.Segment) {
	labelColor.Printf("── Смешанный шифр: %d сегмента(ов) ──\n", len(segments))
	for i, s := range segments {
		conf := s.Best.Confidence()
		fmt.Printf("  [%d] позиции %d..%d, сдвиг %d, достоверность %s\n",
			i+1, s.Start, s.End, s.Best.Shift,
			confColor(conf).Sprintf("%.1f%%", conf))
	}
	fmt.Println()
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s.Text)
	}
	fmt.Println(sb.String())
}

func printBilingual(parts []bilingualPart, dictSize int) {
	dimColor.Printf("Словарь: %d слов\n", dictSize)
	labelColor.Printf("── Двуязычный текст: %d части(ей) ──\n", len(parts))
	for i, p := range parts {
		conf := p.best.Confidence()
		fmt.Printf("  [%d] %s, сдвиг %d, достоверность %s\n",
			i+1, strings.ToUpper(p.seg.Lang), p.best.Shift,
			confColor(conf).Sprintf("%.1f%%", conf))
	}
	fmt.Println()
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.best.Text)
	}
	fmt.Println(sb.String())
}

// preview обрезает текст до одной строки фиксированной ширины с учётом
// реальной ширины символов в терминале.
func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return runewidth.Truncate(s, previewWidth, "…")
}
