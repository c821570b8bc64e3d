package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/virpom/caesar-cipher-cracker/internal/alphabet"
)

var flagShift int

var encodeCmd = &cobra.Command{
	Use:   "encode [текст...]",
	Short: "Зашифровать текст заданным сдвигом",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) > 0 {
			text = strings.Join(args, " ")
		} else if !term.IsTerminal(int(os.Stdin.Fd())) {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("чтение stdin: %v", err)
			}
			text = trimPiped(string(data))
		} else {
			return fmt.Errorf("текст передаётся аргументом или через pipe")
		}

		p := alphabet.ByLang(flagLang)
		if flagLang == "" {
			// без явного языка выбираем алфавит по содержимому
			ru, en := 0, 0
			for _, r := range text {
				if alphabet.Russian.IsLetter(r) {
					ru++
				} else if alphabet.English.IsLetter(r) {
					en++
				}
			}
			if en > ru {
				p = alphabet.English
			} else {
				p = alphabet.Russian
			}
		}
		fmt.Println(p.Encrypt(text, flagShift))
		return nil
	},
}

func init() {
	encodeCmd.Flags().IntVarP(&flagShift, "shift", "s", 3, "величина сдвига")
}
