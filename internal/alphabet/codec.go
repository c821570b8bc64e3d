package alphabet

// =====================
// Шифр сдвига
// =====================

// Decrypt сдвигает каждую букву алфавита на shift позиций назад, сохраняя
// регистр. Символы вне алфавита (знаки, цифры, буквы другого языка)
// проходят без изменений. Обратная операция: Decrypt(t, k) ↔ Decrypt(t, Size-k).
func (p *Profile) Decrypt(text string, shift int) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		idx := p.index(r)
		if idx < 0 {
			out = append(out, r)
			continue
		}
		ni := ((idx-shift)%p.Size + p.Size) % p.Size
		nr := p.fromIndex(ni)
		if p.isUpper(r) {
			nr = p.toUpper(nr)
		}
		out = append(out, nr)
	}
	return string(out)
}

// Encrypt — прямой сдвиг на shift позиций вперёд.
func (p *Profile) Encrypt(text string, shift int) string {
	return p.Decrypt(text, -shift)
}
