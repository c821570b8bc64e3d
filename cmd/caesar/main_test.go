package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimPiped(t *testing.T) {
	assert.Equal(t, "текст", trimPiped("текст\n"))
	assert.Equal(t, "текст", trimPiped("текст \r\n"))
	assert.Equal(t, "  текст", trimPiped("  текст\n"),
		"ведущие пробелы сохраняются, от них зависят позиции сегментов")
	assert.Equal(t, "а\nб", trimPiped("а\nб\n"))
	assert.Equal(t, "", trimPiped("\n"))
}
