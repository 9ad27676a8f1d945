package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDay(t *testing.T) {
	assert.Equal(t, 1, ResolveDay("1"))
	assert.Equal(t, 7, ResolveDay(" 7 "))
	assert.Equal(t, 0, ResolveDay("9"))
	assert.Equal(t, 0, ResolveDay("0"))

	assert.Equal(t, 1, ResolveDay("Dushanba"))
	assert.Equal(t, 1, ResolveDay("dushanba"))
	assert.Equal(t, 1, ResolveDay("Du"))
	assert.Equal(t, 5, ResolveDay("juma"))
	assert.Equal(t, 0, ResolveDay("Noma'lum"))
	assert.Equal(t, 0, ResolveDay(""))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Dushanba", DayName(1))
	assert.Equal(t, "Yakshanba", DayName(7))
	assert.Equal(t, "", DayName(0))
	assert.Equal(t, "", DayName(8))
}

func TestContrastColor(t *testing.T) {
	assert.Equal(t, "#FFFFFF", ContrastColor("#3B82F6"))
	assert.Equal(t, "#000000", ContrastColor("#F59E0B"))
	assert.Equal(t, "#000000", ContrastColor("#FFFFFF"))
	assert.Equal(t, "#FFFFFF", ContrastColor("#000000"))
	assert.Equal(t, "#000000", ContrastColor("bad"))
}

func TestRandomColorFromPalette(t *testing.T) {
	color := RandomColor()
	assert.Contains(t, palette, color)
}
