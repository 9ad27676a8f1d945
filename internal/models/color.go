package models

import (
	"math/rand"
	"strconv"
	"strings"
)

// palette mirrors the accent colors used by the schedule board.
var palette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#84CC16", "#F97316", "#EC4899", "#6366F1",
}

// RandomColor picks a pseudo-random display color from the palette.
func RandomColor() string {
	return palette[rand.Intn(len(palette))]
}

// ContrastColor returns black or white depending on the luminance of the
// given hex background color, for readable lesson cards.
func ContrastColor(hexColor string) string {
	color := strings.TrimPrefix(hexColor, "#")
	if len(color) < 6 {
		return "#000000"
	}
	r, _ := strconv.ParseInt(color[0:2], 16, 32)
	g, _ := strconv.ParseInt(color[2:4], 16, 32)
	b, _ := strconv.ParseInt(color[4:6], 16, 32)

	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	if luminance > 0.5 {
		return "#000000"
	}
	return "#FFFFFF"
}
