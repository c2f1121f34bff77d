// Package presenter formats employees for list rows and detail screens.
package presenter

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/rivo/uniseg"
)

// Color is an avatar background colour name.
type Color string

const (
	Blue   Color = "blue"
	Green  Color = "green"
	Orange Color = "orange"
	Purple Color = "purple"
	Red    Color = "red"
	Pink   Color = "pink"
	Indigo Color = "indigo"
	Teal   Color = "teal"
)

// Palette is the fixed set of avatar colours, in selection order.
var Palette = []Color{Blue, Green, Orange, Purple, Red, Pink, Indigo, Teal}

// ColorFor picks an avatar colour from Palette. The same name always gets the same colour.
func ColorFor(name string) Color {
	return Palette[xxhash.Sum64String(name)%uint64(len(Palette))]
}

// InitialsFor returns the first characters of the first two words of name,
// or the first two characters when name is a single word. A character is a
// grapheme cluster, so combining marks stay with their base letter.
func InitialsFor(name string) string {
	words := strings.Fields(name)
	if len(words) > 1 {
		return firstGraphemes(words[0], 1) + firstGraphemes(words[1], 1)
	}

	return firstGraphemes(name, 2)
}

// PhoneSuffix returns the last four characters of phone, as shown on list rows.
func PhoneSuffix(phone string) string {
	const suffixLen = 4

	runes := []rune(phone)
	if len(runes) <= suffixLen {
		return phone
	}

	return string(runes[len(runes)-suffixLen:])
}

func firstGraphemes(s string, n int) string {
	var (
		cluster string
		end     int
	)
	rest, state := s, -1
	for range n {
		if rest == "" {
			break
		}
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		end += len(cluster)
	}

	return s[:end]
}
