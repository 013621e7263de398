package game

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of the board. Two boards
// have the same fingerprint exactly when they hold the same cards in the same
// places.
func (b *Board) Fingerprint() string {
	sum := blake2b.Sum256(b.canonical())
	return hex.EncodeToString(sum[:])
}

// canonical builds the byte representation hashed by Fingerprint.
func (b *Board) canonical() []byte {
	var buf bytes.Buffer

	for col, column := range b.columns {
		fmt.Fprintf(&buf, "COLUMN:%d|", col)
		for _, c := range column {
			buf.WriteString(c.String())
			buf.WriteByte(' ')
		}
		buf.WriteByte('\n')
	}
	for slot, c := range b.sideboard {
		fmt.Fprintf(&buf, "SIDEBOARD:%d|%s\n", slot, c)
	}
	for _, s := range card.Suits {
		fmt.Fprintf(&buf, "PILE:%c|%d\n", s.Letter(), b.piles.Highest(s))
	}
	fmt.Fprintf(&buf, "BONUS:%t\n", b.piles.bonus)

	return buf.Bytes()
}
