package content

import (
	_ "embed"
	"math/rand"
	"strings"
)

// Art blocks embedded from files. Each block is pre-rendered with its ANSI
// color codes and is printed verbatim, never decorated.

//go:embed art/crystal_ball.txt
var artCrystalBall string

//go:embed art/lucky_cat.txt
var artLuckyCat string

//go:embed art/comet.txt
var artComet string

// ArtBlocks contains all the available art blocks.
var ArtBlocks []string

// RandomArt returns a randomly selected art block.
func RandomArt() string {
	return ArtBlocks[rand.Intn(len(ArtBlocks))]
}

func init() {
	// Trailing newlines are stripped so every block renders the same way
	// regardless of how the source file ends.
	for _, block := range []string{
		artCrystalBall,
		artLuckyCat,
		artComet,
	} {
		ArtBlocks = append(ArtBlocks, strings.TrimRight(block, "\n"))
	}
}
