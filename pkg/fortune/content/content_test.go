package content

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	pack, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	listings := []struct {
		name    string
		entries []string
	}{
		{"fun", pack.Fun},
		{"facts", pack.Facts},
		{"valentines", pack.Valentines},
		{"symbols", pack.Symbols},
	}
	for _, l := range listings {
		if len(l.entries) == 0 {
			t.Errorf("embedded pack listing %q is empty", l.name)
		}
		for i, entry := range l.entries {
			if strings.TrimSpace(entry) == "" {
				t.Errorf("listing %q entry %d is blank", l.name, i)
			}
		}
	}
}

func TestValentinesDisjointFromYearRound(t *testing.T) {
	pack, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	yearRound := make(map[string]bool, len(pack.Fun)+len(pack.Facts))
	for _, f := range pack.Fun {
		yearRound[f] = true
	}
	for _, f := range pack.Facts {
		yearRound[f] = true
	}
	for _, v := range pack.Valentines {
		if yearRound[v] {
			t.Errorf("valentine %q duplicates a year-round fortune", v)
		}
	}
}

func TestPaletteTemplates(t *testing.T) {
	tests := []struct {
		name      string
		color     bool
		wantANSI  bool
		wantCount int
	}{
		{name: "color palette", color: true, wantANSI: true, wantCount: 7},
		{name: "plain palette", color: false, wantANSI: false, wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			palette := Palette(tt.color)
			if len(palette) != tt.wantCount {
				t.Fatalf("Palette(%v) has %d templates, want %d", tt.color, len(palette), tt.wantCount)
			}
			for i, template := range palette {
				// Three positional fillers: symbol, text, symbol.
				if got := strings.Count(template, "%s"); got != 3 {
					t.Errorf("template %d has %d fillers, want 3: %q", i, got, template)
				}
				hasANSI := strings.Contains(template, "\033[")
				if hasANSI != tt.wantANSI {
					t.Errorf("template %d ANSI presence = %v, want %v: %q", i, hasANSI, tt.wantANSI, template)
				}
				if tt.wantANSI && !strings.HasSuffix(template, "\033[00m") {
					t.Errorf("template %d does not end with a color reset: %q", i, template)
				}
			}
		})
	}
}

func TestArtBlocks(t *testing.T) {
	if len(ArtBlocks) == 0 {
		t.Fatal("no art blocks embedded")
	}
	for i, block := range ArtBlocks {
		if !strings.Contains(block, "\033[") {
			t.Errorf("art block %d carries no ANSI color codes", i)
		}
		if !strings.Contains(block, "\n") {
			t.Errorf("art block %d is not multi-line", i)
		}
		if strings.HasSuffix(block, "\n") {
			t.Errorf("art block %d has a trailing newline; rendering adds its own", i)
		}
	}
}

func TestRandomArtReturnsKnownBlock(t *testing.T) {
	known := make(map[string]bool, len(ArtBlocks))
	for _, block := range ArtBlocks {
		known[block] = true
	}
	for i := 0; i < 50; i++ {
		if !known[RandomArt()] {
			t.Fatal("RandomArt() returned a block not present in ArtBlocks")
		}
	}
}
