package core

import "testing"

func TestNextHead_WrapsAtEdges(t *testing.T) {
	g := NewGrid(10)

	tests := []struct {
		name string
		from Cell
		dir  Direction
		want Cell
	}{
		{"right interior", Cell{3, 4}, DirRight, Cell{3, 5}},
		{"right edge", Cell{3, 9}, DirRight, Cell{3, 0}},
		{"left interior", Cell{3, 4}, DirLeft, Cell{3, 3}},
		{"left edge", Cell{3, 0}, DirLeft, Cell{3, 9}},
		{"up interior", Cell{3, 4}, DirUp, Cell{2, 4}},
		{"up edge", Cell{0, 4}, DirUp, Cell{9, 4}},
		{"down interior", Cell{3, 4}, DirDown, Cell{4, 4}},
		{"down edge", Cell{9, 4}, DirDown, Cell{0, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.NextHead(tt.from, tt.dir); got != tt.want {
				t.Errorf("NextHead(%v, %v) = %v, want %v", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestNextHead_BijectionPerDirection(t *testing.T) {
	for _, size := range []int{1, 2, 7, 10} {
		g := NewGrid(size)
		for _, d := range Directions {
			seen := make(map[Cell]bool, g.Area())
			for i := 0; i < g.Area(); i++ {
				next := g.NextHead(g.At(i), d)
				if !g.Contains(next) {
					t.Fatalf("size %d %v: %v escaped grid", size, d, next)
				}
				if seen[next] {
					t.Fatalf("size %d %v: %v reached twice", size, d, next)
				}
				seen[next] = true
			}
			if len(seen) != g.Area() {
				t.Errorf("size %d %v: image has %d cells, want %d", size, d, len(seen), g.Area())
			}
		}
	}
}

func TestNextHead_InversePairs(t *testing.T) {
	g := NewGrid(10)
	for i := 0; i < g.Area(); i++ {
		c := g.At(i)
		for _, d := range Directions {
			if back := g.NextHead(g.NextHead(c, d), d.Opposite()); back != c {
				t.Errorf("%v then %v from %v landed on %v", d, d.Opposite(), c, back)
			}
		}
	}
}

func TestNextHead_InvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero Direction")
		}
	}()
	NewGrid(10).NextHead(Cell{}, Direction(0))
}

func TestGrid_IndexRoundTrip(t *testing.T) {
	g := NewGrid(6)
	for i := 0; i < g.Area(); i++ {
		if got := g.Index(g.At(i)); got != i {
			t.Errorf("Index(At(%d)) = %d", i, got)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}
	for alias, want := range map[string]Direction{"r": DirRight, " L ": DirLeft, "u": DirUp, "D": DirDown} {
		if got, ok := ParseDirection(alias); !ok || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v", alias, got, ok)
		}
	}
	if _, ok := ParseDirection(""); ok {
		t.Error("expected empty name to be rejected")
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("expected unknown name to be rejected")
	}
	if Direction(0).Valid() || Direction(9).Valid() {
		t.Error("out of range directions reported valid")
	}
}
