package calc

import "testing"

func TestPaintQuantity(t *testing.T) {
	cases := []struct {
		name string
		in   PaintInput
		want PaintResult
	}{
		{
			name: "single wall one coat",
			in:   PaintInput{WallWidth: 5, WallHeight: 2, Walls: 1, Coats: 1},
			want: PaintResult{Area: 10, Liters: 1, Cans: 1},
		},
		{
			name: "four walls two coats",
			in:   PaintInput{WallWidth: 4, WallHeight: 2.5, Walls: 4, Coats: 2},
			want: PaintResult{Area: 40, Liters: 8, Cans: 2},
		},
		{
			name: "openings subtracted",
			in:   PaintInput{WallWidth: 4, WallHeight: 2.5, Walls: 1, OpeningsArea: 2, Coats: 1},
			want: PaintResult{Area: 8, Liters: 0.8, Cans: 1},
		},
		{
			name: "openings larger than wall clamp to zero",
			in:   PaintInput{WallWidth: 2, WallHeight: 2, Walls: 1, OpeningsArea: 100, Coats: 1},
			want: PaintResult{Area: 0, Liters: 0, Cans: 0},
		},
		{
			name: "liters round up to a tenth",
			in:   PaintInput{WallWidth: 3.7, WallHeight: 2.8, Walls: 1, Coats: 1},
			// 10.36 m² / 10 = 1.036 L, up to 1.1
			want: PaintResult{Area: 10.36, Liters: 1.1, Cans: 1},
		},
		{
			name: "small can size needs more cans",
			in:   PaintInput{WallWidth: 5, WallHeight: 2, Walls: 4, Coats: 1, CanSizeL: 1},
			want: PaintResult{Area: 40, Liters: 4, Cans: 4},
		},
		{
			name: "zero walls and coats default to one",
			in:   PaintInput{WallWidth: 5, WallHeight: 2},
			want: PaintResult{Area: 10, Liters: 1, Cans: 1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PaintQuantity(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("want %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestPaintQuantity_RejectsBadDimensions(t *testing.T) {
	if _, err := PaintQuantity(PaintInput{WallWidth: 0, WallHeight: 2}); err == nil {
		t.Fatal("zero width must error")
	}
	if _, err := PaintQuantity(PaintInput{WallWidth: 3, WallHeight: -1}); err == nil {
		t.Fatal("negative height must error")
	}
}

func TestParseHex(t *testing.T) {
	good := map[string]RGB{
		"#FFFFFF":   {255, 255, 255},
		"ffffff":    {255, 255, 255},
		"#abc":      {0xAA, 0xBB, 0xCC},
		" #1A2b3C ": {0x1A, 0x2B, 0x3C},
	}
	for in, want := range good {
		got, err := ParseHex(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: want %+v, got %+v", in, want, got)
		}
	}

	for _, in := range []string{"", "#12", "#12345", "#gggggg", "not a color"} {
		if _, err := ParseHex(in); err == nil {
			t.Fatalf("%q should be rejected", in)
		}
	}
}

func TestOverlay(t *testing.T) {
	white := RGB{255, 255, 255}
	red := RGB{255, 0, 0}

	if got := Overlay(white, red, 0); got != white {
		t.Fatalf("opacity 0 keeps the base, got %+v", got)
	}
	if got := Overlay(white, red, 1); got != red {
		t.Fatalf("opacity 1 is the paint, got %+v", got)
	}
	half := Overlay(white, red, 0.5)
	if half.R != 255 || half.G != 128 || half.B != 128 {
		t.Fatalf("half blend wrong: %+v", half)
	}
	// Out-of-range opacity clamps instead of wrapping.
	if got := Overlay(white, red, 2); got != red {
		t.Fatalf("opacity >1 clamps to 1, got %+v", got)
	}
}

func TestVisualizeWall(t *testing.T) {
	got, err := VisualizeWall("#FFFFFF", "#FF0000", 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got != "#FF8080" {
		t.Fatalf("want #FF8080, got %q", got)
	}
	if _, err := VisualizeWall("junk", "#FF0000", 1); err == nil {
		t.Fatal("bad base color must error")
	}
	if _, err := VisualizeWall("#FFFFFF", "junk", 1); err == nil {
		t.Fatal("bad paint color must error")
	}
}
