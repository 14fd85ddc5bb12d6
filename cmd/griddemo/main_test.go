package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestParsePoints(t *testing.T) {
	got, err := parsePoints("15,15; 25,5\t1.5,2")
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]float64{{15, 15}, {25, 5}, {1.5, 2}}
	if len(got) != len(want) {
		t.Fatalf("parsePoints() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}

	if pts, err := parsePoints(""); err != nil || len(pts) != 0 {
		t.Errorf("parsePoints(\"\") = %v, %v, want empty", pts, err)
	}
	for _, bad := range []string{"15", "a,1", "1,b"} {
		if _, err := parsePoints(bad); err == nil {
			t.Errorf("parsePoints(%q) succeeded, want error", bad)
		}
	}
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "grid.png")
	err := run(config{
		rows: 3, columns: 3, cellSize: 10, ratio: 2,
		defaultColor: "white", gridColor: "none", fillColor: "blue",
		// (1, 1) toggled on, (0, 2) toggled on then off, one click off the surface.
		clicks:  "15,15 25,5 25,5 100,100",
		backend: "image",
		output:  out,
	})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("image bounds = %v, want 64x64", b)
	}
	if r, g, b, _ := img.At(30, 30).RGBA(); r != 0 || g != 0 || b != 0xffff {
		t.Errorf("cell (1, 1) = %v, want blue", img.At(30, 30))
	}
	if r, g, b, _ := img.At(50, 10).RGBA(); r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("cell (0, 2) = %v, want white", img.At(50, 10))
	}
}

func TestRunErrors(t *testing.T) {
	base := config{rows: 2, columns: 2, cellSize: 10, ratio: 1,
		defaultColor: "white", gridColor: "black", fillColor: "blue",
		output: filepath.Join(t.TempDir(), "x.png")}

	tests := []struct {
		name   string
		modify func(*config)
	}{
		{"bad default color", func(c *config) { c.defaultColor = "nope" }},
		{"none default color", func(c *config) { c.defaultColor = "none" }},
		{"bad grid color", func(c *config) { c.gridColor = "#12" }},
		{"bad clicks", func(c *config) { c.clicks = "1;2" }},
		{"small cells", func(c *config) { c.cellSize = 4 }},
		{"unknown backend", func(c *config) { c.backend = "nope" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.modify(&cfg)
			if err := run(cfg); err == nil {
				t.Error("run() succeeded, want error")
			}
		})
	}
}
