package main

import "testing"

func TestParseSizes(t *testing.T) {
	got, err := parseSizes("1080x720, 800x600,")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != [2]float64{1080, 720} || got[1] != [2]float64{800, 600} {
		t.Fatalf("unexpected sizes %v", got)
	}
	if _, err := parseSizes("1080"); err == nil {
		t.Fatal("expected an error for a size without x")
	}
	if _, err := parseSizes("ax2"); err == nil {
		t.Fatal("expected an error for a bad width")
	}
}

func TestParseInts(t *testing.T) {
	got, err := parseInts("5, 15,40")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 5 || got[2] != 40 {
		t.Fatalf("unexpected counts %v", got)
	}
	if _, err := parseInts("five"); err == nil {
		t.Fatal("expected a parse error")
	}
}
