package board

import (
	"testing"

	"github.com/matzehuels/shadowboard/pkg/errors"
)

func TestCellCenter(t *testing.T) {
	tests := []struct {
		cell Cell
		want Point
	}{
		{Cell{Row: 0, Col: 0}, Point{X: -10, Y: 10}},
		{Cell{Row: 2, Col: 2}, Point{X: 0, Y: 0}},
		{Cell{Row: 4, Col: 4}, Point{X: 10, Y: -10}},
		{Cell{Row: 3, Col: 3}, Point{X: 5, Y: -5}},
	}

	for _, tt := range tests {
		if got := tt.cell.Center(); got != tt.want {
			t.Errorf("%+v.Center() = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestCellLabel(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Cell{Row: 0, Col: 0}, "A5"},
		{Cell{Row: 4, Col: 0}, "A1"},
		{Cell{Row: 2, Col: 2}, "C3"},
		{Cell{Row: 3, Col: 3}, "D2"},
		{Cell{Row: 4, Col: 4}, "E1"},
	}

	for _, tt := range tests {
		if got := tt.cell.Label(); got != tt.want {
			t.Errorf("%+v.Label() = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		input   string
		want    Cell
		wantErr bool
	}{
		{"C3", Cell{Row: 2, Col: 2}, false},
		{"c2", Cell{Row: 3, Col: 2}, false},
		{" e5 ", Cell{Row: 0, Col: 4}, false},
		{"A1", Cell{Row: 4, Col: 0}, false},

		{"", Cell{}, true},
		{"F1", Cell{}, true},
		{"A0", Cell{}, true},
		{"A6", Cell{}, true},
		{"C10", Cell{}, true},
		{"3C", Cell{}, true},
	}

	for _, tt := range tests {
		got, err := ParseCell(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCell(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ParseCell(%q) code = %v, want INVALID_INPUT", tt.input, errors.GetCode(err))
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCell(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParseCellRoundTrip(t *testing.T) {
	for _, c := range Cells() {
		got, err := ParseCell(c.Label())
		if err != nil {
			t.Fatalf("ParseCell(%q): %v", c.Label(), err)
		}
		if got != c {
			t.Errorf("ParseCell(%q) = %+v, want %+v", c.Label(), got, c)
		}
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		input   string
		want    Point
		wantErr bool
	}{
		{"0,0", Point{0, 0}, false},
		{"5,-5", Point{5, -5}, false},
		{" 2.5 , 7 ", Point{2.5, 7}, false},

		{"", Point{}, true},
		{"1", Point{}, true},
		{"1,2,3", Point{}, true},
		{"x,1", Point{}, true},
		{"1,NaN", Point{}, true},
	}

	for _, tt := range tests {
		got, err := ParsePoint("block", tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePoint(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil {
			if errors.Arg(err) != "block" {
				t.Errorf("ParsePoint(%q) arg = %q, want block", tt.input, errors.Arg(err))
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePoint(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCells(t *testing.T) {
	cells := Cells()
	if len(cells) != Size*Size {
		t.Fatalf("len(Cells()) = %d, want %d", len(cells), Size*Size)
	}
	if cells[0] != (Cell{0, 0}) || cells[24] != (Cell{4, 4}) {
		t.Errorf("Cells() not in row-major order: first %v, last %v", cells[0], cells[24])
	}
	for _, c := range cells {
		if !c.Valid() {
			t.Errorf("%+v should be valid", c)
		}
	}
	if (Cell{Row: 5}).Valid() || (Cell{Col: -1}).Valid() {
		t.Error("off-board cells should be invalid")
	}
}
