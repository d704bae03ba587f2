package position

import "testing"

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos      Position
		expected string
	}{
		{Position{Filename: "expr.lox", Line: 3, Column: 7}, "expr.lox:3:7"},
		{Position{Filename: "dir/expr.lox", Line: 1, Column: 1}, "expr.lox:1:1"},
		{Position{Line: 2, Column: 5}, "2:5"},
	}

	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.expected {
			t.Errorf("position string wrong. expected=%q, got=%q", tt.expected, got)
		}
	}
}

func TestPositionIsValid(t *testing.T) {
	valid := Position{Line: 1, Column: 1, Offset: 0}
	if !valid.IsValid() {
		t.Error("expected valid position")
	}

	invalid := []Position{
		{Line: 0, Column: 1, Offset: 0},
		{Line: 1, Column: 0, Offset: 0},
		{Line: 1, Column: 1, Offset: -1},
	}
	for i, pos := range invalid {
		if pos.IsValid() {
			t.Errorf("invalid[%d] reported valid: %+v", i, pos)
		}
	}
}

func TestPositionOrdering(t *testing.T) {
	a := Position{Line: 1, Column: 1, Offset: 0}
	b := Position{Line: 1, Column: 5, Offset: 4}

	if !a.Before(b) || b.Before(a) {
		t.Error("Before ordering wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After ordering wrong")
	}
}

func TestSpanString(t *testing.T) {
	oneLine := Span{
		Start: Position{Line: 1, Column: 2, Offset: 1},
		End:   Position{Line: 1, Column: 6, Offset: 5},
	}
	if got := oneLine.String(); got != "1:2-6" {
		t.Errorf("span string wrong. expected=%q, got=%q", "1:2-6", got)
	}

	multiLine := Span{
		Start: Position{Line: 1, Column: 2, Offset: 1},
		End:   Position{Line: 2, Column: 3, Offset: 8},
	}
	if got := multiLine.String(); got != "1:2-2:3" {
		t.Errorf("span string wrong. expected=%q, got=%q", "1:2-2:3", got)
	}
}

func TestSpanContains(t *testing.T) {
	span := Span{
		Start: Position{Line: 1, Column: 1, Offset: 0},
		End:   Position{Line: 1, Column: 6, Offset: 5},
	}

	inside := Position{Line: 1, Column: 3, Offset: 2}
	if !span.Contains(inside) {
		t.Error("expected span to contain inner position")
	}

	// the end position is exclusive
	if span.Contains(span.End) {
		t.Error("expected span to exclude its end position")
	}
}

func TestSpanUnion(t *testing.T) {
	a := Span{
		Start: Position{Line: 1, Column: 1, Offset: 0},
		End:   Position{Line: 1, Column: 2, Offset: 1},
	}
	b := Span{
		Start: Position{Line: 1, Column: 5, Offset: 4},
		End:   Position{Line: 1, Column: 8, Offset: 7},
	}

	u := a.Union(b)
	if u.Start != a.Start || u.End != b.End {
		t.Errorf("union wrong. got=%+v", u)
	}

	// union with an invalid span returns the valid one
	if got := a.Union(Span{}); got != a {
		t.Errorf("union with zero span wrong. got=%+v", got)
	}
}
