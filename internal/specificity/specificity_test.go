package specificity

import (
	"encoding/json"
	"testing"
)

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestZeroValue(t *testing.T) {
	var s Specificity
	if got := s.Values(); got != [3]int{0, 0, 0} {
		t.Errorf("zero value = %v, want [0 0 0]", got)
	}
	if got := New(1, 2, 3).Values(); got != [3]int{1, 2, 3} {
		t.Errorf("New(1, 2, 3).Values() = %v", got)
	}
}

func TestIncrease(t *testing.T) {
	var s Specificity
	s.Increase(1, 2, 3)
	s.Increase(1, 0, 0)
	if got := s.Values(); got != [3]int{2, 2, 3} {
		t.Errorf("Values() = %v, want [2 2 3]", got)
	}
}

func TestAddLeavesReceiver(t *testing.T) {
	s := New(0, 1, 0)
	sum := s.Add(New(1, 1, 1))
	if got := sum.Values(); got != [3]int{1, 2, 1} {
		t.Errorf("Add() = %v, want [1 2 1]", got)
	}
	if got := s.Values(); got != [3]int{0, 1, 0} {
		t.Errorf("receiver changed to %v", got)
	}
}

func TestCompareTo(t *testing.T) {
	tests := []struct {
		name        string
		left, right Specificity
		want        int
	}{
		{"equal", New(1, 2, 3), New(1, 2, 3), 0},
		{"zero", Specificity{}, New(0, 0, 0), 0},
		{"id beats classes and types", New(1, 0, 0), New(0, 100, 100), 1},
		{"class beats types", New(0, 1, 0), New(0, 0, 100), 1},
		{"more types", New(0, 0, 2), New(0, 0, 1), 1},
		{"fewer ids", New(1, 9, 9), New(2, 0, 0), -1},
		{"ten ids never equal one class", New(0, 1, 0), New(10, 0, 0), -1},
		{"b decides", New(3, 1, 9), New(3, 2, 0), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sign(tt.left.CompareTo(tt.right)); got != tt.want {
				t.Errorf("sign(%v.CompareTo(%v)) = %d, want %d", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestCompareToTotalAndAntisymmetric(t *testing.T) {
	var values []Specificity
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				values = append(values, New(a, b, c))
			}
		}
	}
	for _, x := range values {
		for _, y := range values {
			xy := sign(x.CompareTo(y))
			yx := sign(y.CompareTo(x))
			if xy != -yx {
				t.Errorf("%v vs %v: %d and %d are not opposite", x, y, xy, yx)
			}
			if (xy == 0) != (x.Values() == y.Values()) {
				t.Errorf("%v vs %v: compare = %d", x, y, xy)
			}
		}
	}
}

func TestLessEqual(t *testing.T) {
	if !New(0, 0, 1).Less(New(0, 1, 0)) {
		t.Error("expected (0,0,1) < (0,1,0)")
	}
	if New(0, 1, 0).Less(New(0, 1, 0)) {
		t.Error("equal values must not be Less")
	}
	if !New(2, 0, 1).Equal(New(2, 0, 1)) {
		t.Error("expected equal")
	}
}

func TestMax(t *testing.T) {
	if got := Max(); got.Values() != [3]int{} {
		t.Errorf("Max() = %v, want 0,0,0", got)
	}
	got := Max(New(0, 5, 0), New(1, 0, 0), New(0, 0, 9))
	if got.Values() != [3]int{1, 0, 0} {
		t.Errorf("Max() = %v, want 1,0,0", got)
	}
}

func TestString(t *testing.T) {
	if got := New(1, 20, 3).String(); got != "1,20,3" {
		t.Errorf("String() = %q", got)
	}
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		S Specificity `json:"s"`
	}{New(1, 2, 3)})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"s":[1,2,3]}` {
		t.Errorf("Marshal = %s", data)
	}

	var s Specificity
	if err := json.Unmarshal([]byte(`[4,5,6]`), &s); err != nil {
		t.Fatal(err)
	}
	if s.Values() != [3]int{4, 5, 6} {
		t.Errorf("Unmarshal = %v", s)
	}
	if err := json.Unmarshal([]byte(`[1,2]`), &s); err == nil {
		t.Error("expected error for short array")
	}
}
