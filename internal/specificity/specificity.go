// Package specificity computes and compares CSS selector specificity.
//
// A Specificity is the (a, b, c) triple the cascade uses to rank selectors:
// a counts ID selectors, b counts class, attribute and pseudo-class
// selectors, c counts type selectors and pseudo-elements. Triples are
// compared positionally, most significant component first.
package specificity

import (
	"encoding/json"
	"fmt"
)

// Specificity is a selector weight. The zero value is (0,0,0).
type Specificity struct {
	a int
	b int
	c int
}

// New returns the specificity (a, b, c).
func New(a, b, c int) Specificity {
	return Specificity{a: a, b: b, c: c}
}

// Increase adds the three deltas to the receiver in place.
func (s *Specificity) Increase(a, b, c int) {
	s.a += a
	s.b += b
	s.c += c
}

// Add returns s with other accumulated into it. s is left unchanged.
func (s Specificity) Add(other Specificity) Specificity {
	s.Increase(other.a, other.b, other.c)
	return s
}

// Values returns the counters in a, b, c order.
func (s Specificity) Values() [3]int {
	return [3]int{s.a, s.b, s.c}
}

// CompareTo returns a negative number when other ranks higher, zero when
// both rank the same and a positive number when s ranks higher. Only the
// sign of the result is meaningful.
func (s Specificity) CompareTo(other Specificity) int {
	if s.a != other.a {
		return s.a - other.a
	}
	if s.b != other.b {
		return s.b - other.b
	}
	return s.c - other.c
}

// Less reports whether s ranks strictly below other.
func (s Specificity) Less(other Specificity) bool {
	return s.CompareTo(other) < 0
}

// Equal reports whether s and other rank the same.
func (s Specificity) Equal(other Specificity) bool {
	return s.CompareTo(other) == 0
}

// Max returns the highest ranked value, or (0,0,0) when values is empty.
func Max(values ...Specificity) Specificity {
	var best Specificity
	for i, v := range values {
		if i == 0 || v.CompareTo(best) > 0 {
			best = v
		}
	}
	return best
}

func (s Specificity) String() string {
	return fmt.Sprintf("%d,%d,%d", s.a, s.b, s.c)
}

// MarshalJSON encodes s as [a, b, c].
func (s Specificity) MarshalJSON() ([]byte, error) {
	v := s.Values()
	return json.Marshal(v[:])
}

// UnmarshalJSON decodes a three element array.
func (s *Specificity) UnmarshalJSON(data []byte) error {
	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("specificity: %w", err)
	}
	if len(v) != 3 {
		return fmt.Errorf("specificity: want 3 values, got %d", len(v))
	}
	*s = New(v[0], v[1], v[2])
	return nil
}

// MarshalYAML encodes s as the sequence a, b, c.
func (s Specificity) MarshalYAML() (interface{}, error) {
	v := s.Values()
	return v[:], nil
}
