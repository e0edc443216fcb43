package frame

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// -------------------------------------------------------------------------
// Levels

// Levels is a set of normalized values which remembers the order in
// which the values were added.
type Levels struct {
	elems  []interface{}
	seen   map[interface{}]struct{}
	hasNaN bool
}

func NewLevels() *Levels {
	return &Levels{seen: make(map[interface{}]struct{})}
}

// Add adds x to l and reports whether x was new.
func (l *Levels) Add(x interface{}) bool {
	if f, ok := x.(float64); ok && math.IsNaN(f) {
		if l.hasNaN {
			return false
		}
		l.hasNaN = true
		l.elems = append(l.elems, x)
		return true
	}
	if _, ok := l.seen[x]; ok {
		return false
	}
	l.seen[x] = struct{}{}
	l.elems = append(l.elems, x)
	return true
}

// Contains reports membership of x in l.
func (l *Levels) Contains(x interface{}) bool {
	if f, ok := x.(float64); ok && math.IsNaN(f) {
		return l.hasNaN
	}
	_, ok := l.seen[x]
	return ok
}

func (l *Levels) Len() int { return len(l.elems) }

// Elements returns the levels in insertion order.
func (l *Levels) Elements() []interface{} {
	elems := make([]interface{}, len(l.elems))
	copy(elems, l.elems)
	return elems
}

// SortLevels sorts normalized values in place: numbers ascending first,
// then strings. Strings which hold an integer, optionally prefixed by
// "chr", sort numerically among themselves so that "chr2" < "chr10".
func SortLevels(levels []interface{}) {
	sort.SliceStable(levels, func(i, j int) bool {
		return levelLess(levels[i], levels[j])
	})
}

func levelLess(a, b interface{}) bool {
	fa, aNum := Float(a)
	fb, bNum := Float(b)
	switch {
	case aNum && bNum:
		return fa < fb
	case aNum:
		return true
	case bNum:
		return false
	}

	sa, sb := fmt.Sprint(a), fmt.Sprint(b)
	na, aErr := chromNumber(sa)
	nb, bErr := chromNumber(sb)
	switch {
	case aErr == nil && bErr == nil:
		if na != nb {
			return na < nb
		}
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	}
	return sa < sb
}

func chromNumber(s string) (int64, error) {
	if len(s) > 3 && strings.EqualFold(s[:3], "chr") {
		s = s[3:]
	}
	return strconv.ParseInt(s, 10, 64)
}
