package lines

import "sort"

// Set is an unordered collection of distinct lines.
type Set map[string]struct{}

// Dedupe returns the distinct elements of items. Input order is not kept.
func Dedupe(items []string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Len returns the number of distinct lines.
func (s Set) Len() int {
	return len(s)
}

// Has reports whether line is in the set.
func (s Set) Has(line string) bool {
	_, ok := s[line]
	return ok
}

// Items returns the lines in map iteration order, which is unspecified and
// varies between calls.
func (s Set) Items() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	return items
}

// Sorted returns the lines in ascending byte order.
func (s Set) Sorted() []string {
	items := s.Items()
	sort.Strings(items)
	return items
}
