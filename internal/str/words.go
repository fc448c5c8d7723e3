//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import "sort"

// WCList - sorts by count desc and then alphabetically
type WCList []WordCount

func (w WCList) Len() int {
	return len(w)
}

func (w WCList) Less(i, j int) bool {
	if w[i].Count != w[j].Count {
		return w[i].Count > w[j].Count
	}
	return w[i].Word < w[j].Word
}

func (w WCList) Swap(i, j int) {
	w[i], w[j] = w[j], w[i]
}

type WPLessFunc func(p1, p2 *WordPair) bool

// WPMultiSorter - sort []WordPair by a cascade of comparisons
type WPMultiSorter struct {
	changes []WordPair
	less    []WPLessFunc
}

func WPOrderedBy(less ...WPLessFunc) *WPMultiSorter {
	return &WPMultiSorter{
		less: less,
	}
}

func (ms *WPMultiSorter) Sort(changes []WordPair) {
	ms.changes = changes
	sort.Sort(ms)
}

// Len is part of sort.Interface.
func (ms *WPMultiSorter) Len() int {
	return len(ms.changes)
}

// Swap is part of sort.Interface.
func (ms *WPMultiSorter) Swap(i, j int) {
	ms.changes[i], ms.changes[j] = ms.changes[j], ms.changes[i]
}

func (ms *WPMultiSorter) Less(i, j int) bool {
	p, q := &ms.changes[i], &ms.changes[j]
	// Try all but the last comparison.
	var k int
	for k = 0; k < len(ms.less)-1; k++ {
		less := ms.less[k]
		switch {
		case less(p, q):
			// p < q, so we have a decision.
			return true
		case less(q, p):
			// p > q, so we have a decision.
			return false
		}
		// p == q; try the next comparison.
	}
	// All comparisons to here said "equal", so just return whatever
	// the final comparison reports.
	return ms.less[k](p, q)
}

// SortPairs - n desc, item1 asc, item2 asc
func SortPairs(pp []WordPair) {
	byn := func(p1, p2 *WordPair) bool { return p1.N > p2.N }
	byone := func(p1, p2 *WordPair) bool { return p1.Item1 < p2.Item1 }
	bytwo := func(p1, p2 *WordPair) bool { return p1.Item2 < p2.Item2 }
	WPOrderedBy(byn, byone, bytwo).Sort(pp)
}
