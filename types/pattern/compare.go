package pattern

// LessDFS is the DFS order on edge codes. It orders candidate
// extensions of a common parent, where the newest edge code alone is
// distinctive: backward codes come before forward ones, backward codes
// sort by target index then edge label, and forward codes explore the
// deepest source first.
func LessDFS(a, b *EdgeCode) bool {
	af, bf := a.IsForward(), b.IsForward()
	if !af && bf {
		return true
	}
	if af && !bf {
		return false
	}
	if !af {
		if a.Dst != b.Dst {
			return a.Dst < b.Dst
		}
		return a.EdgeLabel < b.EdgeLabel
	}
	if a.Src != b.Src {
		return a.Src > b.Src
	}
	if a.SrcLabel != b.SrcLabel {
		return a.SrcLabel < b.SrcLabel
	}
	if a.EdgeLabel != b.EdgeLabel {
		return a.EdgeLabel < b.EdgeLabel
	}
	return a.DstLabel < b.DstLabel
}

// LessLex is the plain lexicographic order on the full 5-tuple.
func LessLex(a, b *EdgeCode) bool {
	if a.Src != b.Src {
		return a.Src < b.Src
	}
	if a.Dst != b.Dst {
		return a.Dst < b.Dst
	}
	if a.SrcLabel != b.SrcLabel {
		return a.SrcLabel < b.SrcLabel
	}
	if a.EdgeLabel != b.EdgeLabel {
		return a.EdgeLabel < b.EdgeLabel
	}
	return a.DstLabel < b.DstLabel
}

// EqualsDFS reports DFS-order equivalence: neither code precedes the
// other. For sibling extensions this coincides with full equality of
// both indices and all three labels.
func EqualsDFS(a, b *EdgeCode) bool {
	return !LessDFS(a, b) && !LessDFS(b, a)
}
