package num

import "golang.org/x/exp/constraints"

// trimWords strips most-significant zero words, always leaving at least one
// word. It returns a subslice of words.
func trimWords[W constraints.Unsigned](words []W) []W {
	n := len(words)
	for n > 1 && words[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []W{0}
	}
	return words[:n]
}

// trimRoot folds the top extension word into the root for as long as the
// root's sign extension already implies it. It returns a subslice of ext.
func trimRoot[S constraints.Signed, U constraints.Unsigned](root S, ext []U) (S, []U) {
	for len(ext) > 0 {
		top := ext[len(ext)-1]
		if !redundantTop(root, top) {
			break
		}
		root = S(top)
		ext = ext[:len(ext)-1]
	}
	return root, ext
}

// redundantTop reports whether top, sitting directly under root, could be
// folded into it: a zero root over a word with a clear sign bit, or a -1 root
// over a word with the sign bit set.
func redundantTop[S constraints.Signed, U constraints.Unsigned](root S, top U) bool {
	neg := top>>(WordBits[U]()-1) != 0
	return (root == 0 && !neg) || (root == -1 && neg)
}

func wordsCanonical[W constraints.Unsigned](words []W) bool {
	return len(words) > 0 && (len(words) == 1 || words[len(words)-1] != 0)
}

func rootCanonical[S constraints.Signed, U constraints.Unsigned](root S, ext []U) bool {
	return len(ext) == 0 || !redundantTop(root, ext[len(ext)-1])
}

func checkWidth[S constraints.Signed, U constraints.Unsigned]() {
	if WordBits[S]() != WordBits[U]() {
		panic("num: root and extension word widths differ")
	}
}
