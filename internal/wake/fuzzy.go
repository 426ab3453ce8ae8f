package wake

// editDistanceAtMostOne reports whether a and b are within Levenshtein
// distance one, without allocating a distance matrix. Comparison is per rune.
//
// When lengths differ by one, the two-pointer walk models a single insertion
// or deletion only; a substitution combined with a shift is not classified as
// distance one. That approximation matches the assistant's historical wake
// matching and is pinned by tests.
func editDistanceAtMostOne(a, b string) bool {
	if a == b {
		return true
	}

	ra := []rune(a)
	rb := []rune(b)
	la := len(ra)
	lb := len(rb)
	if la-lb > 1 || lb-la > 1 {
		return false
	}

	if la == lb {
		diff := 0
		for i := 0; i < la; i++ {
			if ra[i] != rb[i] {
				diff++
				if diff > 1 {
					return false
				}
			}
		}
		return true
	}

	// Keep ra the shorter string.
	if la > lb {
		ra, rb = rb, ra
		la, lb = lb, la
	}

	i, j, diff := 0, 0, 0
	for i < la && j < lb {
		if ra[i] == rb[j] {
			i++
			j++
			continue
		}
		diff++
		if diff > 1 {
			return false
		}
		j++
	}
	return true
}
