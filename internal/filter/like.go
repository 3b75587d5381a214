package filter

// likeMatch reports whether s matches pattern, where '%' and '*' match any run of runes
// and '_' matches exactly one rune. Both inputs are expected to be case-folded.
func likeMatch(pattern, s []rune) bool {
	p, i := 0, 0
	star, mark := -1, 0

	for i < len(s) {
		switch {
		case p < len(pattern) && (pattern[p] == '%' || pattern[p] == '*'):
			star, mark = p, i
			p++
		case p < len(pattern) && (pattern[p] == '_' || pattern[p] == s[i]):
			p++
			i++
		case star >= 0:
			// Let the last wildcard absorb one more rune and retry.
			mark++
			p, i = star+1, mark
		default:
			return false
		}
	}

	for p < len(pattern) && (pattern[p] == '%' || pattern[p] == '*') {
		p++
	}
	return p == len(pattern)
}
