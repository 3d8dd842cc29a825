package util

// Levenshtein returns the edit distance between two strings (rune-aware).
// Two rolling rows keep allocations at O(len(b)).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := prev[j-1] // substitute
			if ra[i-1] != rb[j-1] {
				cost++
			}
			if d := prev[j] + 1; d < cost { // delete
				cost = d
			}
			if d := curr[j-1] + 1; d < cost { // insert
				cost = d
			}
			curr[j] = cost
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}
