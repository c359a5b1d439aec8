package gen

import "sort"

// NaturalCompare orders strings treating embedded digit runs as numbers, so
// "2x" sorts before "10x". Returns -1, 0, or 1 like strings.Compare.
func NaturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			// Compare the full digit runs numerically. Leading zeros make
			// the runs unequal in length but equal in value; fall back to
			// run length so ordering stays total.
			ia, ja := i, j
			for ia < len(a) && isDigit(a[ia]) {
				ia++
			}
			for ja < len(b) && isDigit(b[ja]) {
				ja++
			}
			na := trimLeadingZeros(a[i:ia])
			nb := trimLeadingZeros(b[j:ja])
			if len(na) != len(nb) {
				if len(na) < len(nb) {
					return -1
				}
				return 1
			}
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
			// equal value; a longer run (leading zeros) sorts after
			if ia-i != ja-j {
				if ia-i < ja-j {
					return -1
				}
				return 1
			}
			i, j = ia, ja
			continue
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	default:
		return 0
	}
}

// SortNatural sorts a string slice in place using NaturalCompare.
func SortNatural(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return NaturalCompare(names[i], names[j]) < 0
	})
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
