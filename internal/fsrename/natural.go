package fsrename

import (
	"runtime"
	"sort"
	"strings"
)

// NaturalLess orders names the way people count: "file2" before "file10".
// Letters compare case insensitively.
func NaturalLess(a, b string) bool {
	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		ca, cb := a[ai], b[bi]
		if isDigit(ca) && isDigit(cb) {
			startA, startB := ai, bi
			for ai < len(a) && isDigit(a[ai]) {
				ai++
			}
			for bi < len(b) && isDigit(b[bi]) {
				bi++
			}

			numA := strings.TrimLeft(a[startA:ai], "0")
			numB := strings.TrimLeft(b[startB:bi], "0")
			if len(numA) != len(numB) {
				return len(numA) < len(numB)
			}
			if numA != numB {
				return numA < numB
			}
			// same value, fewer leading zeros first
			if ai-startA != bi-startB {
				return ai-startA < bi-startB
			}
			continue
		}

		la, lb := lower(ca), lower(cb)
		if la != lb {
			return la < lb
		}
		ai++
		bi++
	}
	return len(a)-ai < len(b)-bi
}

// SortNatural sorts names in place with NaturalLess
func SortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return NaturalLess(names[i], names[j])
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func caseInsensitiveFS() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

// fsKey returns the key two names collide under on this platform
func fsKey(name string) string {
	if caseInsensitiveFS() {
		return strings.ToLower(name)
	}
	return name
}
