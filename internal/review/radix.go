package review

import (
	"path/filepath"
	"strings"
)

// Characters treated as name-part separators when deciding where a radix
// ends: shot_001_diffuse.jpg, img-001-left.png, shot_001.jpg.
const sepChars = "_-."

// Extraction is the result of analyzing a seed set of filenames: the shared
// radix and each file's remainder after it, in input order.
type Extraction struct {
	Dir        string
	Radix      string
	Remainders []string
}

// Extract derives the shared radix and per-file remainders from two or more
// absolute file paths. All paths must live in one directory.
//
// The radix boundary is decided in this order:
//  1. longest common prefix of the filenames, byte-wise and case-sensitive;
//  2. trailing separators are trimmed off the radix so remainders keep
//     their leading separator;
//  3. a boundary that falls mid-word (every name continues with a
//     non-separator) walks back to the last separator in the prefix;
//  4. a digit run split by the boundary is retracted entirely: digits that
//     do not agree across all seeds cannot identify a set. A digit run that
//     ends identically in every seed stays in the radix (shot_001).
func Extract(paths []string) (Extraction, error) {
	if len(paths) < 2 {
		return Extraction{}, ErrInsufficientInput
	}

	dir := filepath.Dir(paths[0])
	names := make([]string, len(paths))
	for i, p := range paths {
		if filepath.Dir(p) != dir {
			return Extraction{}, ErrCrossDirectory
		}
		names[i] = filepath.Base(p)
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			// Duplicate names cannot seed distinct slots.
			return Extraction{}, ErrDegenerateInput
		}
		seen[name] = struct{}{}
	}

	radix, err := radixBoundary(names)
	if err != nil {
		return Extraction{}, err
	}

	remainders := make([]string, len(names))
	for i, name := range names {
		remainders[i] = name[len(radix):]
	}
	return Extraction{Dir: dir, Radix: radix, Remainders: remainders}, nil
}

func radixBoundary(names []string) (string, error) {
	prefix := commonPrefix(names)
	if prefix == "" {
		return "", ErrDegenerateInput
	}

	radix := prefix
	switch {
	case isSep(prefix[len(prefix)-1]):
		radix = strings.TrimRight(prefix, sepChars)
	case allContinueNonSep(names, len(prefix)):
		// Mid-word boundary (frame001_v from v1/v2 seeds): walk back to
		// the last separator; the separator joins the remainders.
		pos := strings.LastIndexAny(prefix, sepChars)
		if pos < 0 {
			return "", ErrDegenerateInput
		}
		radix = prefix[:pos]
	}

	if len(radix) > 0 && isDigit(radix[len(radix)-1]) && anyDigitAt(names, len(radix)) {
		for len(radix) > 0 && isDigit(radix[len(radix)-1]) {
			radix = radix[:len(radix)-1]
		}
		radix = strings.TrimRight(radix, sepChars)
	}

	if radix == "" {
		return "", ErrDegenerateInput
	}
	return radix, nil
}

func commonPrefix(names []string) string {
	first := names[0]
	n := len(first)
	for _, name := range names[1:] {
		if len(name) < n {
			n = len(name)
		}
		for i := 0; i < n; i++ {
			if first[i] != name[i] {
				n = i
				break
			}
		}
	}
	return first[:n]
}

// allContinueNonSep reports whether every name has a non-separator character
// at position pos. A name ending exactly at pos counts as a separator-like
// boundary, matching the bare-radix case (shot_001 + shot_001_diffuse.jpg).
func allContinueNonSep(names []string, pos int) bool {
	for _, name := range names {
		if len(name) <= pos || isSep(name[pos]) {
			return false
		}
	}
	return true
}

func anyDigitAt(names []string, pos int) bool {
	for _, name := range names {
		if len(name) > pos && isDigit(name[pos]) {
			return true
		}
	}
	return false
}

func isSep(c byte) bool   { return strings.IndexByte(sepChars, c) >= 0 }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Label derives a display name from a slot remainder: leading separators and
// the file extension are stripped. A bare-extension remainder like ".jpg"
// labels by the extension itself.
func Label(remainder string) string {
	stripped := strings.TrimLeft(remainder, sepChars)
	dot := strings.LastIndexByte(stripped, '.')
	if dot < 0 {
		return stripped
	}
	if dot == 0 {
		return stripped[1:]
	}
	return stripped[:dot]
}
