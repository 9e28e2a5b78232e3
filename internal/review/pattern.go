package review

import (
	"fmt"
	"regexp"
	"strings"
)

// Slot is one role position in a pattern set, one per originally loaded
// file. The pattern is plain regex text with a single capture group for the
// radix; users may edit it, so Slot always keeps the last pattern that
// compiled.
type Slot struct {
	Remainder string
	Pattern   string
	re        *regexp.Regexp
}

// PatternSet is the radix template plus one slot pattern per loaded file.
// Slot count and order are fixed for a session's lifetime.
type PatternSet struct {
	Dir   string
	Radix string
	Slots []Slot
}

// BuildPatternSet turns an extraction into slot patterns. Each remainder is
// escaped literally except that digit runs are generalized to a digit class,
// so incidental numeric variation inside a remainder does not break
// matching. Generated patterns always compile.
func BuildPatternSet(ex Extraction) PatternSet {
	slots := make([]Slot, len(ex.Remainders))
	for i, rem := range ex.Remainders {
		text := "^(.*)" + generalizeRemainder(rem) + "$"
		slots[i] = Slot{
			Remainder: rem,
			Pattern:   text,
			re:        regexp.MustCompile(text),
		}
	}
	return PatternSet{Dir: ex.Dir, Radix: ex.Radix, Slots: slots}
}

// generalizeRemainder escapes pattern metacharacters in a remainder and
// replaces every embedded digit run with [0-9]+.
func generalizeRemainder(rem string) string {
	var b strings.Builder
	i := 0
	for i < len(rem) {
		if isDigit(rem[i]) {
			for i < len(rem) && isDigit(rem[i]) {
				i++
			}
			b.WriteString("[0-9]+")
			continue
		}
		start := i
		for i < len(rem) && !isDigit(rem[i]) {
			i++
		}
		b.WriteString(regexp.QuoteMeta(rem[start:i]))
	}
	return b.String()
}

// SetPattern replaces the slot's pattern text. An invalid pattern (bad
// syntax, or no capture group to carry the radix) is rejected and the slot
// keeps its previous pattern.
func (s *Slot) SetPattern(text string) error {
	re, err := compilePattern(text)
	if err != nil {
		return err
	}
	s.Pattern = text
	s.re = re
	return nil
}

func compilePattern(text string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("%w: pattern %q has no radix capture group", ErrInvalidPattern, text)
	}
	return re, nil
}

// match tests a directory entry name against the slot pattern and returns
// the captured radix.
func (s *Slot) match(name string) (string, bool) {
	if s.re == nil {
		return "", false
	}
	m := s.re.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Clone returns an independent copy of the pattern set.
func (p PatternSet) Clone() PatternSet {
	out := p
	out.Slots = make([]Slot, len(p.Slots))
	copy(out.Slots, p.Slots)
	return out
}

// PatternTexts returns the editable pattern text per slot, in slot order.
func (p PatternSet) PatternTexts() []string {
	texts := make([]string, len(p.Slots))
	for i, s := range p.Slots {
		texts[i] = s.Pattern
	}
	return texts
}
