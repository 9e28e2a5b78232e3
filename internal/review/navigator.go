package review

// Navigator owns the active review session and turns navigation requests
// into resolved file sets. All operations run to completion on the caller's
// goroutine; an operation either fully succeeds, replacing session state, or
// fully fails, leaving the prior session untouched.
type Navigator struct {
	minSlots int
	session  *session
}

type session struct {
	patterns PatternSet
	radixes  []string
	index    int
}

// Snapshot is the full session view reported to the caller after every
// state-changing operation.
type Snapshot struct {
	Dir      string
	Radix    string   // current radix, "" when nothing was discovered
	Radixes  []string
	Index    int      // -1 when Radixes is empty
	Patterns []string // editable pattern text, one per slot
	Labels   []string // display label per slot
	Resolved []string // one path-or-empty per slot for the current radix
}

// NewNavigator creates an inactive navigator. minSlots <= 0 selects
// DefaultMinSlots.
func NewNavigator(minSlots int) *Navigator {
	if minSlots <= 0 {
		minSlots = DefaultMinSlots
	}
	return &Navigator{minSlots: minSlots}
}

// Active reports whether a review session exists.
func (n *Navigator) Active() bool { return n.session != nil }

// Activate derives a pattern set from the currently loaded files, discovers
// every matching file-set in their directory and positions the session at
// the radix of the loaded set when present, else at the first.
func (n *Navigator) Activate(paths []string) (Snapshot, error) {
	ses, err := n.buildSession(paths)
	if err != nil {
		return Snapshot{}, err
	}
	n.session = ses
	return n.snapshot(), nil
}

// Recompute re-derives the pattern set from the (possibly changed) loaded
// files, discarding all prior radixes. It requires an active session; a
// failure keeps the prior session.
func (n *Navigator) Recompute(paths []string) (Snapshot, error) {
	if n.session == nil {
		return Snapshot{}, ErrInactive
	}
	ses, err := n.buildSession(paths)
	if err != nil {
		return Snapshot{}, err
	}
	n.session = ses
	return n.snapshot(), nil
}

func (n *Navigator) buildSession(paths []string) (*session, error) {
	ex, err := Extract(paths)
	if err != nil {
		return nil, err
	}
	set := BuildPatternSet(ex)
	radixes, err := Scan(ex.Dir, set, n.minSlots)
	if err != nil {
		return nil, err
	}
	index := 0
	for i, r := range radixes {
		if r == ex.Radix {
			index = i
			break
		}
	}
	return &session{patterns: set, radixes: radixes, index: index}, nil
}

// Navigate moves the current position by delta steps with no wraparound:
// stepping past either end leaves the index and resolved set unchanged.
func (n *Navigator) Navigate(delta int) (Snapshot, error) {
	if n.session == nil {
		return Snapshot{}, ErrInactive
	}
	next := n.session.index + delta
	if next >= 0 && next < len(n.session.radixes) {
		n.session.index = next
	}
	return n.snapshot(), nil
}

// Refresh re-scans the directory with the current (possibly user-edited)
// patterns without re-deriving the radix template. On a scan failure the
// prior radix list is retained. The position follows the current radix when
// it survives the rescan, otherwise the index is clamped into range.
func (n *Navigator) Refresh() (Snapshot, error) {
	if n.session == nil {
		return Snapshot{}, ErrInactive
	}
	ses := n.session
	radixes, err := Scan(ses.patterns.Dir, ses.patterns, n.minSlots)
	if err != nil {
		return n.snapshot(), err
	}
	current := ses.currentRadix()
	oldIndex := ses.index
	ses.radixes = radixes
	ses.index = -1
	for i, r := range radixes {
		if r == current {
			ses.index = i
			break
		}
	}
	if ses.index < 0 {
		// Current radix vanished: keep the old position, clamped into the
		// new range.
		ses.index = oldIndex
		if ses.index >= len(radixes) {
			ses.index = len(radixes) - 1
		}
		if ses.index < 0 {
			ses.index = 0
		}
	}
	return n.snapshot(), nil
}

// SetSlotPattern applies user-edited pattern text to one slot. An invalid
// pattern is rejected with ErrInvalidPattern and the slot keeps its last
// valid pattern.
func (n *Navigator) SetSlotPattern(slot int, text string) error {
	if n.session == nil {
		return ErrInactive
	}
	if slot < 0 || slot >= len(n.session.patterns.Slots) {
		return ErrInvalidPattern
	}
	return n.session.patterns.Slots[slot].SetPattern(text)
}

// Deactivate discards the session entirely.
func (n *Navigator) Deactivate() { n.session = nil }

// Current returns a snapshot of the active session without changing it.
func (n *Navigator) Current() (Snapshot, error) {
	if n.session == nil {
		return Snapshot{}, ErrInactive
	}
	return n.snapshot(), nil
}

func (s *session) currentRadix() string {
	if len(s.radixes) == 0 {
		return ""
	}
	return s.radixes[s.index]
}

func (n *Navigator) snapshot() Snapshot {
	ses := n.session
	labels := make([]string, len(ses.patterns.Slots))
	for i, slot := range ses.patterns.Slots {
		labels[i] = Label(slot.Remainder)
	}
	snap := Snapshot{
		Dir:      ses.patterns.Dir,
		Radixes:  append([]string(nil), ses.radixes...),
		Index:    -1,
		Patterns: ses.patterns.PatternTexts(),
		Labels:   labels,
		Resolved: make([]string, len(ses.patterns.Slots)),
	}
	if len(ses.radixes) == 0 {
		return snap
	}
	snap.Index = ses.index
	snap.Radix = ses.radixes[ses.index]
	snap.Resolved = ResolveSet(ses.patterns.Dir, snap.Radix, ses.patterns)
	return snap
}
