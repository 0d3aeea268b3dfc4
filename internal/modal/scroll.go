package modal

// Overflow value applied to the document body while a dialog holds the lock.
const lockedOverflow = "hidden"

// Document is the shared, document-level scroll flag (the body overflow style).
// Each lock remembers the value it replaced; releasing restores exactly that value
// to whatever now sits above it, so out-of-order releases keep the chain intact.
type Document struct {
	overflow string
	holds    []*hold
}

type hold struct {
	prev string
}

// NewDocument starts with the given baseline overflow ("" means the browser default).
func NewDocument(baseline string) *Document {
	return &Document{overflow: baseline}
}

// Overflow returns the current body overflow value.
func (d *Document) Overflow() string { return d.overflow }

// Locked reports whether any dialog currently suspends scrolling.
func (d *Document) Locked() bool { return len(d.holds) > 0 }

// Lock suspends scrolling and returns the matching release func. The release
// func is idempotent.
func (d *Document) Lock() func() {
	h := &hold{prev: d.overflow}
	d.holds = append(d.holds, h)
	d.overflow = lockedOverflow
	released := false
	return func() {
		if released {
			return
		}
		released = true
		d.unlock(h)
	}
}

func (d *Document) unlock(h *hold) {
	idx := -1
	for i, cur := range d.holds {
		if cur == h {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if idx == len(d.holds)-1 {
		d.overflow = h.prev
		d.holds = d.holds[:idx]
		return
	}
	// released out of order: the hold above inherits the value to restore
	d.holds[idx+1].prev = h.prev
	d.holds = append(d.holds[:idx], d.holds[idx+1:]...)
}
