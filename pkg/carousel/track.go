package carousel

import "fmt"

// Owner identifies the single component allowed to write the track offset.
type Owner int

const (
	// OwnerAnimator is the navigator's animation path. It owns the track
	// whenever no drag is active.
	OwnerAnimator Owner = iota
	// OwnerGesture is the gesture tracker during a drag.
	OwnerGesture
)

func (o Owner) String() string {
	switch o {
	case OwnerAnimator:
		return "animator"
	case OwnerGesture:
		return "gesture"
	default:
		return fmt.Sprintf("Owner(%d)", int(o))
	}
}

// Track holds the authoritative horizontal offset. Writes from anyone but
// the current owner are dropped.
type Track struct {
	offset float64
	owner  Owner
}

// Offset returns the current offset in percent of viewport width.
func (t *Track) Offset() float64 {
	return t.offset
}

// Owner returns the current write owner.
func (t *Track) Owner() Owner {
	return t.owner
}

func (t *Track) acquire(o Owner) {
	t.owner = o
}

func (t *Track) write(o Owner, offset float64) bool {
	if o != t.owner {
		return false
	}
	t.offset = offset
	return true
}
