package grayscott

import "sort"

// Series names recorded by the driver.
const (
	SeriesFeeder = "feeder"
	SeriesKiller = "killer"
	SeriesFrame  = "frame"
)

// Snapshot is one recorded interior field in row-major order.
type Snapshot struct {
	W, H int
	Data []float64
}

// Frame is one 8-bit normalized image of the killer field.
type Frame struct {
	W, H int
	Pix  []uint8
}

// History is an append-only store of named sequences. Snapshot series
// grow every iteration while frame series grow sparsely, so sequences
// may have different lengths. Entries are never removed or rewritten.
type History struct {
	snapshots map[string][]Snapshot
	frames    map[string][]Frame
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{
		snapshots: make(map[string][]Snapshot),
		frames:    make(map[string][]Frame),
	}
}

// AppendSnapshot extends the named snapshot sequence by one element.
func (h *History) AppendSnapshot(name string, s Snapshot) {
	h.snapshots[name] = append(h.snapshots[name], s)
}

// AppendFrame extends the named frame sequence by one element.
func (h *History) AppendFrame(name string, f Frame) {
	h.frames[name] = append(h.frames[name], f)
}

// Snapshots returns the full sequence recorded under name.
func (h *History) Snapshots(name string) ([]Snapshot, error) {
	s, ok := h.snapshots[name]
	if !ok {
		return nil, ErrUnknownSeries
	}
	return s, nil
}

// Frames returns the full frame sequence recorded under name.
func (h *History) Frames(name string) ([]Frame, error) {
	f, ok := h.frames[name]
	if !ok {
		return nil, ErrUnknownSeries
	}
	return f, nil
}

// Len reports the number of elements recorded under name.
func (h *History) Len(name string) (int, error) {
	if s, ok := h.snapshots[name]; ok {
		return len(s), nil
	}
	if f, ok := h.frames[name]; ok {
		return len(f), nil
	}
	return 0, ErrUnknownSeries
}

// Names lists all recorded series in sorted order.
func (h *History) Names() []string {
	names := make([]string, 0, len(h.snapshots)+len(h.frames))
	for name := range h.snapshots {
		names = append(names, name)
	}
	for name := range h.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
