package record

// Unknown is the sentinel for a battery percentage that could not be
// determined. The scanner emits -1 for slots it cannot decode; any
// value outside [0,100] collapses to this.
const Unknown = -1

// Record is the parsed form of one structured scanner line. It is
// built fresh per input line, never mutated afterwards, and discarded
// after one render pass.
type Record struct {
	// Online is true iff the scanner reported status 1 (a decoded
	// manufacturer frame). Any other value, or no status, is offline.
	Online bool

	// Model is the device display name, empty when the scanner did not
	// report one.
	Model string

	// Timestamp is the scanner-reported observation time, empty when
	// absent (renderers fall back to the current local time).
	Timestamp string

	// Battery percentages per slot; Unknown when absent or out of range.
	Left  int
	Right int
	Case  int

	// Charging flags per slot; false unless explicitly reported true.
	ChargingLeft  bool
	ChargingRight bool
	ChargingCase  bool

	// Raw is the manufacturer payload as reported, untruncated.
	// Renderers truncate it for display.
	Raw string
}
