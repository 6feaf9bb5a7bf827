package record

import (
	"regexp"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// statusMarker classifies a raw line: lines carrying it are treated as
// structured status records, everything else passes through as plain
// diagnostic text.
const statusMarker = `"status"`

// Fallback patterns for lines that carry the status marker but are not
// valid JSON (truncated records, interleaved writes). Each field is
// extracted independently so one corrupt field cannot suppress the rest.
var (
	statusPattern = regexp.MustCompile(`"status"\s*:\s*(-?\d+)`)
	stringPattern = map[string]*regexp.Regexp{
		"model": regexp.MustCompile(`"model"\s*:\s*"([^"]*)"`),
		"date":  regexp.MustCompile(`"date"\s*:\s*"([^"]*)"`),
		"raw":   regexp.MustCompile(`"raw"\s*:\s*"([^"]*)"`),
	}
	pctPattern = map[string]*regexp.Regexp{
		"left":  regexp.MustCompile(`"left"\s*:\s*(-?\d+)`),
		"right": regexp.MustCompile(`"right"\s*:\s*(-?\d+)`),
		"case":  regexp.MustCompile(`"case"\s*:\s*(-?\d+)`),
	}
	chargingPattern = map[string]*regexp.Regexp{
		"left":  regexp.MustCompile(`"charging_left"\s*:\s*true`),
		"right": regexp.MustCompile(`"charging_right"\s*:\s*true`),
		"case":  regexp.MustCompile(`"charging_case"\s*:\s*true`),
	}
)

// IsStructured reports whether a raw scanner line should be parsed as
// a status record. Lines without the status marker are plain
// diagnostic output.
func IsStructured(line string) bool {
	return strings.Contains(line, statusMarker)
}

// Parse extracts a Record from a structured line. Parsing is tolerant
// per field: a missing or malformed field yields that field's absent
// value and never rejects the whole record.
func Parse(line string) Record {
	var fields map[string]any
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return parseLoose(line)
	}

	rec := Record{
		Left:  Unknown,
		Right: Unknown,
		Case:  Unknown,
	}

	if status, ok := intField(fields["status"]); ok {
		rec.Online = status == 1
	}
	rec.Model, _ = fields["model"].(string)
	rec.Timestamp, _ = fields["date"].(string)
	rec.Raw, _ = fields["raw"].(string)

	// Battery slots appear either nested under "charge" or at the top
	// level, depending on the scanner path that produced the record.
	slots := fields
	if charge, ok := fields["charge"].(map[string]any); ok {
		slots = charge
	}
	rec.Left = pctField(slots["left"])
	rec.Right = pctField(slots["right"])
	rec.Case = pctField(slots["case"])

	rec.ChargingLeft, _ = fields["charging_left"].(bool)
	rec.ChargingRight, _ = fields["charging_right"].(bool)
	rec.ChargingCase, _ = fields["charging_case"].(bool)

	return rec
}

// parseLoose recovers fields from a malformed structured line with
// per-field pattern matches.
func parseLoose(line string) Record {
	rec := Record{
		Left:  Unknown,
		Right: Unknown,
		Case:  Unknown,
	}

	if m := statusPattern.FindStringSubmatch(line); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			rec.Online = v == 1
		}
	}
	if m := stringPattern["model"].FindStringSubmatch(line); m != nil {
		rec.Model = m[1]
	}
	if m := stringPattern["date"].FindStringSubmatch(line); m != nil {
		rec.Timestamp = m[1]
	}
	if m := stringPattern["raw"].FindStringSubmatch(line); m != nil {
		rec.Raw = m[1]
	}

	if m := pctPattern["left"].FindStringSubmatch(line); m != nil {
		rec.Left = clampPct(m[1])
	}
	if m := pctPattern["right"].FindStringSubmatch(line); m != nil {
		rec.Right = clampPct(m[1])
	}
	if m := pctPattern["case"].FindStringSubmatch(line); m != nil {
		rec.Case = clampPct(m[1])
	}

	rec.ChargingLeft = chargingPattern["left"].MatchString(line)
	rec.ChargingRight = chargingPattern["right"].MatchString(line)
	rec.ChargingCase = chargingPattern["case"].MatchString(line)

	return rec
}

// intField coerces a decoded JSON value to an int. JSON numbers decode
// as float64.
func intField(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// pctField coerces a decoded JSON value to a battery percentage.
// Anything non-numeric or outside [0,100] is Unknown; the scanner's -1
// sentinel falls out of the same range check.
func pctField(v any) int {
	n, ok := intField(v)
	if !ok || n < 0 || n > 100 {
		return Unknown
	}
	return n
}

func clampPct(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return Unknown
	}
	return n
}
