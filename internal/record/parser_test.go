package record

import "testing"

func TestIsStructured(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"full record", `{"status": 1,"model":"AirPodsPro"}`, true},
		{"offline record", `{"status": 0,"model":"AirPods not found"}`, true},
		{"plain log text", "random log text without markers", false},
		{"dbus noise", "[DBG] StartDiscovery InProgress; attempting adapter kick...", false},
		{"empty line", "", false},
		{"marker inside truncated json", `{"status": 1,"model":"Air`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStructured(tt.line); got != tt.want {
				t.Errorf("IsStructured(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse_FullRecord(t *testing.T) {
	line := `{"status": 1,"model":"PodsPro","date":"2024-01-01 10:00:00","left":80,"right":75,"case":-1,"charging_left":true,"charging_right":false,"charging_case":false}`
	rec := Parse(line)

	if !rec.Online {
		t.Error("status 1 should parse as online")
	}
	if rec.Model != "PodsPro" {
		t.Errorf("Model = %q, want PodsPro", rec.Model)
	}
	if rec.Timestamp != "2024-01-01 10:00:00" {
		t.Errorf("Timestamp = %q", rec.Timestamp)
	}
	if rec.Left != 80 || rec.Right != 75 {
		t.Errorf("Left/Right = %d/%d, want 80/75", rec.Left, rec.Right)
	}
	if rec.Case != Unknown {
		t.Errorf("Case = %d, want Unknown for sentinel -1", rec.Case)
	}
	if !rec.ChargingLeft || rec.ChargingRight || rec.ChargingCase {
		t.Errorf("charging flags = %v/%v/%v, want true/false/false",
			rec.ChargingLeft, rec.ChargingRight, rec.ChargingCase)
	}
}

func TestParse_NestedChargeObject(t *testing.T) {
	// The decoded-frame path of the scanner nests percentages under
	// "charge" instead of emitting them at the top level.
	line := `{"status": 1, "charge": {"left": 95, "right": 90, "case": 100}, "charging_case": true, "model": "AirPods2", "raw": "0719011220"}`
	rec := Parse(line)

	if rec.Left != 95 || rec.Right != 90 || rec.Case != 100 {
		t.Errorf("charge = %d/%d/%d, want 95/90/100", rec.Left, rec.Right, rec.Case)
	}
	if !rec.ChargingCase {
		t.Error("charging_case should be true")
	}
	if rec.Raw != "0719011220" {
		t.Errorf("Raw = %q", rec.Raw)
	}
}

func TestParse_OnlineRequiresStatusOne(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"status 1", `{"status": 1}`, true},
		{"status 0", `{"status": 0}`, false},
		{"status 2", `{"status": 2}`, false},
		{"status negative", `{"status": -1}`, false},
		{"status string", `{"status": "1"}`, false},
		{"status absent but marker present", `{"status": null}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.line).Online; got != tt.want {
				t.Errorf("Parse(%q).Online = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse_PercentageRange(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"zero is valid", `{"status":1,"left":0}`, 0},
		{"hundred is valid", `{"status":1,"left":100}`, 100},
		{"sentinel negative", `{"status":1,"left":-1}`, Unknown},
		{"other negative", `{"status":1,"left":-42}`, Unknown},
		{"over range", `{"status":1,"left":105}`, Unknown},
		{"non-numeric", `{"status":1,"left":"80"}`, Unknown},
		{"absent", `{"status":1}`, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.line).Left; got != tt.want {
				t.Errorf("Parse(%q).Left = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse_CorruptFieldDoesNotSuppressRecord(t *testing.T) {
	// "left" is garbage, the rest of the record must still come through.
	line := `{"status": 1, "model": "AirPods3", "left": "??", "right": 60}`
	rec := Parse(line)

	if !rec.Online {
		t.Error("record should still parse as online")
	}
	if rec.Model != "AirPods3" {
		t.Errorf("Model = %q, want AirPods3", rec.Model)
	}
	if rec.Left != Unknown {
		t.Errorf("Left = %d, want Unknown", rec.Left)
	}
	if rec.Right != 60 {
		t.Errorf("Right = %d, want 60", rec.Right)
	}
}

func TestParse_MalformedJSONFallsBackPerField(t *testing.T) {
	// Truncated line: invalid JSON, but individual fields are still
	// recoverable by pattern match.
	line := `{"status": 1,"model":"AirPodsMax","left":85,"charging_left":true,"date":"2024-06-01 09:30:00","right":`
	rec := Parse(line)

	if !rec.Online {
		t.Error("fallback should recover status 1")
	}
	if rec.Model != "AirPodsMax" {
		t.Errorf("Model = %q, want AirPodsMax", rec.Model)
	}
	if rec.Left != 85 {
		t.Errorf("Left = %d, want 85", rec.Left)
	}
	if rec.Right != Unknown {
		t.Errorf("Right = %d, want Unknown for the truncated field", rec.Right)
	}
	if !rec.ChargingLeft {
		t.Error("fallback should recover charging_left")
	}
	if rec.Timestamp != "2024-06-01 09:30:00" {
		t.Errorf("Timestamp = %q", rec.Timestamp)
	}
}

func TestParse_FallbackTolerantOfSpacedFields(t *testing.T) {
	// json.dumps on the scanner side puts a space after every colon;
	// the fallback must recover those fields just like compact ones.
	line := `{"status": 1, "model": "PodsPro", "left": 70, "charging_left": true, "charging_right": false, "charging_case": true, "right":`
	rec := Parse(line)

	if !rec.Online {
		t.Error("fallback should recover status 1")
	}
	if rec.Left != 70 {
		t.Errorf("Left = %d, want 70", rec.Left)
	}
	if !rec.ChargingLeft {
		t.Error("fallback should recover spaced charging_left")
	}
	if rec.ChargingRight {
		t.Error("charging_right is false in the line")
	}
	if !rec.ChargingCase {
		t.Error("fallback should recover spaced charging_case")
	}
}

func TestParse_UnknownFieldsIgnored(t *testing.T) {
	line := `{"status": 0, "model": "Apple device detected", "note": "Matched by name only", "rssi": -64, "name": ""}`
	rec := Parse(line)

	if rec.Online {
		t.Error("status 0 should be offline")
	}
	if rec.Model != "Apple device detected" {
		t.Errorf("Model = %q", rec.Model)
	}
	if rec.Left != Unknown || rec.Right != Unknown || rec.Case != Unknown {
		t.Error("battery slots should all be Unknown")
	}
}

func TestParse_ChargingDefaultsFalse(t *testing.T) {
	rec := Parse(`{"status": 1, "left": 50}`)
	if rec.ChargingLeft || rec.ChargingRight || rec.ChargingCase {
		t.Error("absent charging flags must default to false")
	}
}
