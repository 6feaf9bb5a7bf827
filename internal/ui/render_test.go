package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/usefuulness/AirStatus/internal/record"
)

// plainRenderer returns a renderer whose output carries no escape
// sequences, so tests can assert on content directly.
func plainRenderer(debug bool) *Renderer {
	r := NewRenderer(Profile{Color: false, Unicode: true, Width: 80}, debug)
	r.now = func() time.Time {
		return time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	}
	return r
}

func TestEntry_OnlineExample(t *testing.T) {
	// Worked example: decoded AirPods Pro frame with a sentinel case slot.
	rec := record.Parse(`{"status": 1,"model":"PodsPro","date":"2024-01-01 10:00:00","left":80,"right":75,"case":-1,"charging_left":true,"charging_right":false,"charging_case":false}`)
	out := plainRenderer(false).Entry(rec)

	for _, want := range []string{"ONLINE", "PodsPro", "2024-01-01 10:00:00", "80%", "75%"} {
		if !strings.Contains(out, want) {
			t.Errorf("Entry() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "OFFLINE") {
		t.Error("online record must not render the failure badge")
	}
	if !strings.Contains(out, "L 80% ⚡") {
		t.Errorf("left gauge should carry the charging mark:\n%s", out)
	}
	if !strings.Contains(out, "R 75% ·") {
		t.Errorf("right gauge should carry the idle mark:\n%s", out)
	}
	if !strings.Contains(out, "Case — ·") {
		t.Errorf("case gauge should render the unknown dash:\n%s", out)
	}
	if strings.Contains(out, "-1") {
		t.Error("sentinel value must never be rendered as a number")
	}
}

func TestEntry_OfflineBadge(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"status zero", `{"status": 0,"model":"AirPods not found"}`},
		{"status other", `{"status": 7}`},
		{"status absent", `{"status": null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := plainRenderer(false).Entry(record.Parse(tt.line))
			if !strings.Contains(out, "OFFLINE") {
				t.Errorf("Entry() should render OFFLINE badge:\n%s", out)
			}
		})
	}
}

func TestEntry_PlaceholdersForAbsentFields(t *testing.T) {
	out := plainRenderer(false).Entry(record.Parse(`{"status": 1}`))

	if !strings.Contains(out, "unknown") {
		t.Error("absent model should render as the placeholder")
	}
	// Timestamp fallback: current local time from the injected clock.
	if !strings.Contains(out, "10:00:00") {
		t.Errorf("absent date should fall back to the current time:\n%s", out)
	}
	if strings.Count(out, "—") != 3 {
		t.Errorf("all three gauges should be unknown dashes:\n%s", out)
	}
	if strings.Contains(out, "0%") {
		t.Error("unknown battery must not render as 0%")
	}
}

func TestGaugeLevel_ExactThresholds(t *testing.T) {
	tests := []struct {
		value int
		want  gaugeLevel
	}{
		{60, gaugeGood},
		{59, gaugeWarn},
		{30, gaugeWarn},
		{29, gaugeLow},
		{100, gaugeGood},
		{0, gaugeLow},
	}
	for _, tt := range tests {
		if got := gaugeLevelFor(tt.value); got != tt.want {
			t.Errorf("gaugeLevelFor(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestEntry_DebugTrailer(t *testing.T) {
	long := strings.Repeat("a", 80)
	rec := record.Record{Online: true, Raw: long, Left: record.Unknown, Right: record.Unknown, Case: record.Unknown}

	t.Run("enabled and truncated", func(t *testing.T) {
		out := plainRenderer(true).Entry(rec)
		if !strings.Contains(out, "raw: ") {
			t.Fatalf("debug trailer missing:\n%s", out)
		}
		if !strings.Contains(out, strings.Repeat("a", RawDisplayLen)+"…") {
			t.Error("payload should be cut at exactly 64 characters plus ellipsis")
		}
		if strings.Contains(out, strings.Repeat("a", RawDisplayLen+1)) {
			t.Error("payload rendered past the truncation length")
		}
	})

	t.Run("short payload untouched", func(t *testing.T) {
		short := rec
		short.Raw = "0719"
		out := plainRenderer(true).Entry(short)
		if !strings.Contains(out, "raw: 0719") || strings.Contains(out, "…") {
			t.Errorf("short payload should render unmodified:\n%s", out)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		out := plainRenderer(false).Entry(rec)
		if strings.Contains(out, "raw:") {
			t.Error("no trailer when debug is disabled")
		}
	})

	t.Run("no payload", func(t *testing.T) {
		empty := rec
		empty.Raw = ""
		out := plainRenderer(true).Entry(empty)
		if strings.Contains(out, "raw:") {
			t.Error("no trailer when record has no payload")
		}
	})
}

func TestPlain_Passthrough(t *testing.T) {
	line := "random log text without markers"
	out := plainRenderer(false).Plain(line)
	if out != line {
		t.Errorf("Plain() without color = %q, want verbatim passthrough", out)
	}
}

func TestASCIIProfileGlyphs(t *testing.T) {
	r := NewRenderer(Profile{Color: false, Unicode: false, Width: 80}, true)
	rec := record.Record{
		Online: true, Left: 80, Right: record.Unknown, Case: record.Unknown,
		ChargingLeft: true,
		Raw:          strings.Repeat("f", 100),
		Timestamp:    "2024-01-01 10:00:00",
	}
	out := r.Entry(rec)

	for _, glyph := range []string{"⚡", "·", "—", "…"} {
		if strings.Contains(out, glyph) {
			t.Errorf("ASCII profile rendered Unicode glyph %q:\n%s", glyph, out)
		}
	}
	if !strings.Contains(out, "L 80% +") {
		t.Errorf("ASCII charging mark missing:\n%s", out)
	}
	if !strings.Contains(out, "--") {
		t.Errorf("ASCII unknown dash missing:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("f", RawDisplayLen)+"...") {
		t.Errorf("ASCII ellipsis missing:\n%s", out)
	}
}

func TestBannerAndFarewell(t *testing.T) {
	r := plainRenderer(false)
	if !strings.Contains(r.Banner(), "live data") {
		t.Error("banner should announce live data")
	}
	if r.Farewell() == "" {
		t.Error("farewell must not be empty")
	}
}
