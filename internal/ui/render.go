package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/usefuulness/AirStatus/internal/record"
)

// RawDisplayLen is the prefix length the debug trailer keeps of the
// raw manufacturer payload.
const RawDisplayLen = 64

// Gauge color thresholds.
const (
	gaugeGoodAt = 60
	gaugeWarnAt = 30
)

// Renderer turns parsed status records and plain passthrough lines
// into styled terminal blocks under a fixed capability profile.
type Renderer struct {
	profile Profile
	debug   bool
	now     func() time.Time
}

// NewRenderer creates a renderer for the given capability profile.
// When debug is true, records carrying a raw payload get a truncated
// raw-payload trailer.
func NewRenderer(p Profile, debug bool) *Renderer {
	return &Renderer{profile: p, debug: debug, now: time.Now}
}

// Entry renders one status record as a multi-line dashboard block:
// header (timestamp, badge, model), gauges, and an optional debug
// trailer. The block carries no trailing blank line; callers separate
// successive entries.
func (r *Renderer) Entry(rec record.Record) string {
	var b strings.Builder

	ts := rec.Timestamp
	if ts == "" {
		ts = r.now().Format("15:04:05")
	}
	model := rec.Model
	if model == "" {
		model = "unknown"
	}

	badge := r.paint(OfflineBadgeStyle, "OFFLINE")
	if rec.Online {
		badge = r.paint(OnlineBadgeStyle, "ONLINE")
	}

	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		r.paint(TimestampStyle, ts), badge, r.paint(ModelStyle, model)))

	gauges := []string{
		r.gauge("L", rec.Left, rec.ChargingLeft),
		r.gauge("R", rec.Right, rec.ChargingRight),
		r.gauge("Case", rec.Case, rec.ChargingCase),
	}
	b.WriteString("  " + strings.Join(gauges, "   "))

	if r.debug && rec.Raw != "" {
		b.WriteString("\n  " + r.paint(TrailerStyle, "raw: "+r.truncateRaw(rec.Raw)))
	}

	return b.String()
}

// Plain renders a non-record scanner line verbatim, dimmed.
func (r *Renderer) Plain(line string) string {
	return r.paint(DimStyle, line)
}

// Banner renders the one-time separator printed when the first line of
// live data arrives.
func (r *Renderer) Banner() string {
	rule := "--"
	if r.profile.Unicode {
		rule = "──"
	}
	return r.paint(BannerStyle, rule+" live data "+rule)
}

// Farewell renders the goodbye message printed exactly once on exit.
func (r *Renderer) Farewell() string {
	return r.paint(TimestampStyle, "airstatus: done.")
}

// gauge renders one labeled percentage with threshold coloring and a
// charging mark.
func (r *Renderer) gauge(label string, value int, charging bool) string {
	display := r.dash()
	if value != record.Unknown {
		display = r.paint(r.gaugeStyle(value), fmt.Sprintf("%d%%", value))
	}

	mark := r.paint(GaugeLabelStyle, r.idleMark())
	if charging {
		mark = r.paint(ChargingStyle, r.chargeMark())
	}

	return fmt.Sprintf("%s %s %s", r.paint(GaugeLabelStyle, label), display, mark)
}

// gaugeLevel grades a battery percentage for coloring.
type gaugeLevel int

const (
	gaugeGood gaugeLevel = iota // >=60
	gaugeWarn                   // >=30
	gaugeLow                    // below 30
)

func gaugeLevelFor(value int) gaugeLevel {
	switch {
	case value >= gaugeGoodAt:
		return gaugeGood
	case value >= gaugeWarnAt:
		return gaugeWarn
	default:
		return gaugeLow
	}
}

func (r *Renderer) gaugeStyle(value int) lipgloss.Style {
	switch gaugeLevelFor(value) {
	case gaugeGood:
		return GaugeGoodStyle
	case gaugeWarn:
		return GaugeWarnStyle
	default:
		return GaugeLowStyle
	}
}

// truncateRaw caps the payload at RawDisplayLen characters plus an
// ellipsis marker.
func (r *Renderer) truncateRaw(raw string) string {
	runes := []rune(raw)
	if len(runes) <= RawDisplayLen {
		return raw
	}
	ellipsis := "..."
	if r.profile.Unicode {
		ellipsis = "…"
	}
	return string(runes[:RawDisplayLen]) + ellipsis
}

func (r *Renderer) paint(st lipgloss.Style, s string) string {
	if !r.profile.Color {
		return s
	}
	return st.Render(s)
}

func (r *Renderer) dash() string {
	if r.profile.Unicode {
		return "—"
	}
	return "--"
}

func (r *Renderer) chargeMark() string {
	if r.profile.Unicode {
		return "⚡"
	}
	return "+"
}

func (r *Renderer) idleMark() string {
	if r.profile.Unicode {
		return "·"
	}
	return "."
}
