package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StepStatus represents the current state of a setup step
type StepStatus int

const (
	StepPending  StepStatus = iota // Not yet started
	StepRunning                    // Currently executing
	StepComplete                   // Successfully completed
	StepFailed                     // Failed
	StepSkipped                    // Skipped (already satisfied)
)

// Step is a single step in a sequential operation such as the
// environment bootstrap.
type Step struct {
	Name    string     // Step description
	Status  StepStatus // Current status
	Message string     // Optional detail (e.g. "already present")
}

// StepList renders a sequential step display with a completion bar.
// Steps are printed incrementally as they start and finish; Summary
// renders the final bar.
type StepList struct {
	profile Profile
	out     io.Writer
	steps   []Step
	bar     progress.Model
}

// NewStepList creates a step display for the given step names, writing
// to out (os.Stdout when nil).
func NewStepList(p Profile, out io.Writer, names ...string) *StepList {
	if out == nil {
		out = os.Stdout
	}
	steps := make([]Step, len(names))
	for i, name := range names {
		steps[i] = Step{Name: name, Status: StepPending}
	}
	barWidth := p.Width - 20
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 40 {
		barWidth = 40
	}
	return &StepList{
		profile: p,
		out:     out,
		steps:   steps,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth),
		),
	}
}

// Start marks step i (0-based) as running and prints its line without
// a newline so the finishing call can overwrite it.
func (l *StepList) Start(i int) {
	if i < 0 || i >= len(l.steps) {
		return
	}
	l.steps[i].Status = StepRunning
	_, _ = fmt.Fprint(l.out, l.stepLine(i)+"\r")
}

// Complete marks step i as successfully finished.
func (l *StepList) Complete(i int, message string) {
	l.finish(i, StepComplete, message)
}

// Skip marks step i as skipped because it was already satisfied.
func (l *StepList) Skip(i int, message string) {
	l.finish(i, StepSkipped, message)
}

// Fail marks step i as failed.
func (l *StepList) Fail(i int, message string) {
	l.finish(i, StepFailed, message)
}

func (l *StepList) finish(i int, status StepStatus, message string) {
	if i < 0 || i >= len(l.steps) {
		return
	}
	l.steps[i].Status = status
	l.steps[i].Message = message
	_, _ = fmt.Fprintln(l.out, clearLine+l.stepLine(i))
}

// Summary renders the completion bar for the finished sequence.
func (l *StepList) Summary() string {
	completed := 0
	for _, s := range l.steps {
		if s.Status == StepComplete || s.Status == StepSkipped {
			completed++
		}
	}
	fraction := 0.0
	if len(l.steps) > 0 {
		fraction = float64(completed) / float64(len(l.steps))
	}
	return fmt.Sprintf("  %s  %d/%d", l.bar.ViewAs(fraction), completed, len(l.steps))
}

func (l *StepList) stepLine(i int) string {
	step := l.steps[i]

	var marker string
	var style = StepPendingStyle
	switch step.Status {
	case StepComplete:
		marker, style = l.okMark(), StepCompleteStyle
	case StepRunning:
		marker, style = l.busyMark(), StepRunningStyle
	case StepFailed:
		marker, style = l.failMark(), FailTitleStyle
	case StepSkipped:
		marker, style = l.idleMarker(), StepPendingStyle
	default:
		marker = l.idleMarker()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  [%d/%d] ", i+1, len(l.steps)))
	b.WriteString(l.paint(style, marker+" "+step.Name))
	if step.Message != "" {
		b.WriteString("  " + l.paint(StepNoteStyle, "("+step.Message+")"))
	}
	return b.String()
}

func (l *StepList) paint(st lipgloss.Style, s string) string {
	if !l.profile.Color {
		return s
	}
	return st.Render(s)
}

func (l *StepList) okMark() string {
	if l.profile.Unicode {
		return "✓"
	}
	return "ok"
}

func (l *StepList) busyMark() string {
	if l.profile.Unicode {
		return "●"
	}
	return "*"
}

func (l *StepList) failMark() string {
	if l.profile.Unicode {
		return "✗"
	}
	return "x"
}

func (l *StepList) idleMarker() string {
	if l.profile.Unicode {
		return "·"
	}
	return "."
}
