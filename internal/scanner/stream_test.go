package scanner

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestForwardLines_OrderAndCount(t *testing.T) {
	input := strings.Join([]string{
		`{"status": 0,"model":"AirPods not found"}`,
		"random log text without markers",
		`{"status": 1,"model":"AirPodsPro","left":80}`,
		"[DBG] BleakScanner started",
	}, "\n") + "\n"

	out := make(chan string)
	go func() {
		defer close(out)
		forwardLines(strings.NewReader(input), out)
	}()

	var got []string
	for line := range out {
		got = append(got, line)
	}

	if len(got) != 4 {
		t.Fatalf("forwarded %d lines, want 4", len(got))
	}
	if got[0] != `{"status": 0,"model":"AirPods not found"}` {
		t.Errorf("first line = %q", got[0])
	}
	if got[3] != "[DBG] BleakScanner started" {
		t.Errorf("order not preserved, last line = %q", got[3])
	}
}

func TestForwardLines_EmptyInput(t *testing.T) {
	out := make(chan string)
	go func() {
		defer close(out)
		forwardLines(strings.NewReader(""), out)
	}()
	if _, ok := <-out; ok {
		t.Error("empty reader should close the channel without sending")
	}
}

func TestStart_MissingInterpreter(t *testing.T) {
	_, err := Start(Options{
		Interpreter: "/nonexistent/bin/python3",
		Script:      "main.py",
	}, zap.NewNop())

	if err == nil {
		t.Fatal("Start() with a missing interpreter should fail")
	}
	var spawnErr *SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("error type = %T, want *SpawnError", err)
	}
	if !strings.Contains(spawnErr.Error(), "airstatus setup") {
		t.Error("spawn error should hint at the setup command")
	}
}

func TestStart_StreamsScriptOutput(t *testing.T) {
	// Use the shell as a stand-in interpreter: it also takes
	// "-u <script> <args…>" style argv and echoes promptly.
	s, err := Start(Options{
		Interpreter: "/bin/sh",
		Script:      "-c",
		Args:        []string{`printf 'one\ntwo\n'`},
		MinRSSI:     -100,
		Debug:       true,
		UpdateSec:   1,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	var got []string
	for line := range s.Lines() {
		got = append(got, line)
	}
	s.Wait()

	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("streamed lines = %v, want [one two]", got)
	}
}

func TestBoolFlag(t *testing.T) {
	if boolFlag(true) != "1" || boolFlag(false) != "0" {
		t.Error("boolFlag should map to the scanner's 0/1 convention")
	}
}
