package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	oldOutput, oldLevel := LogOutput, GlobalLogLevel
	defer func() {
		LogOutput, GlobalLogLevel = oldOutput, oldLevel
	}()
	LogOutput = &buf

	level, err := ParseLogLevel("notice")
	if err != nil {
		t.Fatal(err)
	}
	GlobalLogLevel = level

	Errorf("AES", "unsupported")
	Logf("AES", "mode %s", "software")
	Noticef("AES", "resolved")
	Debugf("AES", "hidden")

	out := buf.String()
	if !strings.Contains(out, "[AES] INFO mode software\n") {
		t.Errorf("missing info line in %q", out)
	}
	if !strings.Contains(out, "[AES] ERROR unsupported\n") {
		t.Errorf("missing error line in %q", out)
	}
	if !strings.Contains(out, "[AES] NOTICE resolved\n") {
		t.Errorf("missing notice line in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line logged at notice level: %q", out)
	}
	if IsLogLevelDebug() {
		t.Error("debug enabled at notice level")
	}

	if _, err = ParseLogLevel("verbose"); err == nil {
		t.Error("unknown level accepted")
	}
}
