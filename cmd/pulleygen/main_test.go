package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/waveguide/gds"
	"honnef.co/go/waveguide/pulley"
)

func TestNewLogger(t *testing.T) {
	log, err := newLogger(zapcore.WarnLevel)
	if err != nil {
		t.Fatal(err)
	}
	defer log.Sync()
	if log.Core().Enabled(zapcore.InfoLevel) || !log.Core().Enabled(zapcore.WarnLevel) {
		t.Errorf("logger doesn't honor level %s", zapcore.WarnLevel)
	}
}

func TestParseLengths(t *testing.T) {
	got, err := parseLengths("1, 2.5,3")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{1, 2.5, 3}, got); d != "" {
		t.Error(d)
	}
	if _, err := parseLengths("1,x"); err == nil {
		t.Error("invalid length accepted")
	}
}

func TestUnjoin(t *testing.T) {
	a, b := errors.New("a"), errors.New("b")
	if n := len(unjoin(errors.Join(a, b))); n != 2 {
		t.Errorf("got %d errors, want 2", n)
	}
	if n := len(unjoin(a)); n != 1 {
		t.Errorf("got %d errors, want 1", n)
	}
	if unjoin(nil) != nil {
		t.Error("nil error unjoined into errors")
	}
}

func TestDumpFile(t *testing.T) {
	p := pulley.DefaultParams()
	p.CouplingLengths = []float64{3}
	set, err := pulley.Build(p)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.gds")
	if err := (gds.Exporter{Path: path, LibName: "pulley", CellName: "c"}).Export(set); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := dumpFile(&buf, path); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "BOUNDARY"); n != 7 {
		t.Errorf("got %d boundaries, want 7:\n%s", n, out)
	}
	if !strings.Contains(out, `STRNAME "c"`) || !strings.HasSuffix(out, "ENDLIB\n") {
		t.Errorf("unexpected dump:\n%s", out)
	}
}
