// Command pulleygen writes a GDSII file containing a sweep of pulley
// couplers around a ring resonator, one layer per coupling length.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/waveguide/gds"
	"honnef.co/go/waveguide/pulley"
)

func main() {
	level := zap.LevelFlag("log-level", zap.InfoLevel, "set log level")
	configPath := flag.String("config", "", "JSON parameter file (defaults to the reference design)")
	out := flag.String("o", "pulley.gds", "output GDSII file")
	lengths := flag.String("lc", "", "comma-separated coupling lengths in µm, overriding the config")
	keepGoing := flag.Bool("keep-going", false, "write the entries that could be built even if others fail")
	cellName := flag.String("cell", "pulley_coupler", "name of the output cell")
	dump := flag.String("dump", "", "print the records of a GDSII file and exit")
	flag.Parse()

	dev, err := newLogger(*level)
	if err != nil {
		panic(err)
	}
	defer dev.Sync()
	zap.ReplaceGlobals(dev)

	if *dump != "" {
		if err := dumpFile(os.Stdout, *dump); err != nil {
			zap.S().Fatalf("dump %s: %s", *dump, err)
		}
		return
	}

	p := pulley.DefaultParams()
	if *configPath != "" {
		p, err = pulley.LoadParamsFile(*configPath)
		if err != nil {
			zap.S().Fatalf("load config: %s", err)
		}
	}
	if *lengths != "" {
		p.CouplingLengths, err = parseLengths(*lengths)
		if err != nil {
			zap.S().Fatalf("parse -lc: %s", err)
		}
	}

	g := p.Geometry()
	zap.S().Infow("geometry",
		"ring-inner-radius", g.RingInnerRadius,
		"ring-outer-radius", g.RingOuterRadius,
		"pulley-radius", g.PulleyRadius,
		"entries", len(p.CouplingLengths))

	var set pulley.StructureSet
	if *keepGoing {
		set, err = pulley.BuildPartial(p)
		var entryErr *pulley.EntryError
		if err != nil && !errors.As(err, &entryErr) {
			zap.S().Fatalf("build: %s", err)
		}
		for _, e := range unjoin(err) {
			zap.S().Warnf("skipping: %s", e)
		}
	} else {
		set, err = pulley.Build(p)
		if err != nil {
			zap.S().Fatalf("build: %s", err)
		}
	}

	for _, s := range set.Structures {
		bbox := s.Half.BoundingBox(p.Tolerance).Union(s.Mirrored.BoundingBox(p.Tolerance))
		zap.S().Debugw("structure",
			"layer", s.Layer,
			"coupling-length", s.Length,
			"arc-angle", s.ArcAngle,
			"path-length", s.Half.Length(),
			"width", bbox.Width(),
			"height", bbox.Height())
	}

	exp := gds.Exporter{
		Path:     *out,
		LibName:  "pulley",
		CellName: *cellName,
		Time:     time.Now(),
	}
	if err := exp.Export(set); err != nil {
		zap.S().Fatalf("export: %s", err)
	}
	zap.S().Infof("wrote %d structures on layers %v to %s", len(set.Structures), set.Layers(), *out)
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func parseLengths(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

func dumpFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	recs, err := gds.NewReader(f).ReadAll()
	for _, rec := range recs {
		fmt.Fprintln(w, rec)
	}
	return err
}
