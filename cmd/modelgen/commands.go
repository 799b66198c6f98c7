package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/Faultbox/blockmodels/internal/config"
	"github.com/Faultbox/blockmodels/internal/generate"
	"github.com/Faultbox/blockmodels/internal/logger"
	"github.com/Faultbox/blockmodels/internal/models"
	"github.com/Faultbox/blockmodels/internal/registry"
	"github.com/Faultbox/blockmodels/internal/store"
	"github.com/Faultbox/blockmodels/pkg/formats"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

func openStore(cfg *config.Config) (store.Store, error) {
	codec, err := formats.CodecByName(cfg.Models.Format)
	if err != nil {
		return nil, err
	}
	s, err := store.Open(cfg.Models.Store, cfg.StorePath(), codec)
	if err != nil {
		return nil, err
	}
	logger.Debug("Opened store",
		zap.String("kind", cfg.Models.Store),
		zap.String("path", cfg.StorePath()),
		zap.String("format", codec.Name()))
	return s, nil
}

func newRegistry(cfg *config.Config) *registry.Registry {
	return registry.New(logger.For("registry"),
		registry.WithInvertBottomFaces(cfg.Models.InvertBottomFaces))
}

func cmdGenerate(cfg *config.Config, args []string) error {
	names := cfg.Models.Only
	if len(args) > 0 {
		names = args
	}
	entries, err := generate.Select(models.Catalog(), names)
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	res := generate.RunWith(s, entries, generate.Options{
		ScaleFactor:  cfg.Compile.ScaleFactor,
		PivotMarkers: cfg.Compile.PivotMarkers,
	}, logger.For("generate"))

	fmt.Printf("Generated %d of %d models into %s\n", len(res.Written), len(entries), cfg.StorePath())
	if !res.OK() {
		return fmt.Errorf("%d models failed", len(res.Failed))
	}
	return nil
}

func cmdList(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Show mesh and face counts")
	fs.Parse(args)

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	reg := newRegistry(cfg)
	reg.AddStore(s)
	defer reg.Close()

	n, err := reg.LoadAll(s)
	if err != nil {
		return err
	}

	for _, name := range reg.Names() {
		if !*verbose {
			fmt.Println(name)
			continue
		}
		m, _ := reg.Lookup(name)
		fmt.Printf("%-20s %3d meshes %5d faces\n", name, len(m.Meshes), m.FaceCount())
	}
	fmt.Fprintf(os.Stderr, "%d models\n", n)
	return nil
}

func cmdCatalog(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("catalog takes no arguments")
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFILE\tSCALE")
	for _, e := range models.Catalog() {
		fmt.Fprintf(w, "%s\t%s\t%g\n", e.Name, e.File, e.Scale)
	}
	return w.Flush()
}

func loadOne(cfg *config.Config, name string) (*mesh.Model, func(), error) {
	s, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	reg := newRegistry(cfg)
	reg.AddStore(s)
	done := func() { reg.Close() }

	key := name
	if e, ok := models.Find(name); ok {
		key = e.File
	}
	m, err := reg.Get(key)
	if err != nil {
		done()
		return nil, nil, err
	}
	return m, done, nil
}

func cmdInfo(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: modelgen info <name>")
	}
	m, done, err := loadOne(cfg, args[0])
	if err != nil {
		return err
	}
	defer done()

	bounds := m.Flatten().Bounds
	size := bounds.Size()
	fmt.Printf("Model:  %s\n", m.Name)
	fmt.Printf("Meshes: %d\n", len(m.Meshes))
	fmt.Printf("Faces:  %d\n", m.FaceCount())
	fmt.Printf("Bounds: (%.2f, %.2f, %.2f) - (%.2f, %.2f, %.2f)\n",
		bounds.Min.X, bounds.Min.Y, bounds.Min.Z, bounds.Max.X, bounds.Max.Y, bounds.Max.Z)
	fmt.Printf("Size:   %.2f x %.2f x %.2f\n", size.X, size.Y, size.Z)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MESH\tPART\tFACES\tPIVOT\tROTATE\tFLAGS")
	for i := range m.Meshes {
		ms := &m.Meshes[i]
		fmt.Fprintf(w, "%s\t%s\t%d\t(%g, %g, %g)\t(%g, %g, %g)\t%s\n",
			ms.Name, ms.Part, len(ms.Faces),
			ms.Pivot.X, ms.Pivot.Y, ms.Pivot.Z,
			ms.Rotate.X, ms.Rotate.Y, ms.Rotate.Z,
			meshFlags(ms))
	}
	return w.Flush()
}

func meshFlags(ms *mesh.Mesh) string {
	var flags []string
	if ms.Helmet {
		flags = append(flags, "helmet")
	}
	if ms.FollowCursor {
		flags = append(flags, "cursor")
	}
	if ms.RotateFactor != 0 {
		flags = append(flags, fmt.Sprintf("swing=%g", ms.RotateFactor))
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

func cmdExport(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	to := fs.String("to", "", "Output format (binary, yaml, toml); default from -o extension or yaml")
	out := fs.String("o", "", "Output file (default stdout)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: modelgen export [-to F] [-o file] <name>")
	}

	codec, err := exportCodec(*to, *out)
	if err != nil {
		return err
	}

	m, done, err := loadOne(cfg, fs.Arg(0))
	if err != nil {
		return err
	}
	defer done()

	data, err := codec.Encode(m)
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		return err
	}
	fmt.Printf("Exported %s to %s (%d bytes)\n", m.Name, *out, len(data))
	return nil
}

func exportCodec(name, out string) (formats.Codec, error) {
	switch {
	case name != "":
		return formats.CodecByName(name)
	case out != "":
		return formats.CodecFor(filepath.Ext(out))
	default:
		return formats.YAML{}, nil
	}
}
