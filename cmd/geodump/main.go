// Command geodump inspects geometry snapshot batches without running a
// node: it prints each snapshot's attribute layout (entity, name, kind,
// tuple size, tuple count) or browses it interactively.
//
//	geodump -input batch.json
//	geodump -input batch.json -geo 1
//	geodump -input batch.json -codec json
//	cat batch.json | geodump
//	geodump -input batch.json -i
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"

	houdininode "github.com/luxalpa/houdini-node"
	"github.com/luxalpa/houdini-node/attr"
	"github.com/luxalpa/houdini-node/codec"
	"github.com/luxalpa/houdini-node/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	entityStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func main() {
	var (
		input       = flag.String("input", "-", "Batch file to read, - for stdin")
		geoIndex    = flag.Int("geo", -1, "Dump a single input slot (default: all)")
		interactive = flag.Bool("i", false, "Interactive browser")
		codecName   = flag.String("codec", codec.Default.Name(), "Wire codec: json or go-json")
	)
	flag.Parse()

	c, ok := codec.ByName(*codecName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown codec %q\n", *codecName)
		os.Exit(1)
	}

	batch, err := readInput(*input, c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(batch); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *geoIndex >= 0 {
		raw, err := batch.Raw(*geoIndex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dumpGeometry(*geoIndex, raw)
		return
	}

	for i, raw := range batch.Geos {
		dumpGeometry(i, raw)
	}
}

func readInput(path string, c codec.Codec) (*runtime.Batch, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var geos []houdininode.RawGeometry
	if err := c.Unmarshal(data, &geos); err != nil {
		return nil, fmt.Errorf("parse geometry batch: %w", err)
	}
	return &runtime.Batch{Geos: geos}, nil
}

// entities lists the four collections of a snapshot in their canonical
// order.
func entities(raw houdininode.RawGeometry) []struct {
	Name  string
	Attrs attr.Map
} {
	return []struct {
		Name  string
		Attrs attr.Map
	}{
		{"points", raw.Points},
		{"vertices", raw.Vertices},
		{"prims", raw.Prims},
		{"detail", raw.Detail},
	}
}

func sortedNames(m attr.Map) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func dumpGeometry(index int, raw houdininode.RawGeometry) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("input %d", index)))

	for _, e := range entities(raw) {
		if len(e.Attrs) == 0 {
			fmt.Printf("  %s %s\n", entityStyle.Render(e.Name), dimStyle.Render("(no attributes)"))
			continue
		}

		fmt.Printf("  %s\n", entityStyle.Render(e.Name))
		for _, name := range sortedNames(e.Attrs) {
			a := e.Attrs[name]
			fmt.Printf("    %-16s %s tuple_size=%d tuples=%d\n",
				name,
				kindStyle.Render(fmt.Sprintf("%-12s", a.Data.Kind())),
				a.TupleSize,
				a.Tuples())
		}
	}
	fmt.Println()
}
