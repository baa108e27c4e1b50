// Package runtime implements the process boundary of a geometry node: it
// reads a batch of columnar snapshots from the host, hands them to node
// code, and writes the single result snapshot back.
//
// The host invokes the node as a subprocess with the input batch on stdin
// (a JSON array of snapshots) and expects one snapshot object on stdout.
// Everything else (logging, errors) belongs on stderr.
package runtime

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	houdininode "github.com/luxalpa/houdini-node"
	"github.com/luxalpa/houdini-node/codec"
	"github.com/luxalpa/houdini-node/errors"
)

// Batch is one invocation's input: zero or more geometry snapshots, one
// per connected input of the node.
type Batch struct {
	Geos []houdininode.RawGeometry
}

// Len returns the number of input slots carrying a snapshot.
func (b *Batch) Len() int { return len(b.Geos) }

// Raw returns the columnar snapshot at one input slot, failing with
// geometry_missing when the slot is absent.
func (b *Batch) Raw(index int) (houdininode.RawGeometry, error) {
	if index < 0 || index >= len(b.Geos) {
		return houdininode.RawGeometry{}, errors.GeometryMissing(index)
	}
	return b.Geos[index], nil
}

// ReadBatch parses a snapshot batch from r. Malformed payloads and read
// failures surface as transport errors, not reinterpreted.
func ReadBatch(r io.Reader) (*Batch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Transport(err, "read geometry batch")
	}

	var geos []houdininode.RawGeometry
	if err := codec.Default.Unmarshal(data, &geos); err != nil {
		return nil, errors.Transport(err, "parse geometry batch")
	}
	return &Batch{Geos: geos}, nil
}

// WriteGeometry emits one result snapshot to w.
func WriteGeometry(w io.Writer, raw houdininode.RawGeometry) error {
	data, err := codec.Default.Marshal(raw)
	if err != nil {
		return errors.Transport(err, "encode result geometry")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Transport(err, "write result geometry")
	}
	if _, err := w.Write([]byte{'\n'}); err != nil {
		return errors.Transport(err, "write result geometry")
	}
	return nil
}

// Node is one node's body: it receives the input batch and returns the
// geometry to hand back to the host. Returning an error aborts the whole
// invocation; use errors.User for caller-level failures that should reach
// the host verbatim.
type Node func(b *Batch) (houdininode.RawConverter, error)

// Run executes a node against explicit streams. It is the testable core
// of Main.
func Run(r io.Reader, w io.Writer, node Node) error {
	batch, err := ReadBatch(r)
	if err != nil {
		return err
	}
	Logger().Debug("batch read", zap.Int("inputs", batch.Len()))

	result, err := node(batch)
	if err != nil {
		return err
	}

	raw, err := result.IntoRaw()
	if err != nil {
		return err
	}
	return WriteGeometry(w, raw)
}

// Main wires a node to the process boundary: batch on stdin, result on
// stdout, failures on stderr with a non-zero exit.
func Main(node Node) {
	if err := Run(os.Stdin, os.Stdout, node); err != nil {
		Logger().Error("node failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
