// Binary on-disk codec for graphs: the fixed-layout little-endian "TVGG"
// format. The bucket layout is persisted verbatim, so a load restores the
// exact partition the graph was saved with.
package graph

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jomazi/libtvg/sparse"
)

// FileTag identifies a binary graph file ("TVGG" in little-endian order).
const FileTag uint32 = 0x47475654

// FileVersion is the only supported format revision.
const FileVersion uint32 = 1

// Sentinel errors of the binary codec.
var (
	// ErrBadTag is returned when the file does not start with FileTag.
	ErrBadTag = errors.New("graph: bad file tag")

	// ErrBadVersion is returned on a format revision mismatch.
	ErrBadVersion = errors.New("graph: unsupported file version")

	// ErrTooLarge is returned when a persisted partition width exceeds
	// the 31-bit cap and the graph cannot be loaded into memory.
	ErrTooLarge = errors.New("graph: graph too large to load")
)

// fileHeader is the fixed 20-byte prelude of the binary format.
type fileHeader struct {
	Tag        uint32
	Version    uint32
	Flags      uint32
	BitsSource uint32
	BitsTarget uint32
}

// fileEdge is the fixed 24-byte on-disk edge record (padded).
type fileEdge struct {
	Source uint64
	Target uint64
	Weight float32
	_      uint32
}

// Save writes the graph to w in the binary "TVGG" format: the header,
// then every bucket as an entry count followed by its raw sorted entries.
// Runtime-only flags (readonly) are not persisted.
// Complexity: O(E + B)
func (g *Graph) Save(w io.Writer) error {
	bitsSource, bitsTarget := g.grid.Bits()
	header := fileHeader{
		Tag:        FileTag,
		Version:    FileVersion,
		Flags:      g.flags() & persistedFlags,
		BitsSource: bitsSource,
		BitsTarget: bitsTarget,
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("graph: write header: %w", err)
	}

	num := g.grid.NumBuckets()
	for i := uint64(0); i < num; i++ {
		edges := g.grid.Bucket(i).Edges()
		if err := binary.Write(w, binary.LittleEndian, uint64(len(edges))); err != nil {
			return fmt.Errorf("graph: write bucket %d: %w", i, err)
		}
		if len(edges) == 0 {
			continue
		}
		records := make([]fileEdge, len(edges))
		for j, e := range edges {
			records[j] = fileEdge{Source: e.Source, Target: e.Target, Weight: e.Weight}
		}
		if err := binary.Write(w, binary.LittleEndian, records); err != nil {
			return fmt.Errorf("graph: write bucket %d: %w", i, err)
		}
	}

	return nil
}

// Load reads a graph from r. On any validation or read failure no partial
// graph is returned. The persisted bucket layout is restored as-is; the
// first rebalance check runs after the usual mutation budget.
// Complexity: O(E + B)
func Load(r io.Reader) (*Graph, error) {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("graph: read header: %w", err)
	}

	if header.Tag != FileTag {
		return nil, fmt.Errorf("%w: expected %08x, got %08x", ErrBadTag, FileTag, header.Tag)
	}
	if header.Version != FileVersion {
		return nil, fmt.Errorf("%w: expected %08x, got %08x", ErrBadVersion, FileVersion, header.Version)
	}
	if header.BitsSource > sparse.MaxBits || header.BitsTarget > sparse.MaxBits {
		return nil, fmt.Errorf("%w: %d/%d partition bits", ErrTooLarge, header.BitsSource, header.BitsTarget)
	}

	var opts []Option
	if header.Flags&FlagDirected != 0 {
		opts = append(opts, WithDirected())
	}
	if header.Flags&FlagNonzero != 0 {
		opts = append(opts, WithNonzero())
	}
	if header.Flags&FlagPositive != 0 {
		opts = append(opts, WithPositive())
	}
	g := New(opts...)
	g.grid = sparse.NewGridWithBits(header.BitsSource, header.BitsTarget)

	num := g.grid.NumBuckets()
	for i := uint64(0); i < num; i++ {
		var count uint64
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, fmt.Errorf("graph: read bucket %d: %w", i, err)
		}
		if count == 0 {
			continue
		}
		records := make([]fileEdge, count)
		if err := binary.Read(r, binary.LittleEndian, records); err != nil {
			return nil, fmt.Errorf("graph: read bucket %d: %w", i, err)
		}
		edges := make([]sparse.Edge, count)
		for j, rec := range records {
			edges[j] = sparse.Edge{Source: rec.Source, Target: rec.Target, Weight: rec.Weight}
		}
		g.grid.Bucket(i).Reset(edges)
	}

	return g, nil
}

// SaveFile writes the graph to a newly created file at path.
func (g *Graph) SaveFile(path string) error {
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graph: create %q: %w", path, err)
	}
	defer fp.Close()

	if err = g.Save(fp); err != nil {
		return err
	}

	return fp.Close()
}

// LoadFile reads a graph from the file at path.
func LoadFile(path string) (*Graph, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: open %q: %w", path, err)
	}
	defer fp.Close()

	return Load(fp)
}
