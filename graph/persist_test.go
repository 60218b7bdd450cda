// Package graph_test: binary codec round-trips and validation failures.
package graph_test

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomazi/libtvg/graph"
)

// roundTrip saves g to a buffer and loads it back.
func roundTrip(t *testing.T, g *graph.Graph) *graph.Graph {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf))

	loaded, err := graph.Load(&buf)
	require.NoError(t, err)

	return loaded
}

func TestPersist_RoundTripEmpty(t *testing.T) {
	g := graph.New(graph.WithDirected())
	defer g.Release()

	loaded := roundTrip(t, g)
	defer loaded.Release()

	assert.True(t, loaded.Empty())
	assert.True(t, loaded.Directed())
	assert.False(t, loaded.Positive())
}

func TestPersist_RoundTripSingleEdge(t *testing.T) {
	g := graph.New(graph.WithDirected(), graph.WithPositive())
	defer g.Release()
	require.NoError(t, g.Set(17, 42, 2.5))

	loaded := roundTrip(t, g)
	defer loaded.Release()

	assert.Equal(t, float32(2.5), loaded.Get(17, 42))
	assert.Equal(t, uint64(1), loaded.NumEdges())
	assert.True(t, loaded.Positive())
}

func TestPersist_RoundTripNonzeroFlag(t *testing.T) {
	g := graph.New(graph.WithNonzero())
	defer g.Release()
	require.NoError(t, g.Set(1, 2, 1))

	loaded := roundTrip(t, g)
	defer loaded.Release()

	require.True(t, loaded.Nonzero())
	require.NoError(t, loaded.Set(1, 2, 0))
	assert.False(t, loaded.Has(1, 2), "the loaded copy keeps the write policy")
}

func TestPersist_RoundTripResizedGraph(t *testing.T) {
	g := graph.New(graph.WithDirected())
	defer g.Release()

	const n = 1500
	for i := uint64(0); i < n; i++ {
		require.NoError(t, g.Set(i%31, i, float32(i)+0.5))
	}
	bitsSource, bitsTarget := g.Bits()
	require.Greater(t, bitsSource+bitsTarget, uint32(0), "resize must have happened")

	loaded := roundTrip(t, g)
	defer loaded.Release()

	loadedSource, loadedTarget := loaded.Bits()
	assert.Equal(t, bitsSource, loadedSource, "partition layout is persisted verbatim")
	assert.Equal(t, bitsTarget, loadedTarget)
	require.Equal(t, uint64(n), loaded.NumEdges())
	for i := uint64(0); i < n; i += 13 {
		assert.Equal(t, float32(i)+0.5, loaded.Get(i%31, i))
	}
}

func TestPersist_RoundTripUndirected(t *testing.T) {
	g := graph.New()
	defer g.Release()
	require.NoError(t, g.Set(1, 2, 1))
	require.NoError(t, g.Set(3, 3, 2))

	loaded := roundTrip(t, g)
	defer loaded.Release()

	assert.False(t, loaded.Directed())
	assert.Equal(t, float32(1), loaded.Get(2, 1), "mirrors survive the round-trip")
	assert.Equal(t, uint64(2), loaded.NumEdges())
}

func TestPersist_ReadonlyNotPersisted(t *testing.T) {
	g := graph.New()
	defer g.Release()
	require.NoError(t, g.Set(1, 2, 1))
	g.SetReadonly()

	loaded := roundTrip(t, g)
	defer loaded.Release()

	assert.False(t, loaded.Readonly())
	require.NoError(t, loaded.Set(1, 2, 9), "the loaded copy is mutable again")
}

func TestPersist_BadTag(t *testing.T) {
	var buf bytes.Buffer
	header := []uint32{0xdeadbeef, graph.FileVersion, 0, 0, 0}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(0)))

	_, err := graph.Load(&buf)
	assert.ErrorIs(t, err, graph.ErrBadTag)
}

func TestPersist_BadVersion(t *testing.T) {
	var buf bytes.Buffer
	header := []uint32{graph.FileTag, 99, 0, 0, 0}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(0)))

	_, err := graph.Load(&buf)
	assert.ErrorIs(t, err, graph.ErrBadVersion)
}

func TestPersist_TooLarge(t *testing.T) {
	var buf bytes.Buffer
	header := []uint32{graph.FileTag, graph.FileVersion, 0, 32, 0}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))

	_, err := graph.Load(&buf)
	assert.ErrorIs(t, err, graph.ErrTooLarge)
}

func TestPersist_TruncatedFile(t *testing.T) {
	g := graph.New(graph.WithDirected())
	defer g.Release()
	require.NoError(t, g.Set(1, 2, 1))

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf))
	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-4])

	_, err := graph.Load(truncated)
	assert.Error(t, err)
}

func TestPersist_Files(t *testing.T) {
	g := graph.New(graph.WithDirected())
	defer g.Release()
	require.NoError(t, g.Set(1, 2, 3))

	path := filepath.Join(t.TempDir(), "snapshot.graph")
	require.NoError(t, g.SaveFile(path))

	loaded, err := graph.LoadFile(path)
	require.NoError(t, err)
	defer loaded.Release()
	assert.Equal(t, float32(3), loaded.Get(1, 2))

	_, err = graph.LoadFile(filepath.Join(t.TempDir(), "missing.graph"))
	assert.Error(t, err)
}

func TestPersist_ByteLayout(t *testing.T) {
	g := graph.New(graph.WithDirected())
	defer g.Release()
	require.NoError(t, g.Set(1, 2, 1.0))

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf))
	data := buf.Bytes()

	// 20-byte header, 8-byte bucket count, one 24-byte edge record.
	require.Len(t, data, 52)
	assert.Equal(t, graph.FileTag, binary.LittleEndian.Uint32(data[0:4]))
	assert.Equal(t, graph.FileVersion, binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, graph.FlagDirected, binary.LittleEndian.Uint32(data[8:12]))
	assert.Equal(t, uint64(1), binary.LittleEndian.Uint64(data[20:28]))
	assert.Equal(t, uint64(1), binary.LittleEndian.Uint64(data[28:36]), "source")
	assert.Equal(t, uint64(2), binary.LittleEndian.Uint64(data[36:44]), "target")
}
