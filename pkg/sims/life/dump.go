package life

import (
	"bufio"
	"io"
	"strings"
)

// DumpChunk writes chunk k as a ChunkSize×ChunkSize block of '#' (alive) and
// ' ' (dead) framed by '+', '-' and '|'. Rows run along Y. Unmaterialized
// chunks print as all dead. It fails with a *WrongTopologyError on a Torus
// world.
func (w *World) DumpChunk(out io.Writer, k ChunkKey) error {
	if w.topo != Unbounded {
		return &WrongTopologyError{Op: "dump chunk", Want: Unbounded, Got: w.topo}
	}
	bw := bufio.NewWriter(out)
	border := "+" + strings.Repeat("-", ChunkSize) + "+\n"
	bw.WriteString(border)
	ch := w.chunks.chunk(k)
	row := make([]byte, 0, ChunkSize+3)
	for ly := 0; ly < ChunkSize; ly++ {
		row = append(row[:0], '|')
		for lx := 0; lx < ChunkSize; lx++ {
			if ch != nil && ch.At(lx, ly) {
				row = append(row, '#')
			} else {
				row = append(row, ' ')
			}
		}
		row = append(row, '|', '\n')
		bw.Write(row)
	}
	bw.WriteString(border)
	return bw.Flush()
}
