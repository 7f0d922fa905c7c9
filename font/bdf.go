package font

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ParseBDF reads glyph records from a BDF stream. Each record is an ENCODING
// line, a BBX line and a BITMAP marker followed by one hex row per bitmap
// line. Lines outside records are scanned past. cellWidth and cellHeight set
// the font's fixed layout advance; BDF global metrics are ignored.
//
// Reaching the end of the stream while looking for the next ENCODING is the
// normal termination. Any malformed field, undecodable hex row or truncation
// inside a record fails the whole parse; there is no partially loaded font.
// A later record for an already-seen codepoint replaces the earlier glyph.
func ParseBDF(r io.Reader, cellWidth, cellHeight int) (*Font, error) {
	sc := bufio.NewScanner(r)
	f := &Font{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Glyphs:     make(map[rune]Glyph),
		Ligatures:  make(map[[2]rune]Glyph),
	}

	for {
		enc, ok := scanTo(sc, "ENCODING")
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading font stream failed: %w", err)
			}
			return f, nil
		}

		cp, err := parseEncoding(enc)
		if err != nil {
			return nil, err
		}

		g, err := parseGlyph(sc)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", cp, err)
		}
		f.Glyphs[cp] = g
	}
}

// scanTo advances the scanner to the next line starting with prefix.
func scanTo(sc *bufio.Scanner, prefix string) (string, bool) {
	for sc.Scan() {
		if line := sc.Text(); strings.HasPrefix(line, prefix) {
			return line, true
		}
	}
	return "", false
}

func parseEncoding(line string) (rune, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("malformed line %q", line)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("malformed line %q: %w", line, err)
	}
	if n < 0 || n > unicode.MaxRune {
		return 0, fmt.Errorf("codepoint %d out of range", n)
	}
	return rune(n), nil
}

// parseGlyph consumes the BBX and BITMAP portions of one record.
func parseGlyph(sc *bufio.Scanner) (Glyph, error) {
	bbx, ok := scanTo(sc, "BBX")
	if !ok {
		return Glyph{}, fmt.Errorf("stream ended before BBX")
	}
	fields := strings.Fields(bbx)
	if len(fields) < 5 {
		return Glyph{}, fmt.Errorf("malformed line %q", bbx)
	}
	var dims [4]int
	for i := range dims {
		n, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return Glyph{}, fmt.Errorf("malformed line %q: %w", bbx, err)
		}
		dims[i] = n
	}
	g := Glyph{Width: dims[0], Height: dims[1], XOff: dims[2], YOff: dims[3]}
	if g.Width < 0 || g.Height < 0 {
		return Glyph{}, fmt.Errorf("negative bitmap bounds in %q", bbx)
	}

	if _, ok := scanTo(sc, "BITMAP"); !ok {
		return Glyph{}, fmt.Errorf("stream ended before BITMAP")
	}

	rowBytes := (g.Width + 7) / 8
	g.Bitmap = make([]byte, 0, g.Height*rowBytes)
	for y := 0; y < g.Height; y++ {
		if !sc.Scan() {
			return Glyph{}, fmt.Errorf("stream ended inside bitmap, row %d of %d", y, g.Height)
		}
		row, err := hex.DecodeString(strings.TrimSpace(sc.Text()))
		if err != nil {
			return Glyph{}, fmt.Errorf("bitmap row %d: %w", y, err)
		}
		if len(row) != rowBytes {
			return Glyph{}, fmt.Errorf("bitmap row %d has %d bytes; want %d", y, len(row), rowBytes)
		}
		g.Bitmap = append(g.Bitmap, row...)
	}
	return g, nil
}
