// Package savefile implements the line-oriented save format for an
// in-progress game and the single on-disk file it lives in.
//
// Each line is one record, fields separated by ';':
//
//	Bear;<eatenHoney>;<lives>;<x>;<y>
//	Honey;<x>;<y>
//	Bee;<x>;<y>
//
// There is no header and no trailer.
package savefile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record kinds.
const (
	KindBear  = "Bear"
	KindHoney = "Honey"
	KindBee   = "Bee"
)

const separator = ";"

// ErrMalformed is returned for any save data that cannot be decoded.
var ErrMalformed = errors.New("savefile: malformed save data")

// BearRecord is the persisted part of the bear. Size comes from config.
type BearRecord struct {
	EatenHoney int
	Lives      int
	X, Y       float64
}

// Point is a persisted bee or honey position.
type Point struct {
	X, Y float64
}

// Snapshot is everything a save file holds.
type Snapshot struct {
	Bear  *BearRecord
	Honey []Point
	Bees  []Point
}

// Codec encodes and decodes snapshots.
type Codec struct {
	// LegacyAxisOrder reads Honey and Bee records as y;x instead of x;y.
	// Writing is always x;y. The first version of the game read records
	// back swapped; set this to reproduce that reader exactly.
	LegacyAxisOrder bool
}

// Encode writes the snapshot: the bear first if present, then honey, then bees.
func (c Codec) Encode(s Snapshot) []byte {
	var buf bytes.Buffer
	if s.Bear != nil {
		writeRecord(&buf, KindBear,
			strconv.Itoa(s.Bear.EatenHoney),
			strconv.Itoa(s.Bear.Lives),
			formatFloat(s.Bear.X),
			formatFloat(s.Bear.Y),
		)
	}
	for _, p := range s.Honey {
		writeRecord(&buf, KindHoney, formatFloat(p.X), formatFloat(p.Y))
	}
	for _, p := range s.Bees {
		writeRecord(&buf, KindBee, formatFloat(p.X), formatFloat(p.Y))
	}
	return buf.Bytes()
}

// Decode parses save data. Any bad line fails the whole decode with an
// error wrapping ErrMalformed. Blank lines and unknown kinds are skipped;
// a later Bear record replaces an earlier one.
func (c Codec) Decode(data []byte) (Snapshot, error) {
	var s Snapshot

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		tokens := strings.Split(line, separator)

		switch tokens[0] {
		case KindBear:
			bear, err := decodeBear(tokens)
			if err != nil {
				return Snapshot{}, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
			}
			s.Bear = &bear
		case KindHoney, KindBee:
			p, err := c.decodePoint(tokens)
			if err != nil {
				return Snapshot{}, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
			}
			if tokens[0] == KindHoney {
				s.Honey = append(s.Honey, p)
			} else {
				s.Bees = append(s.Bees, p)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return s, nil
}

func decodeBear(tokens []string) (BearRecord, error) {
	if len(tokens) < 5 {
		return BearRecord{}, fmt.Errorf("bear record has %d fields, expected 5", len(tokens))
	}
	eaten, err := strconv.Atoi(tokens[1])
	if err != nil {
		return BearRecord{}, fmt.Errorf("eaten honey: %w", err)
	}
	lives, err := strconv.Atoi(tokens[2])
	if err != nil {
		return BearRecord{}, fmt.Errorf("lives: %w", err)
	}
	x, err := parseFloat(tokens[3])
	if err != nil {
		return BearRecord{}, fmt.Errorf("x: %w", err)
	}
	y, err := parseFloat(tokens[4])
	if err != nil {
		return BearRecord{}, fmt.Errorf("y: %w", err)
	}
	return BearRecord{EatenHoney: eaten, Lives: lives, X: x, Y: y}, nil
}

func (c Codec) decodePoint(tokens []string) (Point, error) {
	if len(tokens) < 3 {
		return Point{}, fmt.Errorf("%s record has %d fields, expected 3", tokens[0], len(tokens))
	}
	a, err := parseFloat(tokens[1])
	if err != nil {
		return Point{}, err
	}
	b, err := parseFloat(tokens[2])
	if err != nil {
		return Point{}, err
	}
	if c.LegacyAxisOrder {
		return Point{X: b, Y: a}, nil
	}
	return Point{X: a, Y: b}, nil
}

func writeRecord(buf *bytes.Buffer, kind string, fields ...string) {
	buf.WriteString(kind)
	for _, f := range fields {
		buf.WriteString(separator)
		buf.WriteString(f)
	}
	buf.WriteByte('\n')
}

// formatFloat writes the shortest representation that parses back to v,
// always with a decimal point ("10.0", not "10").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}
