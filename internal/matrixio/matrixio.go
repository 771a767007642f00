// Package matrixio reads and writes square matrices for the dct command.
//
// Text input holds numbers separated by whitespace, commas or semicolons;
// lines starting with # are ignored. Input whose first non-space byte is '['
// is JSON: either an array of rows or a flat array.
package matrixio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmptyMatrix = errors.New("matrixio: empty matrix")
	ErrNotSquare   = errors.New("matrixio: matrix is not square")
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON:
		return f, nil
	}
	return "", fmt.Errorf("matrixio: unknown format %q", s)
}

// Read parses a square matrix from r. It returns the values in row-major
// order and the side length.
func Read(r io.Reader) ([]float64, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("read matrix: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, 0, ErrEmptyMatrix
	}
	if trimmed[0] == '[' {
		return readJSON(trimmed)
	}
	return readText(trimmed)
}

func readText(data []byte) ([]float64, int, error) {
	var values []float64
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, 0, fmt.Errorf("line %d: parse %q: %w", line, f, err)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("scan matrix: %w", err)
	}
	return square(values)
}

func readJSON(data []byte) ([]float64, int, error) {
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err == nil {
		if len(rows) == 0 {
			return nil, 0, ErrEmptyMatrix
		}
		n := len(rows)
		values := make([]float64, 0, n*n)
		for i, row := range rows {
			if len(row) != n {
				return nil, 0, fmt.Errorf("%w: row %d has %d values, want %d", ErrNotSquare, i, len(row), n)
			}
			values = append(values, row...)
		}
		return values, n, nil
	}

	var flat []float64
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, 0, fmt.Errorf("decode json matrix: %w", err)
	}
	return square(flat)
}

func square(values []float64) ([]float64, int, error) {
	if len(values) == 0 {
		return nil, 0, ErrEmptyMatrix
	}
	n := int(math.Round(math.Sqrt(float64(len(values)))))
	if n*n != len(values) {
		return nil, 0, fmt.Errorf("%w: %d values", ErrNotSquare, len(values))
	}
	return values, n, nil
}

// Write prints an n×n row-major matrix. precision applies to Text only.
func Write(w io.Writer, values []float64, n int, format Format, precision int) error {
	if n*n != len(values) {
		return fmt.Errorf("%w: %d values for side %d", ErrNotSquare, len(values), n)
	}

	switch format {
	case JSON:
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = values[i*n : i*n+n]
		}
		return json.NewEncoder(w).Encode(rows)
	case Text, "":
		bw := bufio.NewWriter(w)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if j > 0 {
					bw.WriteByte(' ')
				}
				bw.WriteString(formatFloat(values[i*n+j], precision))
			}
			bw.WriteByte('\n')
		}
		return bw.Flush()
	default:
		return fmt.Errorf("matrixio: unknown format %q", format)
	}
}

// formatFloat drops the sign of values that round to zero.
func formatFloat(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if s[0] == '-' && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}
