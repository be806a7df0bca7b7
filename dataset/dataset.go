// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads and writes empirical datasets: sequences of
// real numbers separated by whitespace, typically one per line.
package dataset

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// Load reads the dataset in the named file. Files ending in ".gz" are
// decompressed.
func Load(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "decompress dataset %s", path)
		}
		defer zr.Close()
		r = zr
	}

	xs, err := Read(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read dataset %s", path)
	}
	return xs, nil
}

// Read parses whitespace-separated numbers from r. Blank lines and
// lines starting with '#' are skipped. NaN and infinite values are
// rejected.
func Read(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		for _, field := range strings.Fields(l) {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return nil, errors.Newf("line %d: non-finite value %q", line, field)
			}
			xs = append(xs, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}

// Save writes xs to the named file, one value per line, compressing
// it if the name ends in ".gz". The result can be read back with Load.
func Save(path string, xs []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create dataset %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close dataset %s", path)
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return Write(f, xs)
	}
	zw := gzip.NewWriter(f)
	if err := Write(zw, xs); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// Write writes xs to w, one value per line, in the shortest form
// that parses back to the same value.
func Write(w io.Writer, xs []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, x := range xs {
		buf = strconv.AppendFloat(buf[:0], x, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "write dataset")
		}
	}
	return errors.Wrap(bw.Flush(), "write dataset")
}
