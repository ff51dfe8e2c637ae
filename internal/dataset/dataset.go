// SPDX-License-Identifier: MIT

// Package dataset reads design matrices from CSV files with a header row.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/krls/matrix"
)

var (
	// ErrNoResponse is returned when the response column is not in the header.
	ErrNoResponse = errors.New("dataset: response column not found")

	// ErrEmpty is returned for a file without data rows or without covariates.
	ErrEmpty = errors.New("dataset: no data")
)

// Dataset is a design matrix, its response and the covariate names in column order.
type Dataset struct {
	X        *matrix.Dense
	Y        []float64
	Names    []string
	Response string
}

// Read parses CSV from r. The response column may appear anywhere; every other
// column becomes a covariate. An empty response reads covariates only (Y is nil).
func Read(r io.Reader, response string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: header: %w", err)
	}
	yCol := -1
	names := make([]string, 0, len(header))
	for j, h := range header {
		h = strings.TrimSpace(h)
		if response != "" && h == response {
			yCol = j
			continue
		}
		names = append(names, h)
	}
	if response != "" && yCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoResponse, response)
	}
	if len(names) == 0 {
		return nil, ErrEmpty
	}

	var (
		data []float64
		y    []float64
		line = 1
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d column %q: %w", line, header[j], err)
			}
			if j == yCol {
				y = append(y, v)
				continue
			}
			data = append(data, v)
		}
	}
	rows := len(data) / len(names)
	if rows == 0 {
		return nil, ErrEmpty
	}
	X, err := matrix.NewDenseFrom(rows, len(names), data)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return &Dataset{X: X, Y: y, Names: names, Response: response}, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path, response string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Read(f, response)
}
