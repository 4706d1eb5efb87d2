package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const outFile = "data.csv"

var (
	ErrCreateOutput = errors.New("failed to create output file")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// joinFragments prefixes every fragment with a newline. No fragments give an
// empty blob.
func joinFragments(fragments []string) string {
	var sb strings.Builder
	for _, f := range fragments {
		sb.WriteByte('\n')
		sb.WriteString(f)
	}
	return sb.String()
}

// writeOutput truncates path and writes the joined fragments in one call.
func writeOutput(path string, fragments []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateOutput, err)
	}

	if _, err := file.WriteString(joinFragments(fragments)); err != nil {
		file.Close()
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
