package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	methodPrefix   = "GET "
	versionSuffix  = " HTTP/1.1"
	terminalTarget = "END"
	fieldSeparator = ";"
)

var (
	ErrMissingMethod   = errors.New("request line does not start with \"GET \"")
	ErrMissingVersion  = errors.New("request line does not end with \" HTTP/1.1\"")
	ErrInvalidEncoding = errors.New("request line is not valid UTF-8")
)

// readRequestHead reads lines up to the first empty line or the end of the
// stream. A '\r' is only stripped as part of a "\r\n" terminator.
func readRequestHead(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line == "" && err != nil {
			return lines, nil
		}

		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidEncoding, len(lines)+1)
		}
		if line == "" {
			return lines, nil
		}
		lines = append(lines, line)

		if err != nil {
			return lines, nil
		}
	}
}

// parseRequestLine strips the method and version from the request line and
// returns the request target.
func parseRequestLine(line string) (string, error) {
	target, ok := strings.CutPrefix(line, methodPrefix)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingMethod, line)
	}

	target, ok = strings.CutSuffix(target, versionSuffix)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingVersion, line)
	}
	return target, nil
}

func isTerminal(target string) bool {
	return target == terminalTarget
}

// splitPayload keeps empty fields, "a;;b" yields "a", "", "b".
func splitPayload(target string) []string {
	return strings.Split(target, fieldSeparator)
}
