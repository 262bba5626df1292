// SPDX-License-Identifier: MIT
// Package: lvheap/core
//
// input.go — parsing of user-typed values.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue converts raw text into an insertable value.
// Surrounding whitespace is ignored; empty or non-integer text yields ErrInvalidInput.
func ParseValue(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: missing value", ErrInvalidInput)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, raw)
	}

	return v, nil
}
