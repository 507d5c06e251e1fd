package services

import (
	"fmt"
	"strconv"
	"strings"
)

const codePrefix = "PNR"

// FormatCode renders the n-th reservation code: 1 -> PNR001, 1234 -> PNR1234.
func FormatCode(n int) string {
	return fmt.Sprintf("%s%03d", codePrefix, n)
}

// ParseCode extracts the numeric suffix of a PNR code.
func ParseCode(code string) (int, bool) {
	code = strings.TrimSpace(code)
	if !strings.HasPrefix(code, codePrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(code[len(codePrefix):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// nextCodeNumber picks the number after the highest issued one. last is the
// number tried by a previous attempt in the same transaction, 0 if none.
func nextCodeNumber(maxIssued, last int) int {
	next := maxIssued + 1
	if next <= last {
		next = last + 1
	}
	return next
}
