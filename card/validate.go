package card

import (
	"fmt"
	"strings"
)

const (
	MinLength = 12
	MaxLength = 19

	MsgInvalidFormat = "invalid format or length"
	unknownBrand     = "unknown"
)

type Status uint8

const (
	// StatusValid checksum passed and a brand matched
	StatusValid Status = iota + 1
	// StatusChecksumFailed a brand matched, the checksum did not
	StatusChecksumFailed
	// StatusUnknownBrand no brand matched, whatever the checksum
	StatusUnknownBrand
	// StatusInvalidFormat not digits, or too short/long
	StatusInvalidFormat
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusChecksumFailed:
		return "checksum_failed"
	case StatusUnknownBrand:
		return "unknown_brand"
	case StatusInvalidFormat:
		return "invalid_format"
	}
	return "undefined"
}

// Result is the outcome of one ValidateAndIdentify call.
type Result struct {
	Raw           string
	Normalized    string
	ChecksumValid bool
	Brand         string // empty when no rule matched
	Status        Status
	Message       string
}

func (r Result) Identified() bool {
	return r.Brand != ""
}

// ValidateAndIdentify normalizes raw, checks its format, then runs the
// checksum and the brand lookup independently of each other. It never fails:
// every input is answered with a Result.
func ValidateAndIdentify(raw string) Result {
	normalized := Normalize(raw)
	result := Result{Raw: raw, Normalized: normalized}
	if !IsDigits(normalized) || len(normalized) < MinLength || len(normalized) > MaxLength {
		result.Status = StatusInvalidFormat
		result.Message = MsgInvalidFormat
		return result
	}

	result.ChecksumValid = Luhn(normalized)
	result.Brand, _ = Classify(normalized)
	switch {
	case !result.Identified():
		result.Status = StatusUnknownBrand
	case result.ChecksumValid:
		result.Status = StatusValid
	default:
		result.Status = StatusChecksumFailed
	}
	result.Message = message(result)
	return result
}

func message(r Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Number: %s\nNormalized: %s\nChecksum valid: %t\n", r.Raw, r.Normalized, r.ChecksumValid)
	switch {
	case !r.ChecksumValid && !r.Identified():
		b.WriteString("Brand: unknown. Invalid number or unsupported brand.")
	case !r.ChecksumValid:
		fmt.Fprintf(&b, "Brand: %s (warning: brand pattern matched but the checksum failed)", r.Brand)
	case r.Identified():
		fmt.Fprintf(&b, "Brand: %s", r.Brand)
	default:
		fmt.Fprintf(&b, "Brand: %s", unknownBrand)
	}
	return b.String()
}
