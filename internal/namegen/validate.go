package namegen

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf16"
)

const (
	MinAnimalTypeLen = 2
	MaxAnimalTypeLen = 42
	MinBulkCount     = 1
	MaxBulkCount     = 10
)

const (
	MsgAnimalTypeRequired     = "Animal type is required and cannot be empty"
	MsgAnimalTypeTooShort     = "Animal type must be at least 2 characters long"
	MsgAnimalTypeTooLong      = "Animal type cannot exceed 42 characters"
	MsgAnimalTypeNumeric      = "Animal type cannot contain numeric values"
	MsgAnimalTypeAlphabetic   = "Animal type can only contain alphabetic characters (no spaces or special characters)"
	msgAnimalTypeUnsupportedF = "Animal type '%s' is not supported by the generation source"

	MsgCountRequired  = "Count is required"
	MsgCountNotNumber = "Count must be a number"
	MsgCountNotWhole  = "Count must be a whole number"
	MsgCountTooSmall  = "Count must be at least 1"
	MsgCountTooLarge  = "Count cannot exceed 10"
)

// Verdict is the outcome of a validation stage. Reason is empty when Valid.
type Verdict struct {
	Valid  bool
	Reason string
}

func valid() Verdict { return Verdict{Valid: true} }

func invalid(reason string) Verdict { return Verdict{Reason: reason} }

// ValidateAnimalType checks raw against the animal-type rules in order and
// reports the first failure. The source decides which categories exist.
func ValidateAnimalType(source Source, raw string) Verdict {
	trimmed := trimAnimalType(raw)
	if trimmed == "" {
		return invalid(MsgAnimalTypeRequired)
	}

	n := utf16Len(trimmed)
	if n < MinAnimalTypeLen {
		return invalid(MsgAnimalTypeTooShort)
	}
	if n > MaxAnimalTypeLen {
		return invalid(MsgAnimalTypeTooLong)
	}

	if strings.ContainsFunc(trimmed, isASCIIDigit) {
		return invalid(MsgAnimalTypeNumeric)
	}
	if strings.ContainsFunc(trimmed, func(r rune) bool { return !isASCIILetter(r) }) {
		return invalid(MsgAnimalTypeAlphabetic)
	}

	if source == nil || !source.SupportsCategory(categoryToken(trimmed)) {
		return invalid(fmt.Sprintf(msgAnimalTypeUnsupportedF, trimmed))
	}
	return valid()
}

// ValidateCount narrows a caller-supplied bulk count to an integer in
// [MinBulkCount, MaxBulkCount]. Strings are never coerced to numbers.
func ValidateCount(raw any) (int, Verdict) {
	if raw == nil {
		return 0, invalid(MsgCountRequired)
	}

	f, ok := numericValue(raw)
	if !ok || math.IsNaN(f) {
		return 0, invalid(MsgCountNotNumber)
	}
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, invalid(MsgCountNotWhole)
	}
	if f < MinBulkCount {
		return 0, invalid(MsgCountTooSmall)
	}
	if f > MaxBulkCount {
		return 0, invalid(MsgCountTooLarge)
	}
	return int(f), valid()
}

func numericValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// trimAnimalType strips Unicode whitespace and the byte order mark, the set
// JavaScript clients treat as blank.
func trimAnimalType(raw string) string {
	return strings.TrimFunc(raw, isBlank)
}

func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// utf16Len counts UTF-16 code units, so characters outside the BMP count as two.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

func categoryToken(trimmed string) string {
	return strings.ToLower(trimmed)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
