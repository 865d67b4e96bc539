package crypto

import (
	"strings"
)

// CompareOutcome reports whether a generated digest matches a user-supplied
// reference hex string, after lowercasing both sides. Mismatched lengths are
// ordinary non-matches, never an error.
type CompareOutcome struct {
	Generated string
	Provided  string
	Matches   bool
}

// Compare assumes providedHex already passed ValidateHexString; syntax
// checking belongs to the boundary that accepted the value.
func Compare(generated Digest, providedHex string) CompareOutcome {
	generatedHex := strings.ToLower(generated.Hex())
	provided := strings.ToLower(providedHex)

	return CompareOutcome{
		Generated: generatedHex,
		Provided:  provided,
		Matches:   generatedHex == provided,
	}
}

// ValidateHexString rejects empty strings and any character outside
// [0-9a-fA-F]. Odd-length values are allowed; they simply never match.
func ValidateHexString(value string) error {
	if value == "" {
		return InvalidHexSyntaxError{Value: value}
	}

	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return InvalidHexSyntaxError{Value: value}
		}
	}

	return nil
}
