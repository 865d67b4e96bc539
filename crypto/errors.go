package crypto

import (
	"fmt"
)

const (
	MinOutputLength = 1
	MaxOutputLength = 128
)

type UnknownAlgorithmError struct {
	Name string
}

func (e UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("Unrecognized digest algorithm: %s", e.Name)
}

type InvalidLengthError struct {
	Algorithm string
	Length    int
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf(
		"Invalid output length %d for %s: must be between %d and %d",
		e.Length, e.Algorithm, MinOutputLength, MaxOutputLength,
	)
}

type DigestFailureError struct {
	Algorithm string
	Err       error
}

func (e DigestFailureError) Error() string {
	return fmt.Sprintf("Calculating %s digest: %s", e.Algorithm, e.Err)
}

func (e DigestFailureError) Unwrap() error {
	return e.Err
}

type InvalidHexSyntaxError struct {
	Value string
}

func (e InvalidHexSyntaxError) Error() string {
	return fmt.Sprintf("Invalid hexadecimal value: %s", e.Value)
}
