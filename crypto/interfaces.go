package crypto

import (
	"io"
)

type AlgorithmFamily string

const (
	// FamilyFixedDigest algorithms emit a digest of a fixed, native size.
	FamilyFixedDigest AlgorithmFamily = "fixed"

	// FamilyExtendableOutput algorithms (SHAKE) emit a caller-chosen number
	// of bytes; shorter outputs are a prefix of longer ones.
	FamilyExtendableOutput AlgorithmFamily = "xof"

	// FamilyParameterized covers blake3, which accepts an explicit output
	// length like an XOF without being a SHA-3-style XOF.
	FamilyParameterized AlgorithmFamily = "parameterized"
)

type Algorithm interface {
	Name() string
	Family() AlgorithmFamily
	BlockSize() int

	// DigestSize is the native digest size in bytes. For variable-length
	// families it is the default output length.
	DigestSize() int

	// NewAccumulator returns a fresh accumulator. outputLength applies to
	// variable-length families and must be within [1,128]; fixed-digest
	// algorithms ignore it.
	NewAccumulator(outputLength int) (Accumulator, error)
}

// Accumulator is an algorithm's running state. Write folds bytes in; the
// digest is defined only for the exact byte order written.
type Accumulator interface {
	io.Writer
	Finish() ([]byte, error)
}

type Digest interface {
	Algorithm() string
	Hex() string
	String() string
}

type DigestProvider interface {
	CreateFromFile(path string, request DigestRequest) (Digest, error)
	CreateAllFromFile(path string, requests []DigestRequest) ([]DigestResult, error)
}

var _ Algorithm = fixedAlgorithmImpl{}
var _ Algorithm = shakeAlgorithmImpl{}
var _ Algorithm = blake3AlgorithmImpl{}
var _ Digest = digestImpl{}
var _ DigestProvider = digestProviderImpl{}
