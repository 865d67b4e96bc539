package crypto

import (
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"io"
	"sort"

	onexxhash "github.com/OneOfOne/xxhash"
	xxhash "github.com/cespare/xxhash/v2"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// AllAlias expands to every registered algorithm name.
const AllAlias = "all"

// DefaultOutputLength is the output size reported for variable-length
// algorithms when no explicit length is requested.
const DefaultOutputLength = 32

type fixedAlgorithmImpl struct {
	name       string
	blockSize  int
	digestSize int
	newHash    func() (hash.Hash, error)
}

func (a fixedAlgorithmImpl) Name() string            { return a.name }
func (a fixedAlgorithmImpl) Family() AlgorithmFamily { return FamilyFixedDigest }
func (a fixedAlgorithmImpl) BlockSize() int          { return a.blockSize }
func (a fixedAlgorithmImpl) DigestSize() int         { return a.digestSize }

func (a fixedAlgorithmImpl) NewAccumulator(int) (Accumulator, error) {
	h, err := a.newHash()
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Creating %s accumulator", a.name)
	}

	return fixedAccumulator{h}, nil
}

type shakeAlgorithmImpl struct {
	name      string
	blockSize int
	newShake  func() sha3.ShakeHash
}

func (a shakeAlgorithmImpl) Name() string            { return a.name }
func (a shakeAlgorithmImpl) Family() AlgorithmFamily { return FamilyExtendableOutput }
func (a shakeAlgorithmImpl) BlockSize() int          { return a.blockSize }
func (a shakeAlgorithmImpl) DigestSize() int         { return DefaultOutputLength }

func (a shakeAlgorithmImpl) NewAccumulator(outputLength int) (Accumulator, error) {
	err := validateOutputLength(a.name, outputLength)
	if err != nil {
		return nil, err
	}

	return shakeAccumulator{h: a.newShake(), length: outputLength}, nil
}

type blake3AlgorithmImpl struct {
	name      string
	blockSize int
}

func (a blake3AlgorithmImpl) Name() string            { return a.name }
func (a blake3AlgorithmImpl) Family() AlgorithmFamily { return FamilyParameterized }
func (a blake3AlgorithmImpl) BlockSize() int          { return a.blockSize }
func (a blake3AlgorithmImpl) DigestSize() int         { return DefaultOutputLength }

func (a blake3AlgorithmImpl) NewAccumulator(outputLength int) (Accumulator, error) {
	err := validateOutputLength(a.name, outputLength)
	if err != nil {
		return nil, err
	}

	// keyless, unsalted; output length drives the XOF-style finalize
	return fixedAccumulator{blake3.New(outputLength, nil)}, nil
}

type fixedAccumulator struct {
	h hash.Hash
}

func (a fixedAccumulator) Write(p []byte) (int, error) { return a.h.Write(p) }

func (a fixedAccumulator) Finish() ([]byte, error) { return a.h.Sum(nil), nil }

type shakeAccumulator struct {
	h      sha3.ShakeHash
	length int
}

func (a shakeAccumulator) Write(p []byte) (int, error) { return a.h.Write(p) }

func (a shakeAccumulator) Finish() ([]byte, error) {
	out := make([]byte, a.length)

	_, err := io.ReadFull(a.h, out)
	if err != nil {
		return nil, bosherr.WrapError(err, "Reading extendable output")
	}

	return out, nil
}

// xxh3Hash128 adapts the 128-bit finalize of xxh3 onto hash.Hash. The
// canonical digest is the big-endian bytes of the 128-bit value.
type xxh3Hash128 struct {
	*xxh3.Hasher
}

func (h xxh3Hash128) Sum(b []byte) []byte {
	sum := h.Sum128().Bytes()
	return append(b, sum[:]...)
}

func (h xxh3Hash128) Size() int { return 16 }

func plainHash(fn func() hash.Hash) func() (hash.Hash, error) {
	return func() (hash.Hash, error) { return fn(), nil }
}

var algorithms = map[string]Algorithm{
	"md5":    fixedAlgorithmImpl{"md5", 64, 16, plainHash(md5.New)},
	"sha1":   fixedAlgorithmImpl{"sha1", 64, 20, plainHash(sha1.New)},
	"sha224": fixedAlgorithmImpl{"sha224", 64, 28, plainHash(sha256.New224)},
	"sha256": fixedAlgorithmImpl{"sha256", 64, 32, plainHash(sha256.New)},
	"sha384": fixedAlgorithmImpl{"sha384", 128, 48, plainHash(sha512.New384)},
	"sha512": fixedAlgorithmImpl{"sha512", 128, 64, plainHash(sha512.New)},

	"sha3_224": fixedAlgorithmImpl{"sha3_224", 144, 28, plainHash(sha3.New224)},
	"sha3_256": fixedAlgorithmImpl{"sha3_256", 136, 32, plainHash(sha3.New256)},
	"sha3_384": fixedAlgorithmImpl{"sha3_384", 104, 48, plainHash(sha3.New384)},
	"sha3_512": fixedAlgorithmImpl{"sha3_512", 72, 64, plainHash(sha3.New512)},

	"blake2b": fixedAlgorithmImpl{"blake2b", 128, 64, func() (hash.Hash, error) { return blake2b.New512(nil) }},
	"blake2s": fixedAlgorithmImpl{"blake2s", 64, 32, func() (hash.Hash, error) { return blake2s.New256(nil) }},

	"xxh32":    fixedAlgorithmImpl{"xxh32", 16, 4, plainHash(func() hash.Hash { return onexxhash.New32() })},
	"xxh64":    fixedAlgorithmImpl{"xxh64", 32, 8, plainHash(func() hash.Hash { return xxhash.New() })},
	"xxh3_64":  fixedAlgorithmImpl{"xxh3_64", 64, 8, plainHash(func() hash.Hash { return xxh3.New() })},
	"xxh3_128": fixedAlgorithmImpl{"xxh3_128", 64, 16, plainHash(func() hash.Hash { return xxh3Hash128{xxh3.New()} })},

	"shake_128": shakeAlgorithmImpl{"shake_128", 168, sha3.NewShake128},
	"shake_256": shakeAlgorithmImpl{"shake_256", 136, sha3.NewShake256},

	"blake3": blake3AlgorithmImpl{"blake3", 64},
}

// LookupAlgorithm resolves a registered algorithm by name.
func LookupAlgorithm(name string) (Algorithm, error) {
	algorithm, found := algorithms[name]
	if !found {
		return nil, UnknownAlgorithmError{Name: name}
	}

	return algorithm, nil
}

// Names lists every registered algorithm name, sorted lexicographically.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// ResolveNames maps requested names to algorithms, expanding the "all"
// alias. Unknown names are collected rather than failing the whole request;
// the caller decides what to do when nothing valid remains.
func ResolveNames(requested []string) ([]Algorithm, []string) {
	var resolved []Algorithm
	var unknown []string

	seen := map[string]bool{}

	appendName := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		resolved = append(resolved, algorithms[name])
	}

	for _, name := range requested {
		if name == AllAlias {
			for _, registered := range Names() {
				appendName(registered)
			}
			continue
		}

		if _, found := algorithms[name]; !found {
			unknown = append(unknown, name)
			continue
		}

		appendName(name)
	}

	return resolved, unknown
}

func validateOutputLength(algorithm string, length int) error {
	if length < MinOutputLength || length > MaxOutputLength {
		return InvalidLengthError{Algorithm: algorithm, Length: length}
	}

	return nil
}

func encodeDigest(sum []byte) string {
	return hex.EncodeToString(sum)
}
