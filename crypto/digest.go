package crypto

import (
	"fmt"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	boshfu "github.com/bwprog/hexsum/fileutil"
)

const digestProviderLogTag = "digestProvider"

// DigestRequest pairs an algorithm with the output length to use for
// variable-length families. OutputLength is ignored for fixed-digest
// algorithms.
type DigestRequest struct {
	Algorithm    Algorithm
	OutputLength int
}

// DigestResult holds the outcome for one requested algorithm. A backend
// failure is recorded in Err and does not disturb sibling results.
type DigestResult struct {
	Digest Digest
	Err    error
}

type digestImpl struct {
	algorithm string
	hex       string
}

func (d digestImpl) Algorithm() string {
	return d.algorithm
}

func (d digestImpl) Hex() string {
	return d.hex
}

func (d digestImpl) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.hex)
}

func NewDigest(algorithm, hex string) Digest {
	return digestImpl{
		algorithm: algorithm,
		hex:       hex,
	}
}

type digestProviderImpl struct {
	reader boshfu.ChunkedReader
	logger boshlog.Logger
}

func NewDigestProvider(fs boshsys.FileSystem, logger boshlog.Logger) DigestProvider {
	return digestProviderImpl{
		reader: boshfu.NewChunkedReader(fs, boshfu.DefaultChunkSize, logger),
		logger: logger,
	}
}

func (p digestProviderImpl) CreateFromFile(path string, request DigestRequest) (Digest, error) {
	results, err := p.CreateAllFromFile(path, []DigestRequest{request})
	if err != nil {
		return nil, err
	}

	if results[0].Err != nil {
		return nil, results[0].Err
	}

	return results[0].Digest, nil
}

// CreateAllFromFile streams the file once, fanning every chunk out to one
// accumulator per request so that each algorithm observes every byte exactly
// once, in order. Output lengths are validated before the file is touched.
func (p digestProviderImpl) CreateAllFromFile(path string, requests []DigestRequest) ([]DigestResult, error) {
	for _, request := range requests {
		err := request.validate()
		if err != nil {
			return nil, err
		}
	}

	names := make([]string, len(requests))
	accumulators := make([]Accumulator, len(requests))
	results := make([]DigestResult, len(requests))

	for i, request := range requests {
		names[i] = request.Algorithm.Name()

		accumulator, err := request.Algorithm.NewAccumulator(request.OutputLength)
		if err != nil {
			results[i].Err = DigestFailureError{Algorithm: names[i], Err: err}
			continue
		}

		accumulators[i] = accumulator
	}

	p.logger.Debug(digestProviderLogTag, "Hashing '%s' with %d algorithm(s)", path, len(requests))

	err := p.reader.ReadChunks(path, func(chunk []byte) error {
		for i, accumulator := range accumulators {
			if accumulator == nil {
				continue
			}

			_, writeErr := accumulator.Write(chunk)
			if writeErr != nil {
				results[i].Err = DigestFailureError{Algorithm: names[i], Err: writeErr}
				accumulators[i] = nil
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for i, accumulator := range accumulators {
		if accumulator == nil {
			continue
		}

		sum, finishErr := accumulator.Finish()
		if finishErr != nil {
			results[i].Err = DigestFailureError{Algorithm: names[i], Err: finishErr}
			continue
		}

		results[i].Digest = NewDigest(names[i], encodeDigest(sum))
	}

	return results, nil
}

func (r DigestRequest) validate() error {
	if r.Algorithm.Family() == FamilyFixedDigest {
		return nil
	}

	return validateOutputLength(r.Algorithm.Name(), r.OutputLength)
}
