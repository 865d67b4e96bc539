package fileutil

import (
	"fmt"
	"io"
	"os"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

const chunkedReaderLogTag = "chunkedReader"

// DefaultChunkSize bounds peak memory regardless of file size.
const DefaultChunkSize = 1 << 20

type FileNotFoundError struct {
	Path string
}

func (e FileNotFoundError) Error() string {
	return fmt.Sprintf("File not found: %s", e.Path)
}

type PermissionDeniedError struct {
	Path string
}

func (e PermissionDeniedError) Error() string {
	return fmt.Sprintf("Permission denied reading file: %s", e.Path)
}

// ChunkedReader streams a file through a caller-supplied callback in
// bounded-size chunks. Each ReadChunks call re-opens the file and reads it
// from byte 0; the handle is closed whether the stream completes, errors,
// or the callback aborts it.
type ChunkedReader struct {
	fs        boshsys.FileSystem
	chunkSize int
	logger    boshlog.Logger
}

func NewChunkedReader(fs boshsys.FileSystem, chunkSize int, logger boshlog.Logger) ChunkedReader {
	return ChunkedReader{
		fs:        fs,
		chunkSize: chunkSize,
		logger:    logger,
	}
}

// ReadChunks invokes onChunk for each chunk in file order. The chunk slice
// is reused between calls and must not be retained. A non-nil callback error
// aborts the stream and is returned as-is; read failures never yield a
// truncated stream silently.
func (r ChunkedReader) ReadChunks(path string, onChunk func(chunk []byte) error) error {
	file, err := r.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return openError(path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	r.logger.Debug(chunkedReaderLogTag, "Reading '%s' in chunks of %d bytes", path, r.chunkSize)

	buf := make([]byte, r.chunkSize)

	for {
		n, readErr := file.Read(buf)
		if n > 0 {
			err = onChunk(buf[:n])
			if err != nil {
				return err
			}
		}

		if readErr == io.EOF || (readErr == nil && n == 0) {
			return nil
		}

		if readErr != nil {
			return bosherr.WrapErrorf(readErr, "Reading file '%s'", path)
		}
	}
}

func openError(path string, err error) error {
	if os.IsNotExist(err) {
		return FileNotFoundError{Path: path}
	}

	if os.IsPermission(err) {
		return PermissionDeniedError{Path: path}
	}

	return bosherr.WrapErrorf(err, "Opening file '%s'", path)
}
