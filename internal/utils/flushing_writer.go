package utils

import (
	"io"
	"sync"
)

// flushableWriter matches buffered writers that expose an explicit flush.
type flushableWriter interface {
	Flush() error
}

// FlushingWriter forwards writes to the wrapped writer and flushes it after every write when the writer supports flushing.
type FlushingWriter struct {
	destination io.Writer
	writeMutex  sync.Mutex
}

// NewFlushingWriter wraps the provided writer. Writers that are already wrapped are returned unchanged.
func NewFlushingWriter(destination io.Writer) io.Writer {
	if destination == nil {
		return nil
	}
	if existingWriter, alreadyWrapped := destination.(*FlushingWriter); alreadyWrapped {
		return existingWriter
	}
	return &FlushingWriter{destination: destination}
}

// Write forwards the data to the wrapped writer and flushes it when possible.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	if flushingWriter == nil || flushingWriter.destination == nil {
		return 0, nil
	}

	flushingWriter.writeMutex.Lock()
	defer flushingWriter.writeMutex.Unlock()

	bytesWritten, writeError := flushingWriter.destination.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}

	flushable, supportsFlush := flushingWriter.destination.(flushableWriter)
	if !supportsFlush {
		return bytesWritten, nil
	}
	return bytesWritten, flushable.Flush()
}
