// Package dregistry loads every definition kind out of an archive and serves
// typed lookups over the result.
//
// A load builds a complete generation of tables off to the side and then
// publishes it at once. Readers holding a table from an older generation keep
// seeing it unchanged, so lookups never need locking.
package dregistry

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rune-savior/rdef/darchive"
	"rune-savior/rdef/dcodec"
)

type (
	Options struct {
		// Workers bounds how many goroutines decode at once. Zero means
		// GOMAXPROCS.
		Workers int
		// ChunkSize is the number of ids one goroutine decodes in a row.
		ChunkSize int
		Logger    *zap.Logger
	}
	Registry struct {
		workers   int
		chunkSize int
		logger    *zap.Logger
		current   atomic.Pointer[generation]
	}
	generation struct {
		id       uuid.UUID
		revision int
		archive  darchive.Archive
		tables   map[dcodec.Kind]View
	}
	LoadReport struct {
		Generation uuid.UUID
		Revision   int
		Sizes      map[dcodec.Kind]int
		Failures   []ErrLoadFailure
	}
	ErrLoadFailure struct {
		Kind  dcodec.Kind
		ID    int32
		Cause error
	}
)

const (
	NoRevision       = -1
	DefaultChunkSize = 256
	// ScriptNameFormat is the name index key of a client script.
	ScriptNameFormat = "[clientscript,%s]"
	ScriptNotFound   = int32(-1)
)

func (r ErrLoadFailure) Error() string {
	return fmt.Sprintf("%s %d: load failure: %v", r.Kind, r.ID, r.Cause)
}

func (r ErrLoadFailure) Unwrap() error {
	return r.Cause
}
