// Package dpack turns authored TOML definitions into archive records. A
// definition naming an inherited id is merged onto the decoded base record
// before it is encoded.
package dpack

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rune-savior/rdef/darchive"
	"rune-savior/rdef/dcodec"
)

type (
	Packer[T any] struct {
		schema  *dcodec.Schema[T]
		archive darchive.Archive
		logger  *zap.Logger
		// skip names why a merged definition must not be stored, or returns
		// "" to store it.
		skip func(t *T) string
	}
	// DirPacker packs a directory without naming the kind's type.
	DirPacker interface {
		Kind() dcodec.Kind
		PackDir(ctx context.Context, dir string) (Report, error)
	}
	Report struct {
		Packed   []int32
		Skipped  []string
		Failures []ErrPackFailure
	}
	ErrPackFailure struct {
		Path  string
		Cause error
	}
	ErrSkipped struct {
		ID     int32
		Reason string
	}
)

const (
	FileExtension = ".toml"
	NoID          = int32(-1)
)

func (r ErrPackFailure) Error() string {
	return fmt.Sprintf("%s: pack failure: %v", r.Path, r.Cause)
}

func (r ErrPackFailure) Unwrap() error {
	return r.Cause
}

func (r ErrSkipped) Error() string {
	return fmt.Sprintf("definition %d skipped: %s", r.ID, r.Reason)
}
