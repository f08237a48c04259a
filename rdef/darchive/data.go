// Package darchive describes the asset archive the definition codecs read
// from and write to. Compression, indexing and checksumming of the archive
// belong to its implementations.
package darchive

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

type (
	// Table addresses one partition of the archive: a group inside an index.
	Table struct {
		Index uint8 `json:"index" yaml:"index"`
		Group int32 `json:"group" yaml:"group"`
	}
	Archive interface {
		// BytesFor returns the raw record stored for id, or ErrNotFound.
		BytesFor(ctx context.Context, table Table, id int32) ([]byte, error)
		// IDsIn lists the ids present in table in ascending order.
		IDsIn(ctx context.Context, table Table) ([]int32, error)
		// IDByName resolves a name through the table's name index.
		IDByName(ctx context.Context, table Table, name string) (int32, bool, error)
		Put(ctx context.Context, table Table, id int32, bs []byte) error
	}
)

var (
	ErrNotFound = errors.New("record not found")
)

func (t Table) String() string {
	return fmt.Sprintf("%d/%d", t.Index, t.Group)
}
