package dregistry

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rune-savior/rdef/darchive"
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/dtype"
)

type (
	kindLoader interface {
		kind() dcodec.Kind
		empty(logger *zap.Logger) View
		load(ctx context.Context, archive darchive.Archive, opts loadOptions) (View, []ErrLoadFailure, error)
	}
	schemaLoader[T any] struct {
		schema *dcodec.Schema[T]
	}
	loadOptions struct {
		workers   int
		chunkSize int
		logger    *zap.Logger
	}
)

var loaders = []kindLoader{
	schemaLoader[dtype.Npc]{dtype.NpcSchema},
	schemaLoader[dtype.Object]{dtype.ObjectSchema},
	schemaLoader[dtype.Item]{dtype.ItemSchema},
	schemaLoader[dtype.Varbit]{dtype.VarbitSchema},
	schemaLoader[dtype.Varp]{dtype.VarpSchema},
	schemaLoader[dtype.Sequence]{dtype.SequenceSchema},
	schemaLoader[dtype.Enum]{dtype.EnumSchema},
	schemaLoader[dtype.HealthBar]{dtype.HealthBarSchema},
	schemaLoader[dtype.Hitsplat]{dtype.HitsplatSchema},
	schemaLoader[dtype.Struct]{dtype.StructSchema},
	schemaLoader[dtype.Texture]{dtype.TextureSchema},
}

func (l schemaLoader[T]) kind() dcodec.Kind {
	return l.schema.Kind
}

func (l schemaLoader[T]) empty(logger *zap.Logger) View {
	return newTable(l.schema, nil, logger)
}

// load decodes every id of the kind. Records that fail to read or decode are
// reported and skipped; only a cancelled context aborts.
func (l schemaLoader[T]) load(
	ctx context.Context,
	archive darchive.Archive,
	opts loadOptions,
) (View, []ErrLoadFailure, error) {
	ids, err := archive.IDsIn(ctx, l.schema.Table)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		err := errors.Wrapf(err, "table %s", l.schema.Table)
		failure := ErrLoadFailure{Kind: l.schema.Kind, ID: -1, Cause: err}
		return newTable(l.schema, nil, opts.logger), []ErrLoadFailure{failure}, nil
	}

	var (
		mu       sync.Mutex
		entries  = make(map[int32]T, len(ids))
		failures []ErrLoadFailure
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)
	for _, chunk := range lo.Chunk(ids, opts.chunkSize) {
		g.Go(func() error {
			decoded := make(map[int32]T, len(chunk))
			var chunkFailures []ErrLoadFailure
			for _, id := range chunk {
				if err := gctx.Err(); err != nil {
					return err
				}
				entity, err := l.loadOne(gctx, archive, id)
				if err != nil {
					chunkFailures = append(chunkFailures, ErrLoadFailure{Kind: l.schema.Kind, ID: id, Cause: err})
					continue
				}
				decoded[id] = *entity
			}

			mu.Lock()
			defer mu.Unlock()
			for id, entity := range decoded {
				entries[id] = entity
			}
			failures = append(failures, chunkFailures...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return newTable(l.schema, entries, opts.logger), failures, nil
}

func (l schemaLoader[T]) loadOne(ctx context.Context, archive darchive.Archive, id int32) (*T, error) {
	bs, err := archive.BytesFor(ctx, l.schema.Table, id)
	if err != nil {
		return nil, errors.Wrap(err, "BytesFor error")
	}
	return l.schema.Decode(id, bs)
}

// TableOf returns the current table of the kind described by schema. Before
// the first load, and for kinds the registry does not know, the table is
// empty.
func TableOf[T any](r *Registry, schema *dcodec.Schema[T]) *Table[T] {
	if gen := r.current.Load(); gen != nil {
		if table, ok := gen.tables[schema.Kind].(*Table[T]); ok {
			return table
		}
	}
	return newTable(schema, nil, r.logger)
}

func (r *Registry) Npcs() *Table[dtype.Npc] {
	return TableOf(r, dtype.NpcSchema)
}

func (r *Registry) Objects() *Table[dtype.Object] {
	return TableOf(r, dtype.ObjectSchema)
}

func (r *Registry) Items() *Table[dtype.Item] {
	return TableOf(r, dtype.ItemSchema)
}

func (r *Registry) Varbits() *Table[dtype.Varbit] {
	return TableOf(r, dtype.VarbitSchema)
}

func (r *Registry) Varps() *Table[dtype.Varp] {
	return TableOf(r, dtype.VarpSchema)
}

func (r *Registry) Sequences() *Table[dtype.Sequence] {
	return TableOf(r, dtype.SequenceSchema)
}

func (r *Registry) Enums() *Table[dtype.Enum] {
	return TableOf(r, dtype.EnumSchema)
}

func (r *Registry) HealthBars() *Table[dtype.HealthBar] {
	return TableOf(r, dtype.HealthBarSchema)
}

func (r *Registry) Hitsplats() *Table[dtype.Hitsplat] {
	return TableOf(r, dtype.HitsplatSchema)
}

func (r *Registry) Structs() *Table[dtype.Struct] {
	return TableOf(r, dtype.StructSchema)
}

func (r *Registry) Textures() *Table[dtype.Texture] {
	return TableOf(r, dtype.TextureSchema)
}
