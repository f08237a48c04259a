package dregistry

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rune-savior/ds"
	"rune-savior/rdef/darchive"
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/dtype"
)

func NewRegistry(opts Options) *Registry {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Registry{
		workers:   opts.Workers,
		chunkSize: opts.ChunkSize,
		logger:    opts.Logger,
	}
}

// Load decodes every kind out of archive and publishes the result as the
// current generation. Records that fail to decode are skipped and listed in
// the report. Only a cancelled context fails the load, in which case the
// previous generation stays current.
func (r *Registry) Load(ctx context.Context, archive darchive.Archive, revision int) (LoadReport, error) {
	gen := &generation{
		id:       uuid.New(),
		revision: revision,
		archive:  archive,
		tables:   make(map[dcodec.Kind]View, len(loaders)),
	}
	opts := loadOptions{
		workers:   r.workers,
		chunkSize: r.chunkSize,
		logger:    r.logger,
	}
	logger := r.logger.With(
		zap.Stringer("generation", gen.id),
		zap.Int("revision", revision),
	)

	var (
		mu       sync.Mutex
		failures []ErrLoadFailure
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, loader := range loaders {
		g.Go(func() error {
			table, kindFailures, err := loader.load(gctx, archive, opts)
			if err != nil {
				return errors.Wrapf(err, "%s", loader.kind())
			}
			mu.Lock()
			defer mu.Unlock()
			gen.tables[loader.kind()] = table
			failures = append(failures, kindFailures...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		err := errors.Wrap(err, "Load error")
		return LoadReport{}, err
	}
	if err := ctx.Err(); err != nil {
		err := errors.Wrap(err, "Load error")
		return LoadReport{}, err
	}

	sort.Slice(failures, func(i, j int) bool {
		if failures[i].Kind != failures[j].Kind {
			return failures[i].Kind < failures[j].Kind
		}
		return failures[i].ID < failures[j].ID
	})
	for _, failure := range failures {
		logger.Warn(
			"skipping definition",
			zap.String("kind", string(failure.Kind)),
			zap.Int32("id", failure.ID),
			zap.Error(failure.Cause),
		)
	}

	r.current.Store(gen)
	report := LoadReport{
		Generation: gen.id,
		Revision:   revision,
		Sizes: lo.MapValues(gen.tables, func(table View, _ dcodec.Kind) int {
			return table.Size()
		}),
		Failures: failures,
	}
	logger.Info(
		"registry loaded",
		zap.String("sizes", ds.DumpJSON(report.Sizes)),
		zap.Int("failures", len(failures)),
	)
	return report, nil
}

// Revision is the revision of the current generation, or NoRevision before
// the first load.
func (r *Registry) Revision() int {
	gen := r.current.Load()
	if gen == nil {
		return NoRevision
	}
	return gen.revision
}

// Generation identifies the current generation. It is the zero UUID before
// the first load.
func (r *Registry) Generation() uuid.UUID {
	gen := r.current.Load()
	if gen == nil {
		return uuid.Nil
	}
	return gen.id
}

func (r *Registry) RevisionIsOrAfter(revision int) bool {
	return r.Revision() >= revision
}

func (r *Registry) RevisionIsOrBefore(revision int) bool {
	return r.Revision() <= revision
}

// Kinds lists every kind the registry loads, in load order.
func (r *Registry) Kinds() []dcodec.Kind {
	return lo.Map(loaders, func(loader kindLoader, _ int) dcodec.Kind {
		return loader.kind()
	})
}

// Table returns the current table of kind without its concrete type.
func (r *Registry) Table(kind dcodec.Kind) (View, bool) {
	if gen := r.current.Load(); gen != nil {
		if table, ok := gen.tables[kind]; ok {
			return table, true
		}
	}
	loader, ok := lo.Find(loaders, func(loader kindLoader) bool {
		return loader.kind() == kind
	})
	if !ok {
		return nil, false
	}
	return loader.empty(r.logger), true
}

// FindScriptID resolves a client script name through the archive's name
// index. A missing name, a failing index or an unloaded registry all yield
// ScriptNotFound.
func (r *Registry) FindScriptID(ctx context.Context, name string) int32 {
	key := fmt.Sprintf(ScriptNameFormat, name)
	gen := r.current.Load()
	if gen == nil {
		r.logger.Warn("script lookup before load", zap.String("name", key))
		return ScriptNotFound
	}
	id, ok, err := gen.archive.IDByName(ctx, dtype.TableClientScripts, key)
	if err != nil {
		r.logger.Warn("script lookup failed", zap.String("name", key), zap.Error(err))
		return ScriptNotFound
	}
	if !ok {
		r.logger.Warn("script not found", zap.String("name", key))
		return ScriptNotFound
	}
	return id
}
