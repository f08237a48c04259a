package dpack

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"rune-savior/rdef/darchive"
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/dmerge"
)

func NewPacker[T any](schema *dcodec.Schema[T], archive darchive.Archive, logger *zap.Logger) *Packer[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Packer[T]{
		schema:  schema,
		archive: archive,
		logger:  logger.With(zap.String("kind", string(schema.Kind))),
	}
}

// WithSkip sets the rule deciding which merged definitions are left out of
// the archive.
func (p *Packer[T]) WithSkip(skip func(t *T) string) *Packer[T] {
	p.skip = skip
	return p
}

func (p *Packer[T]) Kind() dcodec.Kind {
	return p.schema.Kind
}

// PackDir packs every definition file of dir, in name order. A file that
// cannot be packed is reported and the others still go through; only an
// unreadable dir or a cancelled context fail the whole pass.
func (p *Packer[T]) PackDir(ctx context.Context, dir string) (Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		err := errors.Wrap(err, "ReadDir error")
		return Report{}, err
	}
	entries = lo.Filter(entries, func(entry os.DirEntry, _ int) bool {
		return !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), FileExtension)
	})
	paths := lo.Map(entries, func(entry os.DirEntry, _ int) string {
		return filepath.Join(dir, entry.Name())
	})

	report := Report{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, "PackDir error")
		}
		id, err := p.PackFile(ctx, path)
		var errSkipped ErrSkipped
		switch {
		case errors.As(err, &errSkipped):
			p.logger.Info(
				"definition skipped",
				zap.String("path", path),
				zap.Int32("id", errSkipped.ID),
				zap.String("reason", errSkipped.Reason),
			)
			report.Skipped = append(report.Skipped, path)
		case err != nil:
			p.logger.Warn("unable to pack definition", zap.String("path", path), zap.Error(err))
			report.Failures = append(report.Failures, ErrPackFailure{Path: path, Cause: err})
		case id == NoID:
			p.logger.Info("definition has no id, skipping", zap.String("path", path))
			report.Skipped = append(report.Skipped, path)
		default:
			report.Packed = append(report.Packed, id)
		}
	}
	p.logger.Info(
		"packed definitions",
		zap.String("dir", dir),
		zap.Int("packed", len(report.Packed)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("failures", len(report.Failures)),
	)
	return report, nil
}

// PackFile packs one definition file and returns the id it was stored at,
// or NoID when the file does not name one. A definition left out by the
// skip rule returns ErrSkipped.
func (p *Packer[T]) PackFile(ctx context.Context, path string) (int32, error) {
	t, err := p.ReadFile(path)
	if err != nil {
		return NoID, err
	}
	id := p.schema.ID(&t)
	if id == NoID {
		return NoID, nil
	}
	if err := p.Pack(ctx, &t); err != nil {
		return NoID, err
	}
	return id, nil
}

// ReadFile decodes a definition file over the kind's defaults. Keys that do
// not name a field are an error.
func (p *Packer[T]) ReadFile(path string) (T, error) {
	t := p.schema.Default(NoID)
	bs, err := os.ReadFile(path)
	if err != nil {
		err := errors.Wrap(err, "ReadFile error")
		return t, err
	}
	decoder := toml.NewDecoder(bytes.NewReader(bs))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&t); err != nil {
		err := errors.Wrap(err, "toml Decode error")
		return t, err
	}
	return t, nil
}

// Pack merges t onto its inherited base, if any, and stores the encoded
// result under t's id. The skip rule sees the merged record, so a field
// inherited from the base counts.
func (p *Packer[T]) Pack(ctx context.Context, t *T) error {
	id := p.schema.ID(t)
	record := t
	if p.schema.Derivable() {
		if inherit := p.schema.Inherit(t); inherit != dcodec.NoInherit {
			merged, err := p.mergeOnto(ctx, inherit, t)
			if err != nil {
				return err
			}
			record = &merged
		}
	}
	if p.skip != nil {
		if reason := p.skip(record); reason != "" {
			return ErrSkipped{ID: id, Reason: reason}
		}
	}

	bs, err := p.schema.Encode(record)
	if err != nil {
		return err
	}
	if err := p.archive.Put(ctx, p.schema.Table, id, bs); err != nil {
		err := errors.Wrap(err, "Put error")
		return err
	}
	p.logger.Debug("packed definition", zap.Int32("id", id), zap.Int("bytes", len(bs)))
	return nil
}

func (p *Packer[T]) mergeOnto(ctx context.Context, inherit int32, t *T) (T, error) {
	bs, err := p.archive.BytesFor(ctx, p.schema.Table, inherit)
	if err != nil {
		err := errors.Wrapf(err, "inherited %s %d", p.schema.Kind, inherit)
		var zero T
		return zero, err
	}
	base, err := p.schema.Decode(inherit, bs)
	if err != nil {
		err := errors.Wrapf(err, "inherited %s %d", p.schema.Kind, inherit)
		var zero T
		return zero, err
	}
	merged, inherited := dmerge.Merge(p.schema, base, t)
	p.logger.Debug(
		"merged inherited definition",
		zap.Int32("id", p.schema.ID(t)),
		zap.Int32("inherit", inherit),
		zap.Strings("fields", inherited),
	)
	return merged, nil
}
