package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"rune-savior/ds"
	"rune-savior/rdef/darchive/dsqlite"
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/dpack"
	"rune-savior/rdef/dregistry"
	"rune-savior/ui"
)

// App carries what every subcommand needs.
type App struct {
	Config Config
	Logger *zap.Logger
	Stdout io.Writer
}

func (a App) openArchive() (*dsqlite.Archive, error) {
	if a.Config.Archive == "" {
		return nil, ErrNoArchive
	}
	if !CheckExistence(a.Config.Archive) {
		return nil, errors.Wrapf(os.ErrNotExist, "archive %s", a.Config.Archive)
	}
	return dsqlite.Open(a.Config.Archive)
}

func (a App) loadRegistry(ctx context.Context) (*dregistry.Registry, func(), error) {
	archive, err := a.openArchive()
	if err != nil {
		return nil, nil, err
	}
	registry := dregistry.NewRegistry(dregistry.Options{
		Workers: a.Config.Workers,
		Logger:  a.Logger,
	})
	if _, err := registry.Load(ctx, archive, a.Config.Revision); err != nil {
		_ = archive.Close()
		return nil, nil, err
	}
	return registry, func() { _ = archive.Close() }, nil
}

func (a App) Dump(ctx context.Context, cmd DumpCmd) error {
	if cmd.To != "" && CheckExistence(cmd.To) && !cmd.Force {
		return errors.Errorf("destination %s exists, pass --force to overwrite it", cmd.To)
	}
	registry, closeArchive, err := a.loadRegistry(ctx)
	if err != nil {
		return err
	}
	defer closeArchive()

	view, ok := registry.Table(dcodec.Kind(cmd.Kind))
	if !ok {
		return errors.Errorf("unknown kind %q", cmd.Kind)
	}

	var value any
	if cmd.ID != nil {
		lhm, ok := view.Describe(*cmd.ID)
		if !ok {
			return errors.Errorf("%s %d is not loaded", cmd.Kind, *cmd.ID)
		}
		value = lhm
	} else {
		value = lo.Map(view.IDs(), func(id int32, _ int) *ds.LinkedHashMap[string, any] {
			lhm, _ := view.Describe(id)
			return lhm
		})
	}

	bs, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		err := errors.Wrap(err, "Dump MarshalIndent error")
		return err
	}
	if cmd.To == "" {
		_, err := fmt.Fprintln(a.Stdout, string(bs))
		return err
	}
	if err := os.WriteFile(cmd.To, bs, 0644); err != nil {
		err := errors.Wrap(err, "Dump WriteFile error")
		return err
	}
	a.Logger.Info("dumped definitions", zap.String("kind", cmd.Kind), zap.String("to", cmd.To))
	return nil
}

func (a App) Pack(ctx context.Context, cmd PackCmd) error {
	archive, err := a.openArchiveForWrite()
	if err != nil {
		return err
	}
	defer archive.Close()

	packer, ok := dpack.PackerFor(dcodec.Kind(cmd.Kind), archive, a.Logger)
	if !ok {
		return errors.Errorf("unknown kind %q", cmd.Kind)
	}
	report, err := packer.PackDir(ctx, cmd.Dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(
		a.Stdout, "packed %d, skipped %d, failed %d\n",
		len(report.Packed), len(report.Skipped), len(report.Failures),
	)
	for _, failure := range report.Failures {
		fmt.Fprintln(a.Stdout, failure.Error())
	}
	if len(report.Failures) > 0 {
		return errors.Errorf("%d definitions could not be packed", len(report.Failures))
	}
	return nil
}

// openArchiveForWrite creates the archive when it does not exist yet.
func (a App) openArchiveForWrite() (*dsqlite.Archive, error) {
	if a.Config.Archive == "" {
		return nil, ErrNoArchive
	}
	return dsqlite.Open(a.Config.Archive)
}

func (a App) Script(ctx context.Context, cmd ScriptCmd) error {
	registry, closeArchive, err := a.loadRegistry(ctx)
	if err != nil {
		return err
	}
	defer closeArchive()

	_, err = fmt.Fprintln(a.Stdout, registry.FindScriptID(ctx, cmd.Name))
	return err
}

func (a App) Browse(ctx context.Context) error {
	registry, closeArchive, err := a.loadRegistry(ctx)
	if err != nil {
		return err
	}
	defer closeArchive()

	return ui.Start(registry)
}
