package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type (
	Args struct {
		Config   string `arg:"-c,--config,env:RUNE_SAVIOR_CONFIG" help:"path to config file" placeholder:"FILE"`
		Archive  string `arg:"--archive,env:RUNE_SAVIOR_ARCHIVE" help:"path to the archive database" placeholder:"FILE"`
		Revision *int   `arg:"--revision,env:RUNE_SAVIOR_REVISION" help:"revision of the archive"`
		Workers  *int   `arg:"--workers,env:RUNE_SAVIOR_WORKERS" help:"decoding goroutines"`
		Debug    bool   `arg:"--debug,env:RUNE_SAVIOR_DEBUG" help:"log at debug level"`

		Dump   *DumpCmd   `arg:"subcommand:dump" help:"print definitions as JSON"`
		Pack   *PackCmd   `arg:"subcommand:pack" help:"pack TOML definitions into the archive"`
		Script *ScriptCmd `arg:"subcommand:script" help:"look up a client script id"`
		Browse *BrowseCmd `arg:"subcommand:browse" help:"browse definitions interactively"`
	}
	DumpCmd struct {
		Kind  string `arg:"positional,required" help:"definition kind" placeholder:"KIND"`
		ID    *int32 `arg:"--id" help:"dump a single definition"`
		To    string `help:"path to destination file, stdout if empty" placeholder:"FILE"`
		Force bool   `help:"overwrite the destination file"`
	}
	PackCmd struct {
		Kind string `arg:"positional,required" help:"definition kind" placeholder:"KIND"`
		Dir  string `arg:"positional,required" help:"directory of TOML definitions" placeholder:"DIR"`
	}
	ScriptCmd struct {
		Name string `arg:"positional,required" help:"script name" placeholder:"NAME"`
	}
	BrowseCmd struct{}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to read, browse and author the opcode-tagged definitions",
			"(npcs, objects, items, textures, ...) of a game asset archive.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// Run executes the subcommand chosen in args, writing its output to stdout.
func Run(ctx context.Context, args Args, stdout io.Writer) error {
	config, err := LoadConfig(args.Config)
	if err != nil {
		return err
	}
	config = config.Override(args)

	logger, err := NewLogger(config.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	app := App{
		Config: config,
		Logger: logger,
		Stdout: stdout,
	}
	switch {
	case args.Dump != nil:
		return app.Dump(ctx, *args.Dump)
	case args.Pack != nil:
		return app.Pack(ctx, *args.Pack)
	case args.Script != nil:
		return app.Script(ctx, *args.Script)
	case args.Browse != nil:
		return app.Browse(ctx)
	}
	return ErrNoCommand
}

func NewLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		err := errors.Wrap(err, "NewLogger error")
		return nil, err
	}
	return logger, nil
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.WriteHelp(os.Stdout)
		return
	}

	if err := Run(context.Background(), args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
