package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rune-savior/rdef/darchive/dsqlite"
	"rune-savior/rdef/dtype"
)

func newWorkspace(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	defs := filepath.Join(root, "textures")
	require.NoError(t, os.Mkdir(defs, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(defs, "water.toml"),
		[]byte("id = 5\nfile_ids = [40]\naverage_rgb = 31\n"),
		0644,
	))
	return filepath.Join(root, "archive.db"), defs
}

func run(t *testing.T, args Args) (string, error) {
	t.Helper()
	stdout := bytes.Buffer{}
	err := Run(context.Background(), args, &stdout)
	return stdout.String(), err
}

func TestRun_PackThenDump(t *testing.T) {
	archive, defs := newWorkspace(t)

	out, err := run(t, Args{Archive: archive, Pack: &PackCmd{Kind: "texture", Dir: defs}})
	require.NoError(t, err)
	assert.Equal(t, "packed 1, skipped 0, failed 0\n", out)

	out, err = run(t, Args{Archive: archive, Dump: &DumpCmd{Kind: "texture", ID: lo.ToPtr(int32(5))}})
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "texture"`)
	assert.Contains(t, out, `"average_rgb": 31`)

	out, err = run(t, Args{Archive: archive, Dump: &DumpCmd{Kind: "npc"}})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestRun_DumpToFile(t *testing.T) {
	archive, defs := newWorkspace(t)
	_, err := run(t, Args{Archive: archive, Pack: &PackCmd{Kind: "texture", Dir: defs}})
	require.NoError(t, err)

	to := filepath.Join(t.TempDir(), "textures.json")
	_, err = run(t, Args{Archive: archive, Dump: &DumpCmd{Kind: "texture", To: to}})
	require.NoError(t, err)
	bs, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Contains(t, string(bs), `"id": 5`)

	_, err = run(t, Args{Archive: archive, Dump: &DumpCmd{Kind: "texture", To: to}})
	assert.Error(t, err)
	_, err = run(t, Args{Archive: archive, Dump: &DumpCmd{Kind: "texture", To: to, Force: true}})
	assert.NoError(t, err)
}

func TestRun_Script(t *testing.T) {
	path, _ := newWorkspace(t)
	archive, err := dsqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, archive.PutName(context.Background(), dtype.TableClientScripts, "[clientscript,combat_init]", 7))
	require.NoError(t, archive.Close())

	out, err := run(t, Args{Archive: path, Script: &ScriptCmd{Name: "combat_init"}})
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	out, err = run(t, Args{Archive: path, Script: &ScriptCmd{Name: "combat_exit"}})
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)
}

func TestRun_Errors(t *testing.T) {
	archive, defs := newWorkspace(t)

	_, err := run(t, Args{Archive: archive})
	assert.ErrorIs(t, err, ErrNoCommand)

	_, err = run(t, Args{Archive: archive, Dump: &DumpCmd{Kind: "npc"}})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, Args{Archive: archive, Pack: &PackCmd{Kind: "spell", Dir: defs}})
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(defs, "broken.toml"), []byte("id = 6\ninherit = 99\n"), 0644))
	out, err := run(t, Args{Archive: archive, Pack: &PackCmd{Kind: "texture", Dir: defs}})
	assert.Error(t, err)
	assert.Contains(t, out, "packed 1, skipped 0, failed 1")
}
