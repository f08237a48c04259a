package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rune-savior/rdef/darchive"
	"rune-savior/rdef/dregistry"
	"rune-savior/rdef/dtype"
)

func loadedRegistry(t *testing.T) *dregistry.Registry {
	t.Helper()
	archive := darchive.NewMemory()
	for _, name := range []string{"Man", "Woman"} {
		npc := dtype.NewNpc(int32(len(name)))
		npc.Name = name
		bs, err := dtype.NpcSchema.Encode(&npc)
		require.NoError(t, err)
		require.NoError(t, archive.Put(context.Background(), dtype.TableNpc, npc.ID, bs))
	}
	registry := dregistry.NewRegistry(dregistry.Options{})
	_, err := registry.Load(context.Background(), archive, 210)
	require.NoError(t, err)
	return registry
}

func press(t *testing.T, model tea.Model, keys ...tea.KeyMsg) Browser {
	t.Helper()
	for _, key := range keys {
		model, _ = model.Update(key)
	}
	browser, ok := model.(Browser)
	require.True(t, ok)
	return browser
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestBrowser_Kinds(t *testing.T) {
	browser := CreateBrowser(loadedRegistry(t))

	view := browser.View()
	assert.Contains(t, view, "Revision: 210")
	assert.Contains(t, view, "> npc")

	browser = press(t, browser, keyUp, keyDown, keyDown)
	assert.Equal(t, dtype.KindItem, browser.currentKind())
}

func TestBrowser_Record(t *testing.T) {
	browser := press(t, CreateBrowser(loadedRegistry(t)), keyEnter)
	assert.Equal(t, StateIDs, browser.state)
	assert.Equal(t, []int32{3, 5}, browser.ids)

	browser = press(t, browser, keyDown, keyEnter)
	assert.Equal(t, StateRecord, browser.state)
	assert.Contains(t, browser.View(), `"name": "Woman"`)

	browser = press(t, browser, keyEsc, keyEsc)
	assert.Equal(t, StateKinds, browser.state)
}

func TestBrowser_EmptyKind(t *testing.T) {
	browser := press(t, CreateBrowser(loadedRegistry(t)), keyDown, keyEnter, keyEnter)
	assert.Equal(t, StateIDs, browser.state)
	assert.Contains(t, browser.View(), "nothing loaded")
}

func TestBrowser_Quit(t *testing.T) {
	browser := CreateBrowser(loadedRegistry(t))
	_, cmd := browser.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(t, cmd)
}
