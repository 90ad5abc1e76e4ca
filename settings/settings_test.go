package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_MissingKeyRecordsDefault(t *testing.T) {
	m := NewMemory()
	assert.Equal(t, "7", m.GetSetting("Frames Per Second", "7"))
	assert.True(t, m.Dirty())

	v, ok := m.Lookup("Frames Per Second")
	assert.True(t, ok)
	assert.Equal(t, "7", v)

	// Stored value wins over a later default
	assert.Equal(t, "7", m.GetSetting("Frames Per Second", "99"))
}

func TestMemory_SetSameValueStaysClean(t *testing.T) {
	m := NewMemory()
	m.SetSetting("a", "1")
	m.MarkClean()

	m.SetSetting("a", "1")
	assert.False(t, m.Dirty())

	m.SetSetting("a", "2")
	assert.True(t, m.Dirty())
}

func TestHelpers_ParseAndFallback(t *testing.T) {
	m := NewMemory()

	SetInt(m, "int", -3)
	assert.Equal(t, -3, GetInt(m, "int", 5))

	m.SetSetting("bad int", "twelve")
	assert.Equal(t, 5, GetInt(m, "bad int", 5))

	SetBool(m, "bool", true)
	v, _ := m.Lookup("bool")
	assert.Equal(t, "1", v)
	assert.True(t, GetBool(m, "bool", false))

	m.SetSetting("word bool", "false")
	assert.False(t, GetBool(m, "word bool", true))

	m.SetSetting("bad bool", "maybe")
	assert.True(t, GetBool(m, "bad bool", true))

	SetFloat(m, "float", 0.25)
	assert.Equal(t, 0.25, GetFloat(m, "float", 1))
	assert.Equal(t, 1.5, GetFloat(m, "missing float", 1.5))
}

func TestFile_OpenMissingThenFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	f, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, f.Keys())

	// Clean store does not touch disk
	require.NoError(t, f.Flush())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	SetInt(f, "Updates Per Second", 144)
	f.SetSetting("Language", "Deutsch")
	require.NoError(t, f.Flush())
	assert.False(t, f.Dirty())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 144, GetInt(reopened, "Updates Per Second", 0))
	assert.Equal(t, "Deutsch", reopened.GetSetting("Language", ""))
	assert.False(t, reopened.Dirty())
}

func TestFile_KeysWithSpaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	f, err := Open(path)
	require.NoError(t, err)
	f.SetSetting("Left Flipper key 0 type", "1")
	f.SetSetting("Left Flipper key 0 input", "122")
	require.NoError(t, f.Flush())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Left Flipper key 0 input", "Left Flipper key 0 type"}, reopened.Keys())
	assert.Equal(t, "122", reopened.GetSetting("Left Flipper key 0 input", ""))
}

func TestFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- just\n- a list\n"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}
