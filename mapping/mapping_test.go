package mapping

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinition(t *testing.T) {
	e, err := ParseDefinition("<C-j> <Nop>", false)
	require.NoError(t, err)
	assert.Equal(t, MappingEntry{Lhs: "<C-j>", Rhs: "<Nop>", Abbreviate: false}, e)

	_, err = ParseDefinition("onlylhs", false)
	assert.Error(t, err)

	_, err = ParseDefinition("   ", true)
	assert.Error(t, err)
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mappings.toml")

	s := NewStore()
	s.Put(MappingEntry{Lhs: "jj", Rhs: "<Esc>"})
	s.Put(MappingEntry{Lhs: "teh", Rhs: "the", Abbreviate: true})
	require.NoError(t, s.Save(path))

	loaded := NewStore()
	require.NoError(t, loaded.Load(path))

	e, ok := loaded.Get("jj")
	require.True(t, ok)
	assert.Equal(t, "<Esc>", e.Rhs)

	e, ok = loaded.Get("teh")
	require.True(t, ok)
	assert.True(t, e.Abbreviate)
}

func TestStoreWatchReportsNoErrorOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mappings.toml")

	s := NewStore()
	s.Put(MappingEntry{Lhs: "jj", Rhs: "<Esc>"})
	require.NoError(t, s.Save(path))
	require.NoError(t, s.Load(path))

	stop := make(chan struct{})
	defer close(stop)
	errs, err := s.Watch(stop)
	require.NoError(t, err)

	s.Put(MappingEntry{Lhs: "kk", Rhs: "<Esc>"})
	require.NoError(t, s.Save(path))

	select {
	case err := <-errs:
		t.Fatalf("unexpected watch error: %v", err)
	case <-time.After(200 * time.Millisecond):
	}
}
