package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_FirstMatchWins(t *testing.T) {
	table, err := CompileTable([]Mapping{
		{Pattern: `Linux`, ID: "generic"},
		{Pattern: `Linux Mint`, ID: "mint"},
	})
	require.NoError(t, err)

	id, ok := table.Match("Linux Mint")
	require.True(t, ok)
	assert.Equal(t, "generic", id)

	reversed, err := CompileTable([]Mapping{
		{Pattern: `Linux Mint`, ID: "mint"},
		{Pattern: `Linux`, ID: "generic"},
	})
	require.NoError(t, err)

	id, ok = reversed.Match("Linux Mint")
	require.True(t, ok)
	assert.Equal(t, "mint", id)
}

func TestTable_ListsKeepOrder(t *testing.T) {
	table, err := CompileTable(
		[]Mapping{{Pattern: `Ubuntu`, ID: "custom"}},
		DistroNames,
	)
	require.NoError(t, err)
	assert.Equal(t, len(DistroNames)+1, table.Len())

	id, ok := table.Match("Ubuntu")
	require.True(t, ok)
	assert.Equal(t, "custom", id)
}

func TestTable_Match(t *testing.T) {
	distros := MustCompileTable(DistroNames)
	desktops := MustCompileTable(DesktopNames)

	tests := []struct {
		name   string
		table  *Table
		input  string
		wantID string
		wantOK bool
	}{
		{"case insensitive", distros, "ubuntu", "ubuntu", true},
		{"unanchored", distros, "Red Hat Enterprise Linux", "rhel", true},
		{"literal punctuation", distros, "Pop!_OS", "popos", true},
		{"no match", distros, "Gentoo", "", false},
		{"empty input", distros, "", "", false},
		{"gnome before ubuntu", desktops, "ubuntu:GNOME", "gnome", true},
		{"plasma maps to kde", desktops, "Plasma", "kde", true},
		{"swaywm only", desktops, "sway", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.table.Match(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestCompileTable_Errors(t *testing.T) {
	_, err := CompileTable([]Mapping{{Pattern: `[`, ID: "x"}})
	require.Error(t, err)

	_, err = CompileTable([]Mapping{{Pattern: `Foo`}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no id")
}

func TestTable_NilSafe(t *testing.T) {
	var table *Table
	_, ok := table.Match("anything")
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
}
