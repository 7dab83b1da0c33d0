package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func writeLevel(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestCampaignLoads(t *testing.T) {
	levels, problems, err := Campaign().Check()
	require.NoError(t, err)
	assert.Empty(t, problems)
	require.NotEmpty(t, levels)

	for i, lvl := range levels {
		if i > 0 {
			assert.Less(t, levels[i-1].ID, lvl.ID, "sorted by id")
		}
		b, err := lvl.NewBoard(core.NewSource(int64(i + 1)))
		require.NoError(t, err, "level %s", lvl.ID)
		assert.Empty(t, core.FindMatches(b).Coords(), "level %s settles", lvl.ID)
		assert.Positive(t, lvl.Moves, "level %s", lvl.ID)
		assert.Positive(t, lvl.Target, "level %s", lvl.ID)
	}
}

func TestCampaignSymbolOverrides(t *testing.T) {
	lvl, err := Campaign().LoadByID("05")
	require.NoError(t, err)

	assert.Equal(t, 9, lvl.Config.Size)
	assert.Contains(t, lvl.Config.Crates, core.At(2, 2))
	assert.Contains(t, lvl.Config.Blocked, core.At(1, 1))
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.yaml", `
id: b
colors: 4
map: ["#.#", "...", "#.#"]
`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	writeLevel(t, dir, "nested/a.yml", `
id: a
name: Structured
colors: 3
moves: 5
size: 4
crates: [{r: 1, c: 2}]
`)
	writeLevel(t, dir, "notes.txt", "ignored")
	writeLevel(t, dir, "broken.yaml", "id: c\ncolors: 2\nsize: 3\n")

	loader := NewLoader(dir)

	ids, err := loader.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	b, err := loader.LoadByID("b")
	require.NoError(t, err)
	assert.Equal(t, "b", b.Name, "name defaults to id")
	assert.Len(t, b.Config.Blocked, 4)
	assert.Equal(t, filepath.Join(dir, "b.yaml"), b.FilePath)

	a, err := loader.LoadByID("a")
	require.NoError(t, err)
	assert.Equal(t, 5, a.Moves)
	assert.Equal(t, []core.Coord{core.At(1, 2)}, a.Config.Crates)

	_, err = loader.LoadByID("zzz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, problems, err := loader.Check()
	require.NoError(t, err)
	require.Len(t, problems, 1)
	var verr ValidationError
	require.True(t, errors.As(problems[0].Err, &verr))
	assert.Equal(t, "TOO_FEW_COLORS", verr.Code)
}

func TestCheckDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "one.yaml", "id: x\ncolors: 4\nsize: 3\n")
	writeLevel(t, dir, "two.yaml", "id: x\ncolors: 5\nsize: 4\n")

	levels, problems, err := NewLoader(dir).Check()
	require.NoError(t, err)
	assert.Len(t, levels, 2)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].Error(), "DUPLICATE_ID")
}

func TestParseValidation(t *testing.T) {
	testCases := []struct {
		name string
		body string
		code string
		want error
	}{
		{name: "missing id", body: "colors: 4\nsize: 3\n", code: "MISSING_ID"},
		{name: "one color", body: "id: a\ncolors: 1\nsize: 5\n", code: "TOO_FEW_COLORS"},
		{name: "no board", body: "id: a\ncolors: 4\n", code: "NO_BOARD"},
		{name: "too large", body: "id: a\ncolors: 4\nsize: 99\n", code: "TOO_LARGE"},
		{name: "off board", body: "id: a\ncolors: 4\nsize: 3\nblocked: [{r: 3, c: 0}]\n", code: "OUT_OF_BOUNDS"},
		{name: "size mismatch", body: "id: a\ncolors: 4\nsize: 4\nmap: ['...', '...', '...']\n", code: "SIZE_MISMATCH"},
		{name: "mixed", body: "id: a\ncolors: 4\nmap: ['..', '..']\ncrates: [{r: 0, c: 0}]\n", code: "MIXED_LAYOUT"},
		{name: "bad map", body: "id: a\ncolors: 4\nmap: ['..', '.']\n", want: ErrUnevenRows},
		{name: "bad symbol", body: "id: a\ncolors: 4\nmap: ['..', '.?']\n", want: ErrUnknownSymbol},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.body), ".yaml")
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
				return
			}
			var verr ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tc.code, verr.Code)
		})
	}

	_, err := Parse([]byte("id: a\ncolors: 4\nsize: 3\n"), ".json")
	assert.Error(t, err)
}

func TestLevelYAMLRoundTrip(t *testing.T) {
	lvl, err := Campaign().LoadByID("06")
	require.NoError(t, err)

	data, err := lvl.YAML()
	require.NoError(t, err)

	again, err := Parse(data, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, lvl.Map(), again.Map())
	assert.Equal(t, lvl.Config.Colors, again.Config.Colors)
	assert.Equal(t, lvl.Moves, again.Moves)
}
