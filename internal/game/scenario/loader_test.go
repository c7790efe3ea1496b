package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSamplesYAML = `
day: 15
samples:
  - name: open-cave
    part: 1
    input: |
      #######
      #.G...#
      #...EG#
      #.#.#G#
      #..G#E#
      #.....#
      #######
    want: "27730"
  - name: open-cave-tuned
    part: 2
    input: |
      #######
      #.G...#
      #...EG#
      #.#.#G#
      #..G#E#
      #.....#
      #######
    want: 4988
`

func TestLoadFromBytes_Valid(t *testing.T) {
	samples, err := LoadFromBytes([]byte(validSamplesYAML))
	require.NoError(t, err)
	require.Len(t, samples, 2)

	s := samples[0]
	assert.Equal(t, "open-cave", s.Name)
	assert.Equal(t, 15, s.Day)
	assert.Equal(t, 1, s.Part)
	assert.Equal(t, "27730", s.Want)
	assert.Equal(t, "#######\n#.G...#\n#...EG#\n#.#.#G#\n#..G#E#\n#.....#\n#######\n", s.Input)

	assert.Equal(t, "4988", samples[1].Want, "unquoted numbers are read as text")
}

func TestLoadFromBytes_InvalidYAML(t *testing.T) {
	_, err := LoadFromBytes([]byte("not: [valid yaml"))
	assert.Error(t, err)
}

func TestLoadFromBytes_MissingDay(t *testing.T) {
	_, err := LoadFromBytes([]byte("samples: []"))
	assert.Error(t, err)
}

func TestLoadFromBytes_InvalidSamples(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
day: 15
samples:
  - name: ""
    part: 3
    input: ""
    want: ""
`))
	require.Error(t, err)
	for _, msg := range []string{"name must not be empty", "part must be 1 or 2", "input must not be empty", "want must not be empty"} {
		assert.Contains(t, err.Error(), msg)
	}
}

func TestLoadFromBytes_DuplicateName(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
day: 15
samples:
  - {name: a, part: 1, input: "#E#", want: "0"}
  - {name: a, part: 2, input: "#E#", want: "0"}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/day15.yaml")
	assert.Error(t, err)
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day15.yaml"), []byte(validSamplesYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day1.yml"), []byte(`
day: 1
samples:
  - {name: tiny, part: 1, input: "+1", want: "1"}
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	cat, err := LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, []int{1, 15}, cat.Days())
	assert.Len(t, cat.For(15, 1), 1)
	assert.Len(t, cat.For(15, 2), 1)
	assert.Empty(t, cat.For(7, 1))
}

func TestLoadFromDir_DuplicateAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(validSamplesYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(validSamplesYAML), 0644))

	_, err := LoadFromDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate sample")
}

func TestLoadFromDir_Missing(t *testing.T) {
	_, err := LoadFromDir("/nonexistent/samples")
	assert.Error(t, err)
}
