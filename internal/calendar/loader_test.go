package calendar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const semesterYAML = `id: uni-main
ay_start: Fall
yyyym_strict: true
periods:
  - name: Fall
    code: fa
    start_month: 8
    start_day: 23
  - name: Spring
    code: sp
    start_month: 1
    start_day: 15
month_map:
  1: Spring
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "uni.yaml", semesterYAML)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "uni-main", cfg.ID)
	assert.True(t, cfg.StrictYYYYM)
	assert.Equal(t, 2, cfg.PeriodCount())
	assert.Equal(t, "Spring", cfg.MonthMap[1])

	pos, ok := cfg.CyclePosition("Fall")
	require.True(t, ok)
	assert.Equal(t, 0, pos, "loaded configs are finalized")
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writeFile(t, t.TempDir(), "typo.yaml", `id: x
ay_start: Fall
strictt: true
periods:
  - name: Fall
    code: fa
    start_month: 8
    start_day: 23
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", `id: x
ay_start: Nope
periods:
  - name: Fall
    code: fa
    start_month: 8
    start_day: 23
`)

	_, err := Load(path)
	var invalid *InvalidConfigError
	require.ErrorAs(t, err, &invalid)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", semesterYAML)

	second := `id: uni-other
ay_start: Autumn
periods:
  - name: Autumn
    code: au
    start_month: 9
    start_day: 1
`
	writeFile(t, dir, "a.yml", second)
	writeFile(t, dir, "notes.txt", "ignored")

	configs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "uni-other", configs[0].ID, "lexical filename order")
	assert.Equal(t, "uni-main", configs[1].ID)
}

func TestLoadDir_Missing(t *testing.T) {
	configs, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Nil(t, configs)
}

func TestPresets_AllValid(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, RegisterPresets(reg))
	assert.Equal(t, []string{"semester", "quarter", "trimester"}, reg.List())

	for _, id := range reg.List() {
		diags, err := reg.Validate(id)
		require.NoError(t, err)
		assert.Empty(t, diags, "preset %s must have no ambiguous months", id)
	}
}
