package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTool creates apps/<id>/app.yaml with the given content and returns
// the tool directory.
func writeTool(t *testing.T, appsDir, id, content string) string {
	t.Helper()
	dir := filepath.Join(appsDir, id)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFileName), []byte(content), 0644))
	return dir
}

func TestLoad_Valid(t *testing.T) {
	appsDir := t.TempDir()
	dir := writeTool(t, appsDir, "gpu-monitor", `
id: gpu-monitor
name: GPU Monitor
command: ./run.sh
synopsis: Watch GPU usage
tags: [cli, monitoring]
`)

	m, failure := Load(dir)
	require.Nil(t, failure)
	require.NotNil(t, m)

	assert.Equal(t, "gpu-monitor", m.ID)
	assert.Equal(t, "GPU Monitor", m.Name)
	assert.Equal(t, Command{"./run.sh"}, m.Command)
	assert.Equal(t, DefaultCategory, m.Category, "category should default")
	assert.True(t, m.IsCLI())
	assert.Equal(t, dir, m.Dir)
	assert.Equal(t, filepath.Join(dir, "run.sh"), m.EntryPoint())
}

func TestLoad_CommandAsList(t *testing.T) {
	appsDir := t.TempDir()
	dir := writeTool(t, appsDir, "backup", `
id: backup
name: Backup
command: ["python3", "backup.py", "--verbose"]
`)

	m, failure := Load(dir)
	require.Nil(t, failure)
	assert.Equal(t, Command{"python3", "backup.py", "--verbose"}, m.Command)
}

func TestLoad_MissingFieldsReportedTogether(t *testing.T) {
	appsDir := t.TempDir()
	dir := writeTool(t, appsDir, "broken", `
id: broken
`)

	m, failure := Load(dir)
	assert.Nil(t, m)
	require.NotNil(t, failure)
	assert.Equal(t, FailureMissingFields, failure.Kind)
	assert.Equal(t, []string{"name", "command"}, failure.Fields, "all missing fields in one failure")
}

func TestLoad_EmptyValuesAreMissing(t *testing.T) {
	appsDir := t.TempDir()
	dir := writeTool(t, appsDir, "empty", `
id: "  "
name: ""
command: []
`)

	_, failure := Load(dir)
	require.NotNil(t, failure)
	assert.Equal(t, FailureMissingFields, failure.Kind)
	assert.Equal(t, []string{"id", "name", "command"}, failure.Fields)
}

func TestLoad_MalformedYAML(t *testing.T) {
	appsDir := t.TempDir()
	dir := writeTool(t, appsDir, "bad", "id: [unclosed\n")

	m, failure := Load(dir)
	assert.Nil(t, m)
	require.NotNil(t, failure)
	assert.Equal(t, FailureParse, failure.Kind)
}

func TestLoad_MissingManifestFile(t *testing.T) {
	appsDir := t.TempDir()
	dir := filepath.Join(appsDir, "nothing")
	require.NoError(t, os.MkdirAll(dir, 0755))

	_, failure := Load(dir)
	require.NotNil(t, failure)
	assert.Equal(t, FailureParse, failure.Kind)
}

func TestLoad_TagsMustBeSequence(t *testing.T) {
	appsDir := t.TempDir()

	for name, body := range map[string]string{
		"scalar": "id: t1\nname: T\ncommand: ./run.sh\ntags: cli\n",
		"map":    "id: t2\nname: T\ncommand: ./run.sh\ntags: {a: cli}\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := writeTool(t, appsDir, "t-"+name, body)
			_, failure := Load(dir)
			require.NotNil(t, failure)
			assert.Equal(t, FailureParse, failure.Kind)
		})
	}
}

func TestLoad_IconMustExist(t *testing.T) {
	appsDir := t.TempDir()
	dir := writeTool(t, appsDir, "iconic", `
id: iconic
name: Iconic
command: ./run.sh
icon: icon.png
`)

	_, failure := Load(dir)
	require.NotNil(t, failure)
	assert.Equal(t, FailureIconNotFound, failure.Kind)

	// Present icon passes.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "icon.png"), []byte{0x89}, 0644))
	m, failure := Load(dir)
	assert.Nil(t, failure)
	assert.Equal(t, filepath.Join(dir, "icon.png"), m.IconPath())
}

func TestLoad_ReservedIDRejected(t *testing.T) {
	appsDir := t.TempDir()
	dir := writeTool(t, appsDir, ScaffoldDirName, `
id: `+ScaffoldDirName+`
name: Template
command: ./run.sh
`)

	_, failure := Load(dir)
	require.NotNil(t, failure)
	assert.Equal(t, FailureInvalidID, failure.Kind)
}

func TestWorkingDir_CwdOverride(t *testing.T) {
	appsDir := t.TempDir()
	dir := writeTool(t, appsDir, "nested", `
id: nested
name: Nested
command: ./run.sh
cwd: src
`)

	m, failure := Load(dir)
	require.Nil(t, failure)
	assert.Equal(t, filepath.Join(dir, "src"), m.WorkingDir())
}

func TestExcluded(t *testing.T) {
	assert.True(t, Excluded(ScaffoldDirName))
	assert.True(t, Excluded(".git"))
	assert.False(t, Excluded("gpu-monitor"))
}
