package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI in a scratch directory with the built-in page and a
// plain-text theme.
func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("NO_COLOR", "1")

	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("theme: mono\n"), 0o644))
	t.Setenv("PROJECTS_CONFIG", cfg)

	var out, errOut bytes.Buffer
	full := append([]string{"--log-file", "off"}, args...)
	code = Execute(full, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestList(t *testing.T) {
	code, out, _ := run(t, "ls")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Active Projects (2)")
	assert.Contains(t, out, "Finished Projects (1)")
	assert.Contains(t, out, "- Finish the Course #p1")
	assert.Contains(t, out, "x Book Hotel #p3")
	assert.Contains(t, out, "1/3 finished")
}

func TestListJSON(t *testing.T) {
	code, out, _ := run(t, "ls", "--json")
	require.Equal(t, 0, code)

	var got struct {
		Active []struct {
			ID     string `json:"id"`
			Action string `json:"action"`
		} `json:"active"`
		Finished []struct {
			ID string `json:"id"`
		} `json:"finished"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Active, 2)
	assert.Equal(t, "p1", got.Active[0].ID)
	assert.Equal(t, "Finish", got.Active[0].Action)
	require.Len(t, got.Finished, 1)
	assert.Equal(t, "p3", got.Finished[0].ID)
}

func TestSwitch(t *testing.T) {
	code, out, _ := run(t, "switch", "p1", "p3")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "p1 → finished")
	assert.Contains(t, out, "p3 → active")
	assert.Contains(t, out, "Active Projects (2)")
	assert.Contains(t, out, "- Book Hotel #p3")
	assert.Contains(t, out, "x Finish the Course #p1")
}

func TestSwitchUnknownProject(t *testing.T) {
	code, _, errOut := run(t, "switch", "p9")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `no project "p9"`)
}

func TestSwitchSkipsUnknownAndFailsAtEnd(t *testing.T) {
	code, out, errOut := run(t, "switch", "p9", "p1")
	assert.Equal(t, 1, code)

	assert.Contains(t, out, "p1 → finished")
	assert.Contains(t, out, "Finished Projects (2)")
	assert.Equal(t, 1, strings.Count(errOut, `no project "p9"`))
	assert.NotContains(t, errOut, "exit 1")
}

func TestMissingConfigFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	code, _, errOut := run(t, "--config", missing, "ls")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "read config")
	assert.NotContains(t, errOut, "--help")
}

func TestInfo(t *testing.T) {
	code, out, _ := run(t, "info", "p2")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Buy Groceries")
	assert.Contains(t, out, "Not really a business topic but still important.")
}

func TestExport(t *testing.T) {
	code, out, _ := run(t, "export", "--switch", "p1")
	require.Equal(t, 0, code)

	finished := strings.Index(out, `id="finished-projects"`)
	p3 := strings.Index(out, `id="p3"`)
	p1 := strings.Index(out, `id="p1"`)
	require.Positive(t, finished)
	assert.Less(t, finished, p3)
	assert.Less(t, p3, p1, "p1 is appended after p3")
	assert.Contains(t, out, "<button>Activate</button>")
}

func TestExportWithTooltip(t *testing.T) {
	code, out, _ := run(t, "export", "--info", "p1")
	require.Equal(t, 0, code)

	assert.Contains(t, out,
		`<div class="card" style="position: absolute; left: 2px; top: 0px">Got lifetime access, but would be nice to finish it soon!</div>`)
}

func TestMissingPage(t *testing.T) {
	code, _, errOut := run(t, "--page", "nope.html", "ls")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "page not found")
}

func TestUnknownCommand(t *testing.T) {
	code, _, errOut := run(t, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown command")
}
