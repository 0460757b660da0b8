package cli

import (
	"os"
	"path"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDocs(t *testing.T) {
	root := &cobra.Command{Use: "tool", Run: func(*cobra.Command, []string) {}}
	parent := &cobra.Command{Use: "start", Run: func(*cobra.Command, []string) {}}
	child := &cobra.Command{Use: "server", Run: func(*cobra.Command, []string) {}}
	parent.AddCommand(child)
	root.AddCommand(parent)

	docsPath := t.TempDir()
	require.NoError(t, GenerateDocs(root, docsPath))

	_, err := os.Stat(path.Join(docsPath, "tool_start_server.md"))
	require.NoError(t, err)

	sidebar, err := os.ReadFile(path.Join(docsPath, "_sidebar.md"))
	require.NoError(t, err)
	assert.Contains(t, string(sidebar), "* [tool](cli/tool \"tool CLI\")")
	assert.Contains(t, string(sidebar), "  * [start](cli/tool_start.md \"tool CLI: tool start\")")
	assert.Contains(t, string(sidebar), "    * [server](cli/tool_start_server.md \"tool CLI: tool start server\")")
}
