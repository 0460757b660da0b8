package cli

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// GenerateDocs writes Markdown documentation for `root` and its
// subcommands into `docsPath` along with a `_sidebar.md` index
func GenerateDocs(root *cobra.Command, docsPath string) error {
	logrus.Infof("generating documentation at path[%s]", docsPath)
	if err := os.MkdirAll(docsPath, 0755); err != nil {
		return fmt.Errorf("failed to create path[%s]: %w", docsPath, err)
	}
	root.DisableAutoGenTag = true
	commandMap := map[string]bool{}
	if err := doc.GenMarkdownTreeCustom(root, docsPath, func(in string) string {
		logrus.Debugf("filePrepender: %s", in)
		return ""
	}, func(in string) string {
		logrus.Debugf("linkHandler: %s", in)
		commandMap[in] = true
		return fmt.Sprintf("cli/%s", in)
	}); err != nil {
		return fmt.Errorf("failed to generate markdown tree: %w", err)
	}
	if err := os.WriteFile(path.Join(docsPath, "_sidebar.md"), []byte(getSidebar(root.Name(), commandMap)), 0644); err != nil {
		return fmt.Errorf("failed to write sidebar: %w", err)
	}
	return nil
}

func getSidebar(rootName string, commandMap map[string]bool) string {
	commandList := []string{}
	for k := range commandMap {
		commandList = append(commandList, k)
	}
	sort.Strings(commandList)
	var sidebar strings.Builder
	sidebar.WriteString("* [🏘 Home](/)\n")
	sidebar.WriteString(fmt.Sprintf("* [%s](cli/%s \"%s CLI\")\n", rootName, rootName, rootName))
	for _, cmd := range commandList {
		commandName := strings.Split(cmd, ".")
		commandParts := strings.Split(commandName[0], "_")
		if len(commandParts) > 1 {
			sidebar.WriteString(strings.Repeat("  ", len(commandParts)-1))
			sidebar.WriteString(fmt.Sprintf("* [%s](cli/%s \"%s CLI: %s\")\n", commandParts[len(commandParts)-1], cmd, rootName, strings.Join(commandParts, " ")))
		}
	}
	return sidebar.String()
}
