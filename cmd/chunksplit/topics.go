package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var docsFS embed.FS

var topicsCmd = &cobra.Command{
	Use:   "topics [topic]",
	Short: "Show documentation topics",
	Long:  `Without arguments, lists the available documentation topics. With a topic name, renders that topic.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			names, err := topicNames()
			if err != nil {
				return err
			}
			fmt.Println(renderHeader("Topics"))
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		}

		content, err := docsFS.ReadFile("docs/" + args[0] + ".md")
		if err != nil {
			return fmt.Errorf("unknown topic %q, run 'chunksplit topics' for the list", args[0])
		}
		fmt.Print(renderMarkdown(string(content)))
		return nil
	},
}

func topicNames() ([]string, error) {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}

// renderMarkdown converts markdown to terminal output, falling back to the
// raw text when rendering is unavailable (e.g. piped output)
func renderMarkdown(content string) string {
	if !stdoutIsTerminal() {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
