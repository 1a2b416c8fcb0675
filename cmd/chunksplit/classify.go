package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [module-path...]",
	Short: "Classify module paths into chunk groups",
	Long: `Classify maps each module path to its chunk group name using the
matcher list built from the project's configuration, dependencies and
hints. Paths are read from the arguments, or from stdin when no
arguments are given. Paths outside node_modules print "-" (no
classification).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlugin()
		if err != nil {
			return err
		}

		classify := func(path string) {
			group, ok := p.ChunkName(path)
			if !ok {
				group = "-"
			}
			fmt.Printf("%s\t%s\n", group, path)
		}

		if len(args) > 0 {
			for _, path := range args {
				classify(path)
			}
			return nil
		}

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			classify(line)
		}
		return scanner.Err()
	},
}
