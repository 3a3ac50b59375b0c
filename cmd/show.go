package cmd

import (
	"fmt"
	"sort"

	"confdiff/core/ini"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// showCmd parses a single configuration file and dumps its flattened map.
// Debugging aid for checking how a file tokenizes before diffing it.
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Parse one configuration file and print its key/value map",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	RootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	f, err := afero.NewOsFs().Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	m := ini.Read(f)

	keys := make([]ini.Key, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Section != keys[j].Section {
			return keys[i].Section < keys[j].Section
		}
		return keys[i].Property < keys[j].Property
	})

	for _, key := range keys {
		fmt.Printf("%s = %s\n", key, m[key])
	}

	return nil
}
