package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/getfaked/faked/pkg/portability"
)

var describeJSON bool

var describeCmd = &cobra.Command{
	Use:   "describe <file.yaml>",
	Short: "Print the canonical description of each specification in a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		file, err := portability.ParseFile(data)
		if err != nil {
			return err
		}
		logger.Debug("parsed specification file", "path", args[0], "specs", len(file.Specs))

		if describeJSON {
			descriptions := make([]string, 0, len(file.Specs))
			for _, doc := range file.Specs {
				descriptions = append(descriptions, doc.Describe())
			}
			out, _ := json.MarshalIndent(descriptions, "", "  ")
			fmt.Println(string(out))
			return nil
		}

		for _, doc := range file.Specs {
			fmt.Println(doc.Describe())
		}
		return nil
	},
}

func init() {
	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "Output descriptions as JSON")
	rootCmd.AddCommand(describeCmd)
}
