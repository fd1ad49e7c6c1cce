/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configDiffCmd represents the diff command
var configDiffCmd = &cobra.Command{
	Use:          "diff",
	Short:        "show the diff between running and candidate configuration",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := devicePath("diff")
		if err != nil {
			return err
		}
		out, err := doRequest("GET", p, nil)
		if err != nil {
			return err
		}
		fmt.Println(out["diff"])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configDiffCmd)
}
