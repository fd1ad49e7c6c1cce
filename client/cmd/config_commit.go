/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCommitCmd represents the commit command
var configCommitCmd = &cobra.Command{
	Use:          "commit",
	Short:        "commit the candidate configuration",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := devicePath("commit")
		if err != nil {
			return err
		}
		out, err := doRequest("POST", p, nil)
		if err != nil {
			return err
		}
		fmt.Println(out["result"])
		return nil
	},
}

// configDiscardCmd represents the discard command
var configDiscardCmd = &cobra.Command{
	Use:          "discard",
	Short:        "discard the candidate configuration",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := devicePath("discard")
		if err != nil {
			return err
		}
		out, err := doRequest("POST", p, nil)
		if err != nil {
			return err
		}
		fmt.Println(out["result"])
		return nil
	},
}

// configRollbackCmd represents the rollback command
var configRollbackCmd = &cobra.Command{
	Use:          "rollback",
	Short:        "restore the running configuration active before the last commit",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := devicePath("rollback")
		if err != nil {
			return err
		}
		out, err := doRequest("POST", p, nil)
		if err != nil {
			return err
		}
		fmt.Println(out["result"])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCommitCmd)
	rootCmd.AddCommand(configDiscardCmd)
	rootCmd.AddCommand(configRollbackCmd)
}
