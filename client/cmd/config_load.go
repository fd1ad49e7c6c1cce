/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadFile string
var loadConfig string
var loadMode string

// configLoadCmd represents the load command
var configLoadCmd = &cobra.Command{
	Use:          "load",
	Short:        "stage a candidate configuration on a device",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := devicePath("config")
		if err != nil {
			return err
		}
		body := map[string]string{
			"filename": loadFile,
			"config":   loadConfig,
			"mode":     loadMode,
		}
		out, err := doRequest("POST", p, body)
		if err != nil {
			return err
		}
		fmt.Println(out["result"])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configLoadCmd)
	configLoadCmd.Flags().StringVar(&loadFile, "file", "", "file with the candidate configuration, takes precedence over --config")
	configLoadCmd.Flags().StringVar(&loadConfig, "config", "", "inline candidate configuration")
	configLoadCmd.Flags().StringVar(&loadMode, "mode", "merge", "load mode, merge or replace")
}
