/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deviceOpenCmd represents the open command
var deviceOpenCmd = &cobra.Command{
	Use:          "open",
	Short:        "open the session to a device",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := devicePath("open")
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

// deviceCloseCmd represents the close command
var deviceCloseCmd = &cobra.Command{
	Use:          "close",
	Short:        "close the session to a device",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := devicePath("close")
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
	rootCmd.AddCommand(deviceOpenCmd)
	rootCmd.AddCommand(deviceCloseCmd)
}
