/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

// deviceListCmd represents the list command
var deviceListCmd = &cobra.Command{
	Use:          "list",
	Short:        "list configured devices",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		hc := &http.Client{Timeout: 30 * time.Second}
		resp, err := hc.Get(addr + "/devices")
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		var infos []map[string]any
		if err := json.Unmarshal(b, &infos); err != nil {
			return fmt.Errorf("unexpected response: %s", string(b))
		}
		for _, i := range infos {
			fmt.Printf("%s\t%s\t%s\n", i["name"], i["driver"], i["state"])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deviceListCmd)
}
