/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

// deviceCliCmd represents the cli command
var deviceCliCmd = &cobra.Command{
	Use:          "cli [command]...",
	Short:        "execute operational commands on a device",
	SilenceUsage: true,
	Args:         cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := devicePath("cli")
		if err != nil {
			return err
		}
		b, err := json.Marshal(map[string][]string{"commands": args})
		if err != nil {
			return err
		}
		hc := &http.Client{Timeout: 120 * time.Second}
		resp, err := hc.Post(addr+p, "application/json", bytes.NewReader(b))
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		rb, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode >= 300 {
			return fmt.Errorf("%s", string(rb))
		}
		var results []struct {
			Command string `json:"command"`
			Output  string `json:"output"`
		}
		if err := json.Unmarshal(rb, &results); err != nil {
			return fmt.Errorf("unexpected response: %s", string(rb))
		}
		for _, r := range results {
			fmt.Printf("--- %s ---\n%s\n", r.Command, r.Output)
		}
		return nil
	},
}

// deviceAliveCmd represents the alive command
var deviceAliveCmd = &cobra.Command{
	Use:          "alive",
	Short:        "report device session liveness",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := devicePath("alive")
		if err != nil {
			return err
		}
		out, err := doRequest("GET", p, nil)
		if err != nil {
			return err
		}
		fmt.Println(out["alive"])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deviceCliCmd)
	rootCmd.AddCommand(deviceAliveCmd)
}
