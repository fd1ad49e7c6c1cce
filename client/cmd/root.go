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
	"os"
	"time"

	"github.com/spf13/cobra"
)

var addr string
var deviceName string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "devctl",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&addr, "address", "a", "http://localhost:56100", "netdriver server address")
	rootCmd.PersistentFlags().StringVar(&deviceName, "device", "", "device name")
}

func doRequest(method, path string, body any) (map[string]any, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, addr+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	hc := &http.Client{Timeout: 120 * time.Second}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if len(rb) > 0 {
		if err := json.Unmarshal(rb, &out); err != nil {
			return nil, fmt.Errorf("unexpected response (%d): %s", resp.StatusCode, string(rb))
		}
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s (%s)", out["error"], out["kind"])
	}
	return out, nil
}

func devicePath(op string) (string, error) {
	if deviceName == "" {
		return "", fmt.Errorf("--device is required")
	}
	return "/devices/" + deviceName + "/" + op, nil
}
