/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/iptecharch/netdriver/client/cmd"

func main() {
	cmd.Execute()
}
