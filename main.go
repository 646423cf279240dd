/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package main

import "github.com/phishtab/phishtab/cmd"

func main() {
	cmd.Execute()
}
