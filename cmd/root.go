package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grocery",
	Short: "grocery.GO command line tools",
}

// Execute runs the CLI. Called from the cli build entry point.
func Execute() {
	fig := figure.NewFigure("grocery.GO", "slant", true)
	fig.Print()
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
