// Package main provides the sparsecode CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// rootCmd is the base command for the sparsecode CLI.
var rootCmd = &cobra.Command{
	Use:   "sparsecode",
	Short: "Dictionary learning via L1-regularized sparse coding",
	Long: `sparsecode learns a dictionary of basis atoms and sparse codes from a
data matrix by alternating coordinate descent, and can render the
learned atoms as a tiled grayscale image.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sparsecode %s\n", version)
		fmt.Println("Use 'sparsecode demo' to run a dictionary learning demo")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sparsecode %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
