package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"headerchain/logx"
)

var rootCmd = &cobra.Command{
	Use:   "headerchain",
	Short: "Header chain wallet CLI",
	Long:  "Command line interface for the header chain wallet and its storage tooling.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
