package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "seed",
	Short:         "Load and validate the uni.kz reference catalog",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().String("file", "", "universities YAML file (defaults to the bundled sample)")
	rootCmd.PersistentFlags().String("majors", "", "majors YAML file (defaults to the bundled sample)")
	rootCmd.PersistentFlags().String("env-file", ".env", "optional dotenv file with MONGO_* variables")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
