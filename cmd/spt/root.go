package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "spt",
	Short: "Self-partitioning transpiler for Python-like scripts",
	Long:  "spt lexes and parses a small Python-like language, partitions scripts into segments, and transpiles each segment to the target language its comfort score selects.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().IntP("segment-size", "s", 5, "Maximum lines per segment")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("segment_size", rootCmd.PersistentFlags().Lookup("segment-size"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("SPT")
	viper.AutomaticEnv()
}
