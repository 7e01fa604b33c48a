// Package cmd is for command line interactions with the sitefinder application
package cmd

import (
	"log"

	"github.com/mfawzysami/sitefinder/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settingsFile is an optional YAML file overriding the default settings
var settingsFile string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "sitefinder",
	Short: `Extract the protein fragment that contributes to the binding
between the chains of a protein-protein complex`,
	Long: `Site Finder scans the interface of a protein-protein complex for residue pairs
that can form non-covalent (hydrogen-bond-like) contacts, and reports the
residues of one side as a fragment of the full sequence.`,
	Version: "0.2.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(readSettings)

	RootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file (default ./sitefinder.yaml or ~/.sitefinder/sitefinder.yaml)")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
}

// readSettings merges the settings file, if any, into viper before a command runs.
func readSettings() {
	if err := config.ReadSettings(viper.GetViper(), settingsFile); err != nil {
		log.Fatal(err)
	}
}
