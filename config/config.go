// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// SettingsName is the settings file name (without extension) searched for
	// in the working directory and ~/.sitefinder
	SettingsName = "sitefinder"

	// DefaultDistance is the inclusive contact cutoff in Angstroms
	DefaultDistance = 5

	// DefaultSide is the side of the interface written to the fragment
	DefaultSide = "protein"

	// DefaultFastaName is the name of the FASTA file written to an output dir
	DefaultFastaName = "ligand.fa"

	// DefaultPositionsName is the name of the position file written to an output dir
	DefaultPositionsName = "positions.tsv"

	// DefaultMutagen is the amino acid residues are mutated to by 'sitefinder mutagen'
	DefaultMutagen = "a"
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// Distance is the inclusive cutoff, in Angstroms, for a non-covalent contact
	Distance int `mapstructure:"distance"`

	// Side is which side of the interface to report: "protein" or "ligand"
	Side string `mapstructure:"side"`

	// FastaName is the file name of the fragment FASTA in an output dir
	FastaName string `mapstructure:"fasta-name"`

	// PositionsName is the file name of the position table in an output dir
	PositionsName string `mapstructure:"positions-name"`

	// Mutagen is the default amino acid for the mutation list
	Mutagen string `mapstructure:"mutagen"`
}

func init() {
	SetDefaults(viper.GetViper())
}

// SetDefaults registers the default settings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("distance", DefaultDistance)
	v.SetDefault("side", DefaultSide)
	v.SetDefault("fasta-name", DefaultFastaName)
	v.SetDefault("positions-name", DefaultPositionsName)
	v.SetDefault("mutagen", DefaultMutagen)
}

// FromViper returns a new Config struct populated by
// Viper settings (either from a settings file)
// and/or command line arguments. Invalid settings are an error.
func FromViper(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	if c.Distance < 0 {
		return nil, fmt.Errorf("distance must be non-negative, got %d", c.Distance)
	}
	if c.FastaName == "" || c.PositionsName == "" {
		return nil, fmt.Errorf("output file names can't be empty")
	}

	return c, nil
}

// ReadSettings merges a settings file into viper. If file is empty, a
// "sitefinder.yaml" in the working directory or ~/.sitefinder is used if
// one exists.
func ReadSettings(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read settings file %s: %w", file, err)
		}
		return nil
	}

	v.SetConfigName(SettingsName)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, "."+SettingsName))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // settings files are optional
		}
		return fmt.Errorf("failed to read settings: %w", err)
	}
	return nil
}
