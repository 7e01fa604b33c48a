// Package mutagen turns a position file written by 'sitefinder find' into a
// list of point mutations.
package mutagen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mfawzysami/sitefinder/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	errNoInput = errors.New("no position file passed")
)

// Mutation is a single point mutation of a residue at a chain position.
type Mutation struct {
	Residue  string
	Chain    string
	ChainPos string
	Target   string
}

// String is the mutation code, ex: "KL42a".
func (m Mutation) String() string {
	return m.Residue + m.Chain + m.ChainPos + m.Target
}

// Read parses a position file and returns a mutation of every row to target.
// The header line and blank lines are skipped.
func Read(r io.Reader, target string) ([]Mutation, error) {
	var mutations []Mutation

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		if line == 1 {
			continue // header
		}

		row := strings.TrimRight(scanner.Text(), "\r\n")
		if row == "" {
			continue
		}

		fields := strings.Split(row, "\t")
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: expecting 4 tab separated fields, got %d: %q", line, len(fields), row)
		}

		mutations = append(mutations, Mutation{
			Residue:  fields[0],
			Chain:    fields[2],
			ChainPos: fields[3],
			Target:   target,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return mutations, nil
}

// Join formats the mutations as a comma separated list.
func Join(mutations []Mutation) string {
	codes := make([]string, len(mutations))
	for i, m := range mutations {
		codes[i] = m.String()
	}
	return strings.Join(codes, ",")
}

// ReadFile is Read for the position file at path.
func ReadFile(path, target string) ([]Mutation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open position file: %w", err)
	}
	defer f.Close()

	return Read(f, target)
}

// Execute is the entrypoint of 'sitefinder mutagen'.
func Execute(cmd *cobra.Command, args []string) {
	path, target, err := parseCmdFlags(cmd, args)
	if errors.Is(err, errNoInput) {
		cmd.Help()
		return
	}
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	mutations, err := ReadFile(path, target)
	if err != nil {
		stderr.Fatal(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), Join(mutations))
}

// parseCmdFlags gets the position file and target amino acid. The target
// defaults to the "mutagen" setting.
func parseCmdFlags(cmd *cobra.Command, args []string) (path, target string, err error) {
	if path, err = cmd.Flags().GetString("positionFile"); path == "" || err != nil {
		if len(args) == 0 {
			return "", "", errNoInput
		}
		path = args[0]
	}

	c, err := config.FromViper(viper.GetViper())
	if err != nil {
		return "", "", err
	}
	if target = c.Mutagen; target == "" {
		return "", "", fmt.Errorf("no amino acid to mutate to [-g]")
	}

	return path, target, nil
}
