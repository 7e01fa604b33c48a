package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCmd_subcommands(t *testing.T) {
	for _, name := range []string{"find", "mutagen", "docs"} {
		t.Run(name, func(t *testing.T) {
			c, _, err := RootCmd.Find([]string{name})
			if err != nil || c.Name() != name {
				t.Errorf("RootCmd.Find(%s) = %v, %v", name, c, err)
			}
		})
	}

	// short flags of the find command
	flags := map[string]string{"l": "ligand", "p": "protein", "c": "pdb", "d": "distance", "o": "output", "s": "side"}
	for short, long := range flags {
		f := findCmd.Flags().ShorthandLookup(short)
		if f == nil || f.Name != long {
			t.Errorf("find -%s = %v, want --%s", short, f, long)
		}
	}
}

func Test_makeDocs(t *testing.T) {
	dir := t.TempDir()
	if err := makeDocs(dir); err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(filepath.Join(dir, "sitefinder_find.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(contents), "---\nlayout: default\ntitle: find\nparent: sitefinder\n") {
		t.Errorf("sitefinder_find.md front matter = %q", strings.SplitN(string(contents), "\n## ", 2)[0])
	}
}

func Test_linkHandler(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"sitefinder.md", "/"},
		{"sitefinder_find.md", "sitefinder_find"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := linkHandler(tt.filename); got != tt.want {
				t.Errorf("linkHandler() = %s, want %s", got, tt.want)
			}
		})
	}
}

func atomLine(serial int, name, resName, chain string, resSeq int, x, y, z float64, element string) string {
	return fmt.Sprintf("%-6s%5d %-4s%1s%3s %1s%4d%1s   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		"ATOM", serial, name, "", resName, chain, resSeq, "", x, y, z, 1.0, 0.0, element)
}

// writeTestFile writes contents to name in dir and returns its path.
func writeTestFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestRootCmd_Execute runs the commands end to end. The steps share RootCmd,
// and with it flag values and viper state, so they run in order.
func TestRootCmd_Execute(t *testing.T) {
	dir := t.TempDir()
	pdbFile := writeTestFile(t, dir, "complex.pdb", strings.Join([]string{
		atomLine(1, "N", "SER", "P", 1, 10, 10, 10, "N"),
		atomLine(2, "OG", "SER", "P", 1, 0, 0, 0, "O"),
		atomLine(3, "N", "GLY", "P", 2, 20, 20, 20, "N"),
		atomLine(4, "N", "LYS", "L", 7, 30, 30, 30, "N"),
		atomLine(5, "NZ", "LYS", "L", 7, 4, 0, 0, "N"),
		"END",
	}, "\n")+"\n")
	settings := writeTestFile(t, dir, "sitefinder.yaml", "side: ligand\n")
	positions := writeTestFile(t, dir, "positions.tsv", "res\tloci\tchain\tchain_pos\r\nK\t3\tL\t7\r\n")

	var stdout bytes.Buffer
	RootCmd.SetOut(&stdout)
	defer RootCmd.SetOut(nil)

	steps := []struct {
		name       string
		args       []string
		want       string
		wantPrefix bool
	}{
		{"find without a pdb prints usage", []string{"find"}, "Usage:", true},
		{"mutagen without a position file prints usage", []string{"mutagen"}, "Usage:", true},
		{
			"settings file sets the side",
			[]string{"find", "-c", pdbFile, "-l", "L", "-p", "P", "--settings", settings},
			">SEQUENCE;complex.clean.pdb\r\nSGK\r\n>FRAGMENT;LIGAND\n\n--K\n",
			false,
		},
		{
			"flags override the settings file",
			[]string{"find", "-c", pdbFile, "-l", "L", "-p", "P", "-s", "protein", "-d", "4"},
			">SEQUENCE;complex.clean.pdb\r\nSGK\r\n>FRAGMENT;PROTEIN\n\nS--\n",
			false,
		},
		{
			"cutoff from the distance flag",
			[]string{"find", "-c", pdbFile, "-l", "L", "-p", "P", "-d", "3"},
			"",
			false,
		},
		{"mutagen target from the flag", []string{"mutagen", "-p", positions, "-g", "G"}, "KL7G\n", false},
	}
	for _, tt := range steps {
		t.Run(tt.name, func(t *testing.T) {
			stdout.Reset()
			RootCmd.SetArgs(tt.args)
			if err := RootCmd.Execute(); err != nil {
				t.Fatal(err)
			}

			got := stdout.String()
			if tt.wantPrefix {
				if !strings.Contains(got, tt.want) {
					t.Errorf("%v wrote %q, want it to contain %q", tt.args, got, tt.want)
				}
				return
			}
			if got != tt.want {
				t.Errorf("%v wrote %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
