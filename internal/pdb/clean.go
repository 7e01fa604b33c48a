package pdb

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// CleanExt is appended to the base name of a cleaned PDB file.
const CleanExt = ".clean.pdb"

// Clean copies the ATOM records of the PDB file at in to
// <dir>/<base>.clean.pdb and returns the new file's path. MODEL and ENDMDL
// are kept so only the first model is loaded. Everything else (HETATM waters
// and ligands, headers, connectivity) is dropped.
func Clean(in, dir string) (string, error) {
	f, err := os.Open(in)
	if err != nil {
		return "", &LoadError{Path: in, Err: err}
	}
	defer f.Close()

	reader, err := openReader(in, f)
	if err != nil {
		return "", &LoadError{Path: in, Err: err}
	}

	out := filepath.Join(dir, CleanName(in))
	dst, err := os.Create(out)
	if err != nil {
		return "", err
	}

	w := bufio.NewWriter(dst)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if keepRecord(line) {
			w.WriteString(line)
			w.WriteByte('\n')
		}
	}
	if err = scanner.Err(); err != nil {
		dst.Close()
		return "", &LoadError{Path: in, Err: err}
	}

	if err = w.Flush(); err != nil {
		dst.Close()
		return "", err
	}
	return out, dst.Close()
}

// keepRecord returns whether a line survives cleaning.
func keepRecord(line string) bool {
	return strings.HasPrefix(line, "ATOM") ||
		strings.HasPrefix(line, "MODEL") ||
		strings.HasPrefix(line, "ENDMDL")
}

// CleanName is the base name of the cleaned copy of a PDB file,
// ex: "complexes/1brs.pdb.gz" -> "1brs.clean.pdb".
func CleanName(in string) string {
	base := filepath.Base(in)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + CleanExt
}
