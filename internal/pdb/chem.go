package pdb

import "strings"

// backboneAtoms are the main-chain heavy atoms and the hydrogens bonded to them.
var backboneAtoms = map[string]bool{
	"N": true, "CA": true, "C": true, "O": true, "OXT": true,
	"H": true, "HN": true, "H1": true, "H2": true, "H3": true,
	"1H": true, "2H": true, "3H": true,
	"HA": true, "HA1": true, "HA2": true, "HA3": true, "1HA": true, "2HA": true,
}

// sideChainDonors are hydrogen bond donors outside the backbone, by residue.
var sideChainDonors = map[string]map[string]bool{
	"ARG": {"NE": true, "NH1": true, "NH2": true},
	"ASN": {"ND2": true},
	"GLN": {"NE2": true},
	"HIS": {"NE2": true},
	"HIE": {"NE2": true},
	"HID": {"ND1": true},
	"HIP": {"ND1": true, "NE2": true},
	"HSE": {"NE2": true},
	"HSD": {"ND1": true},
	"HSP": {"ND1": true, "NE2": true},
	"LYS": {"NZ": true},
	"TRP": {"NE1": true},
	"SER": {"OG": true},
	"THR": {"OG1": true},
	"TYR": {"OH": true},
}

// sideChainAcceptors are hydrogen bond acceptors outside the backbone, by residue.
var sideChainAcceptors = map[string]map[string]bool{
	"ASP": {"OD1": true, "OD2": true},
	"GLU": {"OE1": true, "OE2": true},
	"ASN": {"OD1": true},
	"GLN": {"OE1": true},
	"HIS": {"ND1": true},
	"HIE": {"ND1": true},
	"HID": {"NE2": true},
	"HSE": {"ND1": true},
	"HSD": {"NE2": true},
	"SER": {"OG": true},
	"THR": {"OG1": true},
	"TYR": {"OH": true},
}

// Classify returns whether an atom is part of the backbone and its chemical
// role. This is a hydrogen bond heuristic keyed on residue and atom names; it
// ignores protonation state beyond the HIS tautomer names and never looks at
// geometry.
func Classify(resName, atomName, element string) (backbone bool, role Role) {
	backbone = backboneAtoms[atomName]
	role.Hydrogen = isHydrogen(atomName, element)

	switch atomName {
	case "N":
		role.Donor = resName != "PRO"
	case "O", "OXT":
		role.Acceptor = true
	}

	if sideChainDonors[resName][atomName] {
		role.Donor = true
	}
	if sideChainAcceptors[resName][atomName] {
		role.Acceptor = true
	}

	return backbone, role
}

// isHydrogen uses the element column when present, the atom name otherwise.
func isHydrogen(atomName, element string) bool {
	if element != "" {
		return element == "H" || element == "D"
	}

	name := strings.TrimSpace(atomName)
	if name == "" {
		return false
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = name[1:]
	}
	return strings.HasPrefix(name, "H")
}
