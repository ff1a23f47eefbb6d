// Package nucdata supplies decay data (half-lives and gamma lines) for
// activation products. The solver consumes data through the Provider
// interface so that a trusted table, a site decay-data file, and direct
// experimenter overrides are interchangeable.
package nucdata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrUnknownNuclide is returned when a nuclide identifier parses but the
// data source has no entry for it.
var ErrUnknownNuclide = errors.New("unknown nuclide")

// ErrInvalidNuclide is returned when an identifier cannot be parsed at all.
var ErrInvalidNuclide = errors.New("invalid nuclide identifier")

// Gamma is a single gamma line: energy in keV and branching ratio as a
// percentage of decays.
type Gamma struct {
	EnergyKeV float64
	BranchPct float64
}

// Provider looks up decay data by nuclide identifier. Identifiers are
// canonicalized before lookup, so "Zr97", "zr-97" and "97Zr" are the same
// nuclide. Implementations must return ErrUnknownNuclide (possibly wrapped)
// for nuclides they have no data for.
type Provider interface {
	// HalfLife returns the half-life in seconds.
	HalfLife(nuclide string) (float64, error)
	// Gammas returns the known gamma lines, strongest branch first.
	Gammas(nuclide string) ([]Gamma, error)
}

// Canonical normalizes a nuclide identifier to SymbolMass form with an
// optional metastable suffix: "Zr97", "In115m". Accepted spellings include
// "zr-97", "97Zr", "97-zr" and "IN115M".
func Canonical(name string) (string, error) {
	s := strings.ReplaceAll(strings.TrimSpace(name), "-", "")
	if s == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrInvalidNuclide)
	}

	var sym, mass, meta string
	rest := s
	if unicode.IsDigit(rune(s[0])) {
		// Mass-first form: 97Zr.
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		mass, rest = rest[:i], rest[i:]
		j := 0
		for j < len(rest) && isLetter(rest[j]) {
			j++
		}
		sym, meta = rest[:j], rest[j:]
	} else {
		// Symbol-first form: Zr97, In115m.
		i := 0
		for i < len(rest) && isLetter(rest[i]) {
			i++
		}
		sym, rest = rest[:i], rest[i:]
		j := 0
		for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		mass, meta = rest[:j], rest[j:]
	}

	meta = strings.ToLower(meta)
	if meta != "" && meta != "m" && meta != "m1" && meta != "m2" {
		// Symbol-first parses may leave a trailing metastable marker stuck
		// to the symbol in mass-first form (97Zrm); anything else is junk.
		return "", fmt.Errorf("%w: %q", ErrInvalidNuclide, name)
	}
	if len(sym) < 1 || len(sym) > 2 || mass == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidNuclide, name)
	}
	a, err := strconv.Atoi(mass)
	if err != nil || a < 1 || a > 299 {
		return "", fmt.Errorf("%w: %q has no valid mass number", ErrInvalidNuclide, name)
	}

	sym = strings.ToUpper(sym[:1]) + strings.ToLower(sym[1:])
	return sym + mass + meta, nil
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
