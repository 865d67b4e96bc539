package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/bwprog/hexsum/crypto"
)

const (
	productName    = "hexsum"
	productVersion = "1.0.0"
)

func renderVersion() {
	pterm.Printfln("%s %s", productName, productVersion)
}

func renderAvailable() {
	renderVersion()
	pterm.Println()

	data := pterm.TableData{{"Hash", "Block Size", "Digest Length", "Hex Length"}}

	for _, name := range crypto.Names() {
		algorithm, err := crypto.LookupAlgorithm(name)
		if err != nil {
			continue
		}

		if algorithm.Family() == crypto.FamilyFixedDigest {
			data = append(data, []string{
				name,
				strconv.Itoa(algorithm.BlockSize()),
				strconv.Itoa(algorithm.DigestSize()),
				strconv.Itoa(2 * algorithm.DigestSize()),
			})
			continue
		}

		data = append(data, []string{
			name,
			strconv.Itoa(algorithm.BlockSize()),
			fmt.Sprintf("%d (or -l)", crypto.DefaultOutputLength),
			fmt.Sprintf("%d (or 2 * -l)", 2*crypto.DefaultOutputLength),
		})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Render()
}

func renderResults(file string, results []crypto.DigestResult, length int) int {
	renderVersion()
	pterm.Println()
	pterm.Printfln("Hex Value(s) for %s", file)

	data := pterm.TableData{{"Hash", "Hex Value"}}
	failed := 0

	for _, result := range results {
		if result.Err != nil {
			failed++
			pterm.Warning.Println(result.Err)
			continue
		}

		data = append(data, []string{
			displayName(result.Digest.Algorithm(), length),
			result.Digest.Hex(),
		})
	}

	if len(data) > 1 {
		_ = pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Render()
	}

	return failed
}

func renderCompare(file string, digest crypto.Digest, outcome crypto.CompareOutcome, length int) {
	renderVersion()
	pterm.Println()

	name := displayName(digest.Algorithm(), length)

	data := pterm.TableData{
		{"Hash", "Hex Value", "Origin"},
		{name, outcome.Generated, "Generated"},
		{name, outcome.Provided, "Provided"},
	}

	_ = pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Render()

	if outcome.Matches {
		pterm.Success.Printfln("%s hex value for %s MATCHES!", name, file)
		return
	}

	pterm.Error.Printfln("%s hex value for %s DOES NOT MATCH!!!", name, file)
}

// displayName appends the requested length to variable-length algorithm
// names, mirroring how the hex length depends on -l for those families.
func displayName(algorithm string, length int) string {
	registered, err := crypto.LookupAlgorithm(algorithm)
	if err != nil || registered.Family() == crypto.FamilyFixedDigest {
		return algorithm
	}

	return fmt.Sprintf("%s(%d)", algorithm, length)
}
