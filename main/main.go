package main

import (
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	flags "github.com/jessevdk/go-flags"
	"github.com/pterm/pterm"

	"github.com/bwprog/hexsum/crypto"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts options

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] FILE"

	_, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			return 0
		}

		pterm.Error.Println(err)
		return 1
	}

	if opts.Version {
		renderVersion()
		return 0
	}

	if opts.Available {
		renderAvailable()
		return 0
	}

	if opts.Args.File == "" {
		pterm.Error.Println("A FILE argument is required")
		return 1
	}

	if opts.Length < crypto.MinOutputLength || opts.Length > crypto.MaxOutputLength {
		pterm.Error.Printfln("Option '-l %d' invalid. Length must be between (and including) 1 and 128.", opts.Length)
		return 1
	}

	algorithms, unknown := crypto.ResolveNames(splitNames(opts.Hash))
	for _, name := range unknown {
		pterm.Warning.Printfln("Skipping unrecognized algorithm '%s'", name)
	}

	if len(algorithms) == 0 {
		pterm.Error.Println("No valid hash algorithms requested")
		return 1
	}

	// a single reference value cannot be compared against several digests
	if opts.Compare != "" && len(algorithms) > 1 {
		pterm.Error.Println("Cannot combine '-c' with more than one algorithm")
		return 1
	}

	if opts.Compare != "" {
		err = crypto.ValidateHexString(opts.Compare)
		if err != nil {
			pterm.Error.Println(err)
			return 1
		}
	}

	logger := boshlog.NewLogger(boshlog.LevelError)
	fs := boshsys.NewOsFileSystem(logger)
	provider := crypto.NewDigestProvider(fs, logger)

	requests := make([]crypto.DigestRequest, len(algorithms))
	for i, algorithm := range algorithms {
		requests[i] = crypto.DigestRequest{Algorithm: algorithm, OutputLength: opts.Length}
	}

	results, err := provider.CreateAllFromFile(opts.Args.File, requests)
	if err != nil {
		pterm.Error.Println(err)
		return 1
	}

	if opts.Compare != "" {
		if results[0].Err != nil {
			pterm.Error.Println(results[0].Err)
			return 1
		}

		outcome := crypto.Compare(results[0].Digest, opts.Compare)
		renderCompare(opts.Args.File, results[0].Digest, outcome, opts.Length)

		if !outcome.Matches {
			return 1
		}

		return 0
	}

	failed := renderResults(opts.Args.File, results, opts.Length)
	if failed == len(results) {
		return 1
	}

	return 0
}
