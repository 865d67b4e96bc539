package main

import (
	"strings"
)

type options struct {
	Hash      string `short:"H" long:"hash" description:"Hash algorithm(s) to run, comma-separated, or 'all'" default:"sha256"`
	Length    int    `short:"l" long:"length" description:"Output length in bytes for shake/blake3 hashes [1-128]" default:"32"`
	Compare   string `short:"c" long:"compare" description:"Hex value to compare against the generated digest" value-name:"HEX"`
	Available bool   `short:"a" long:"available" description:"List available hash algorithms and exit"`
	Version   bool   `short:"v" long:"version" description:"Print version and exit"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"File to hash"`
	} `positional-args:"yes"`
}

func splitNames(list string) []string {
	var names []string

	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}

	return names
}
