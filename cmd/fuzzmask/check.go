package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hazyhaar/fuzzmask/pkg/fuzzy"
)

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	target := fs.String("compare", "", "compare the input against this string")
	spaced := fs.Bool("spaced", false, "spaced censor filler")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: fuzzmask check [--compare <text>] [--spaced] <text>")
		os.Exit(1)
	}
	input := fs.Arg(0)

	cfg := loadConfig(*cfgPath, bootLogger())
	set := loadPolicies(cfg, newLogger(cfg.LogLevel)).Current()

	fmt.Printf("transliterated: %s\n", fuzzy.Transliterate(input))
	fmt.Printf("censored:       %s\n", set.Censor(input, *spaced))
	if set.Phone.IsValid(input) {
		fmt.Printf("phone:          %s\n", set.Phone.Censor(input))
	}
	if *target != "" {
		fmt.Printf("distance:       %d\n", fuzzy.EditDistance(input, *target))
		fmt.Printf("similarity:     %.4f\n", fuzzy.Similarity(input, *target))
		fmt.Printf("same phone:     %v\n", set.Phone.Same(input, *target))
	}
}
