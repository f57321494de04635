package main

import (
	"context"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/yashodipmore/sail2cgen/translator"
	"github.com/yashodipmore/sail2cgen/translator/sail"
)

func main() {
	extractCmd := &cli.Command{
		Name:        "extract",
		Description: "dump the records extracted from SAIL spec files",
		Action:      extractAct,
		Args:        cli.Args{},
	}

	checkCmd := &cli.Command{
		Name:        "check",
		Description: "validate existing CGEN description files",
		Action:      checkAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "sail2cgen",
		Description: "sail2cgen translates a SAIL instruction spec into a CGEN description",
		Action:      translateAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("validate", false, "validate the generated CGEN output"),
			cli.NewFlag("verbose,v", false, "enable verbose output"),
		},
		Commands: []*cli.Command{
			extractCmd,
			checkCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func translateAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	if len(c.Args) != 2 {
		return errors.New("expected arguments: input output")
	}

	input, output := c.Args[0], c.Args[1]
	verbose := c.Bool("verbose")

	if verbose {
		fmt.Printf("SAIL to CGEN Translation Tool\n")
		fmt.Printf("============================\n")
		fmt.Printf("Input:  %v\n", input)
		fmt.Printf("Output: %v\n", output)
		fmt.Printf("\n")
	}

	err = translator.TranslateFile(ctx, input, output)
	if err != nil {
		return errors.Wrap(err, "translate %v", input)
	}

	fmt.Printf("✓ Successfully translated %v → %v\n", input, output)

	if c.Bool("validate") {
		if verbose {
			fmt.Printf("\nValidating generated CGEN...\n")
		}

		err = translator.ValidateFile(ctx, output)
		if err != nil {
			fmt.Printf("✗ %v\n", err)
		} else {
			fmt.Printf("✓ CGEN syntax validation passed\n")
		}
	}

	if verbose {
		fmt.Printf("\nTranslation complete!\n")
	}

	return nil
}

func extractAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		text, err := os.ReadFile(a)
		if err != nil {
			return errors.Wrap(err, "read %v", a)
		}

		s := sail.Extract(ctx, text)

		fmt.Printf("records: %v\n", a)
		spew.Dump(s)
	}

	return nil
}

func checkAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		err := translator.ValidateFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "check %v", a)
		}

		fmt.Printf("✓ %v\n", a)
	}

	return nil
}
