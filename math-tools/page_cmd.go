package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/mathmark"
	"github.com/npillmayer/mathmark/internal/testpage"
	"github.com/thatisuday/commando"
)

func runPageCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	conv := mustConverter(flags)
	input := args["input"].Value
	if input == "-" {
		input = ""
	}
	exprs := expressions(commando.ArgValue{}, input)
	page := testpage.New(mustFlagString(flags["title"], "title"))
	page.Stylesheet = optionalFlag(flags["css"])
	results := conv.ConvertAll(exprs, mathmark.HTML)
	for _, r := range results {
		if r.Err != nil {
			continue // reported below
		}
		if err := page.Add(r.Output); err != nil {
			page.AddFailure(r.Expression, err)
		}
	}
	failed := report(results)

	output := mustFlagString(flags["output"], "output")
	f, err := os.Create(output)
	if err != nil {
		fatalf("cannot create output: %v", err)
	}
	if err := page.Render(f); err != nil {
		_ = f.Close()
		fatalf("cannot write page: %v", err)
	}
	if err := f.Close(); err != nil {
		fatalf("cannot write page: %v", err)
	}
	fmt.Printf("Wrote %d expressions to %s\n", page.Len(), output)
	exitStatus(failed, len(results))
}
