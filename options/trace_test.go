package options_test

import (
	"fmt"

	"wirepath/options"
)

func ExampleParseTrace() {
	trace, ok := options.ParseTrace("passes", "results")
	fmt.Println(ok, trace.Has(options.TracePasses), trace.Has(options.TraceCache), trace.Has(options.TraceResults))

	trace, ok = options.ParseTrace("all")
	fmt.Println(ok, trace == options.TraceAll, trace.Has(options.TracePasses|options.TraceCache))

	_, ok = options.ParseTrace("verbose")
	fmt.Println(ok)

	// Output:
	// true true false true
	// true true true
	// false
}
