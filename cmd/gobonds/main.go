// Command gobonds perceives the covalent bonds of molecules read from
// XYZ files (optionally gzip or zstd compressed) or gobonds JSON
// documents, and reports them.
package main

import (
	"os"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
