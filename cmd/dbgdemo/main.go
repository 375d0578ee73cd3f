// Command dbgdemo renders sample diagnostics with the dbg package.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newLogger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
