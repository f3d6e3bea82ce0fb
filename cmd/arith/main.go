// Command arith evaluates arithmetic expressions.
//
//	arith "(1 + 2) * 3"
//	echo "1 - 2 - 3" | arith
//	arith tree 1-2-3
package main

import (
	"os"

	"github.com/npillmayer/arith/cmd/arith/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
