// Command lvroute answers route/value questions over a tunnel network report.
//
//	lvroute solve --input report.txt
//	lvroute frontier --input report.txt --mode duo --top 5
//	lvroute distances --input report.yaml --check
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvroute:", err)
		os.Exit(1)
	}
}
