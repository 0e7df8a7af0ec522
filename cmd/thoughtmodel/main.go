// Command thoughtmodel trains a Thought from a corpus and reports its answers.
//
// Usage:
//
//	thoughtmodel demo
//	thoughtmodel train --config corpus.yaml
//	thoughtmodel answer --config corpus.yaml --softmax Hi There
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
