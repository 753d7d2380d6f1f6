package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errUnbalanced) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
