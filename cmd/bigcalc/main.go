package main

import (
	"fmt"
	"os"

	"github.com/govalues/bigint/cmd/bigcalc/commands"
	"github.com/govalues/bigint/internal/log"
)

func main() {
	log.SetLogLevel("error")
	if err := commands.RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
