package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sandeepkv93/tasklist/internal/cli"
	"github.com/sandeepkv93/tasklist/internal/config"
)

func main() {
	root := cli.NewRootCommand(config.FromEnv(config.Default()))
	if err := root.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "tasklist failed: %v\n", err)
		os.Exit(1)
	}
}
