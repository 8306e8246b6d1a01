package main

import (
	"os"

	"github.com/termtools/tbx2sheet/internal/pkg/cli"
	"github.com/termtools/tbx2sheet/internal/pkg/cli/prompt/interactive"
	"github.com/termtools/tbx2sheet/internal/pkg/env"
	"github.com/termtools/tbx2sheet/internal/pkg/filesystem/aferofs"
)

func main() {
	// Load ENVs from OS
	envs, err := env.FromOs()
	if err != nil {
		panic(err)
	}

	// Run command
	prompt := interactive.New(os.Stdin, os.Stdout, os.Stderr)
	cmd := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr, prompt, envs, aferofs.NewLocalFs)
	os.Exit(cmd.Execute())
}
