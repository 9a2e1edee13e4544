package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kubev2v/whereql/cmd"
	"github.com/kubev2v/whereql/internal/config"
)

func main() {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	if err := cmd.NewRootCommand(cfg).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
