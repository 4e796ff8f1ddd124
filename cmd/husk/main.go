package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/gYonder/husk/internal/build"
	"github.com/gYonder/husk/internal/config"
	"github.com/gYonder/husk/internal/exepath"
	"github.com/gYonder/husk/internal/session"
	"github.com/gYonder/husk/internal/shell"
	"github.com/gYonder/husk/internal/ui"

	// Register builtins
	_ "github.com/gYonder/husk/internal/commands"
)

func main() {
	flags := pflag.NewFlagSet("husk", pflag.ExitOnError)
	version := flags.BoolP("version", "V", false, "print version and exit")
	theme := flags.String("theme", "", "override the configured theme (plain, auto, dark, light)")
	_ = flags.Parse(os.Args[1:])

	if *version {
		fmt.Println(build.Version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	ui.Apply(cfg.Theme)

	exes := exepath.FromEnv()
	if cfg.PathRefresh == config.RefreshWatch {
		if err := exes.Watch(); err != nil {
			// The index still works, it just goes stale until restart.
			fmt.Fprintf(os.Stderr, "%s %v\n", ui.WarningStyle.Render("Warning: PATH watch unavailable:"), err)
		} else {
			defer exes.Close()
		}
	}

	sess := session.NewSession(exes)
	sess.Aliases = cfg.Aliases

	sh, err := shell.New(sess, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorStyle.Render("Failed to start shell:"), err)
		os.Exit(1)
	}

	if err := sh.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ui.ErrorStyle.Render(fmt.Sprintf("husk: %v", err)))
		os.Exit(1)
	}
}
