package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hcastellon/shdw/internal/adapters/oscommand"
	"github.com/hcastellon/shdw/internal/adapters/pathsearch"
	"github.com/hcastellon/shdw/internal/adapters/symlink"
	"github.com/hcastellon/shdw/internal/core/domain/shadow"
	"github.com/hcastellon/shdw/internal/core/services/dispatch"
	"github.com/hcastellon/shdw/internal/core/services/shadowinstall"
	"github.com/hcastellon/shdw/internal/handlers/cli"
	"github.com/hcastellon/shdw/internal/repositories/shadowstore"
)

// Version is set at build time
var Version = "dev"

func main() {
	// The name this process was launched as decides everything: invoked
	// as "shdw" it is a manager, invoked as anything else it is a shim
	// standing in for a shadowed command. The raw argv0 is passed down
	// explicitly; nothing below reads it from globals.
	argv0 := os.Args[0]
	invokedName := filepath.Base(argv0)

	storePath, err := shadowstore.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating shadow store: %v\n", err)
		os.Exit(int(shadow.ExitStoreError))
	}
	store := shadowstore.New(storePath)

	self, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving own executable path: %v\n", err)
		os.Exit(int(shadow.ExitGeneralError))
	}

	if invokedName == cli.ProgramName {
		installSvc := shadowinstall.NewService(store, symlink.New(), self)
		rootCmd := cli.NewRootCommand(Version, installSvc)
		if err := rootCmd.Execute(); err != nil {
			os.Exit(int(shadow.ExitCodeFor(err)))
		}
		return
	}

	dispatcher := dispatch.NewService(store, pathsearch.New(), oscommand.NewRunner(), self)
	os.Exit(cli.RunShim(dispatcher, argv0, os.Args[1:]))
}
