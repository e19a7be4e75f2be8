package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/medicibank/medici/web"
)

type WebCmd struct {
	File  string `help:"Journal file to serve." arg:""`
	Port  int    `help:"Port to listen on." default:"8080"`
	Watch bool   `help:"Reload the journal when the file changes." default:"true" negatable:""`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := runContext(ctx, globals, fmt.Sprintf("web :%d", cmd.Port))
	defer report()

	journalFile, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	if _, err := os.Stat(journalFile); err != nil {
		return fmt.Errorf("failed to access file: %w", err)
	}

	version := Version
	if version == "" {
		version = "dev"
	}
	commitSHA := CommitSHA
	if commitSHA == "" {
		commitSHA = "local"
	}

	server := web.NewWithVersion(cmd.Port, journalFile, version, commitSHA)
	server.WatchEnabled = cmd.Watch

	printInfof(ctx.Stdout, "Starting server on %s:%d", server.Host, cmd.Port)
	printInfof(ctx.Stdout, "Serving journal: %s", pathStyle.Render(journalFile))

	return server.Start(runCtx)
}
