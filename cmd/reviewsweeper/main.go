package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	githubadapter "github.com/ericfisherdev/reviewsweeper/internal/adapter/driven/github"
	"github.com/ericfisherdev/reviewsweeper/internal/application"
	"github.com/ericfisherdev/reviewsweeper/internal/config"
	"github.com/ericfisherdev/reviewsweeper/internal/ghactions"
	"github.com/ericfisherdev/reviewsweeper/internal/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is for local development only; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := githubadapter.NewClient(cfg.Token)

	prNumber, err := resolvePRNumber(ctx, cfg, client)
	if err != nil {
		return err
	}

	slog.Info("starting sweep",
		"owner", cfg.Owner,
		"repo", cfg.Repo,
		"pr", prNumber,
		"allowlist", cfg.Allowlist,
	)

	sweeper := application.NewSweepService(client)
	result, err := sweeper.Sweep(ctx, cfg.Owner, cfg.Repo, prNumber, cfg.Allowlist)
	if err != nil {
		return err
	}

	slog.Info("sweep complete",
		"minimized", result.Minimized,
		"failed", result.Failed,
	)

	outputs := map[string]string{
		"minimized":  strconv.Itoa(result.Minimized),
		"failed":     strconv.Itoa(result.Failed),
		"candidates": strings.Join(result.Candidates, ","),
	}
	if err := ghactions.WriteOutputs(outputs); err != nil {
		return fmt.Errorf("writing action outputs: %w", err)
	}

	return nil
}

// resolvePRNumber determines the pull request to sweep: an explicit
// configuration value wins, then the triggering event's payload, then an
// open-PR lookup for the pushed branch. No determinable pull request is a
// fatal configuration error, raised before any fetch begins.
func resolvePRNumber(ctx context.Context, cfg *config.Config, client *githubadapter.Client) (int, error) {
	if cfg.PRNumber > 0 {
		return cfg.PRNumber, nil
	}

	if cfg.EventPath == "" {
		return 0, fmt.Errorf("no pull request context: set REVIEWSWEEPER_PR_NUMBER or run from a GitHub Actions event")
	}

	event, err := ghactions.ReadEvent(cfg.EventPath)
	if err != nil {
		return 0, err
	}

	if n := event.PRNumber(); n > 0 {
		return n, nil
	}
	if branch := event.HeadBranch(); branch != "" {
		return client.FindPullRequestForBranch(ctx, cfg.Owner, cfg.Repo, branch)
	}

	return 0, fmt.Errorf("event %q carries no pull request context", cfg.EventName)
}
