package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"nhl-feed-service/internal/app/feed"
	"nhl-feed-service/internal/config"
	"nhl-feed-service/internal/domain"
	"nhl-feed-service/internal/logging"
	"nhl-feed-service/internal/server"
)

var errMissingName = errors.New("--name is required")

type cli struct {
	stdout  io.Writer
	stderr  io.Writer
	envFile string
	gameID  string

	cfg    config.Config
	logger *slog.Logger
	// provider overrides the MySportsFeeds chain when set.
	provider feed.Provider
}

func newRootCmd(stdout, stderr io.Writer, provider feed.Provider) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr, provider: provider}

	root := &cobra.Command{
		Use:               "nhlfeed",
		Short:             "Query NHL game feeds from MySportsFeeds",
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(
		c.winningTeamCmd(),
		c.playerScoreCmd(),
		c.winningScoreCmd(),
		c.totalGoalsCmd(),
		c.totalShotsCmd(),
		c.powerPlayCmd(),
		c.serveCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(c.envFile); err != nil {
		return err
	}
	c.cfg = config.Load()
	c.logger = logging.NewLogger(logging.Config{
		Level:   c.cfg.LogLevel,
		Format:  c.cfg.LogFormat,
		Service: c.cfg.Metrics.ServiceName,
		Version: appVersion,
		Output:  c.stderr,
	})
	return nil
}

func (c *cli) service() *feed.Service {
	provider := c.provider
	if provider == nil {
		provider = server.NewProvider(c.cfg, c.logger, nil)
	}
	return feed.NewService(domain.GameID(c.gameID), provider, c.logger, nil)
}

func (c *cli) gameFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.gameID, "game", "", "MySportsFeeds game identifier")
	_ = cmd.MarkFlagRequired("game")
}

func (c *cli) print(v any) error {
	_, err := fmt.Fprintln(c.stdout, v)
	return err
}

func (c *cli) winningTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "winning-team",
		Short: "Print the team that scored first in the first period",
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := c.service().WinningTeam(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(team)
		},
	}
	c.gameFlag(cmd)
	return cmd
}

func (c *cli) playerScoreCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "player-score",
		Short: "Print the goals scored by a player (\"First Last\", exact match)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return errMissingName
			}
			goals, err := c.service().PlayerScore(cmd.Context(), name)
			if err != nil {
				return err
			}
			return c.print(goals)
		},
	}
	c.gameFlag(cmd)
	cmd.Flags().StringVar(&name, "name", "", "player full name")
	return cmd
}

func (c *cli) winningScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "winning-score",
		Short: "Print every goal play as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := c.service().WinningScore(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(c.stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(payload.Plays)
		},
	}
	c.gameFlag(cmd)
	return cmd
}

func (c *cli) totalGoalsCmd() *cobra.Command {
	var side string
	cmd := &cobra.Command{
		Use:   "total-goals",
		Short: "Print the final score for a side, or the combined score without --side",
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := c.service().TotalGoals(cmd.Context(), side)
			if err != nil {
				return err
			}
			return c.print(total)
		},
	}
	c.gameFlag(cmd)
	cmd.Flags().StringVar(&side, "side", "", "home or away")
	return cmd
}

func (c *cli) totalShotsCmd() *cobra.Command {
	var side string
	cmd := &cobra.Command{
		Use:   "total-shots",
		Short: "Print the shot attempts for a side (null when the side is missing or unknown)",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, ok, err := c.service().TotalShots(cmd.Context(), side)
			if err != nil {
				return err
			}
			if !ok {
				return c.print("null")
			}
			return c.print(count)
		},
	}
	c.gameFlag(cmd)
	cmd.Flags().StringVar(&side, "side", "", "home or away")
	return cmd
}

func (c *cli) powerPlayCmd() *cobra.Command {
	var side string
	cmd := &cobra.Command{
		Use:   "power-play",
		Short: "Print the penalties taken by a side",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := c.service().PowerPlay(cmd.Context(), side)
			if err != nil {
				return err
			}
			return c.print(count)
		},
	}
	c.gameFlag(cmd)
	cmd.Flags().StringVar(&side, "side", "", "home or away")
	return cmd
}

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP query API and metrics server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(c.cfg, c.logger).Run(ctx, stop)
		},
	}
}
