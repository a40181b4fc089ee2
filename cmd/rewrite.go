package main

import (
	"context"
	"fmt"
	"io"
	"mirrorbot/internal/config"
	"mirrorbot/internal/rewrite"
	"mirrorbot/pkg/logger"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rewriteRules builds the full rule table: the built-in rules followed by any
// extras from the configuration.
func rewriteRules(cfg *config.Config) []rewrite.Rule {
	rules := rewrite.DefaultRules()
	for _, r := range cfg.Rewrite.Rules {
		rules = append(rules, rewrite.Rule{
			MatchHostSuffix: r.MatchHostSuffix,
			ReplacementHost: r.ReplacementHost,
		})
	}

	return rules
}

// rewriteCommand constructs the 'rewrite' subcommand that runs its arguments
// (or stdin when no arguments are given) through the rewriter once and prints
// the result.
func rewriteCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite [text]",
		Short: "Rewrites mirror-capable URLs in the given text",
		Run: func(cmd *cobra.Command, args []string) {
			text := strings.Join(args, " ")
			if text == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					logger.Fatal(context.Background(), "could not read stdin", zap.Error(err))
				}
				text = strings.TrimSuffix(string(data), "\n")
			}

			rewriter := rewrite.New(rewriteRules(cfg))
			fmt.Println(rewriter.Rewrite(text)) //nolint: forbidigo
		},
	}

	return cmd
}
