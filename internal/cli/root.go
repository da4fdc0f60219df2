// Package cli exposes the article client as the articles command.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"techstudio/internal/app"
	"techstudio/internal/config"
)

// Initializer builds the application from an optional config file path.
type Initializer func(file config.File) (*app.App, error)

var errNotFound = errors.New("article not found")

type options struct {
	configFile string
	output     string
}

// NewRootCommand builds the articles command tree.
func NewRootCommand(initialize Initializer) *cobra.Command {
	opts := &options{}
	var application *app.App

	root := &cobra.Command{
		Use:   "articles",
		Short: "Read articles from the Strapi CMS",
		Long: `articles queries the CMS behind the site for its article collection.
Failed requests are logged to stderr and reported as empty results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(opts.output); err != nil {
				return err
			}
			a, err := initialize(config.File(opts.configFile))
			if err != nil {
				return fmt.Errorf("initialize application: %w", err)
			}
			application = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "optional YAML config file")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", formatText, "output format: text, json or yaml")

	current := func() *app.App { return application }
	root.AddCommand(
		newListCommand(opts, current),
		newCategoryCommand(opts, current),
		newGetCommand(opts, current),
		newWatchCommand(current),
	)

	return root
}

// Execute runs the command tree against ctx.
func Execute(ctx context.Context, initialize Initializer) error {
	return NewRootCommand(initialize).ExecuteContext(ctx)
}

func newListCommand(opts *options, current func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all articles, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			articles := current().Articles().FetchArticles(cmd.Context())
			return writeArticles(cmd.OutOrStdout(), opts.output, articles)
		},
	}
}

func newCategoryCommand(opts *options, current func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "category <name>",
		Short: "List the articles in a category, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			articles := current().Articles().FetchArticlesByCategory(cmd.Context(), args[0])
			return writeArticles(cmd.OutOrStdout(), opts.output, articles)
		},
	}
}

func newGetCommand(opts *options, current func() *app.App) *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "get <slug>",
		Short: "Show a single article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			article := current().Articles().FetchArticleBySlug(cmd.Context(), args[0])
			if article == nil {
				return fmt.Errorf("%w: %s", errNotFound, args[0])
			}
			if asHTML {
				return writeArticleHTML(cmd.OutOrStdout(), *article)
			}
			return writeArticle(cmd.OutOrStdout(), opts.output, *article)
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "print the article body rendered as HTML")

	return cmd
}

func newWatchCommand(current func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Probe the CMS on the REFRESH_CRON schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return current().Run(cmd.Context())
		},
	}
}
