package main

import (
	"fmt"
	"net/url"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/query"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/validation"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Run schema and consistency checks over the content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, closeFn, err := opts.load(cmd.Context())
			defer func() { _ = closeFn() }()
			if err != nil {
				return err
			}

			rep := validation.New().Collections(data)
			if err := writeJSON(cmd.OutOrStdout(), rep); err != nil {
				return err
			}
			if !rep.Valid {
				return fmt.Errorf("content invalid: %d error(s)", len(rep.Errors))
			}
			return nil
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate portfolio statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, closeFn, err := opts.load(cmd.Context())
			defer func() { _ = closeFn() }()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), query.NewEngine(data).ContentStats())
		},
	}
}

func newQueryCmd(opts *rootOptions) *cobra.Command {
	var filters map[string]string

	cmd := &cobra.Command{
		Use:       "query {skills|projects|tournaments|achievements}",
		Short:     "Filter, sort and limit a collection",
		Example:   "  portfolioctl query skills --filter category=frontend --filter sortBy=proficiency --filter limit=3",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"skills", "projects", "tournaments", "achievements"},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, closeFn, err := opts.load(cmd.Context())
			defer func() { _ = closeFn() }()
			if err != nil {
				return err
			}

			v := url.Values{}
			for k, val := range filters {
				v.Set(k, val)
			}

			engine := query.NewEngine(data)
			var out any
			switch args[0] {
			case "skills":
				out = engine.Skills(query.ParseSkillQuery(v))
			case "projects":
				out = engine.Projects(query.ParseProjectQuery(v))
			case "tournaments":
				out = engine.Tournaments(query.ParseTournamentQuery(v))
			case "achievements":
				out = engine.Achievements(query.ParseAchievementQuery(v))
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringToStringVarP(&filters, "filter", "f", nil, "criterion as key=value, same keys as the HTTP query string")
	return cmd
}
