package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/aidfinder/internal/app"
	"github.com/five82/aidfinder/internal/catalog"
	"github.com/five82/aidfinder/internal/locale"
	"github.com/five82/aidfinder/internal/search"
)

type listOptions struct {
	category string
	state    string
	saved    bool
	asJSON   bool
}

// programView is the JSON shape printed by list and favorites.
type programView struct {
	Link        string   `json:"link"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	States      []string `json:"states,omitempty"`
	Saved       bool     `json:"saved"`
}

func newListCmd(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list [query...]",
		Short: "Print the programs matching the filters",
		Long: `Prints the programs that pass the category, state and search filters,
in catalog order. Query terms match titles, descriptions and category names
in every supported language, ignoring case and accents.

Examples:
  aidfinder list rent
  aidfinder list --category Salud --state CA
  aidfinder list --saved --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := root.openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			filter, err := opts.filter(env, args)
			if err != nil {
				return err
			}
			programs := env.Index.Visible(filter, env.Favorites)
			env.Logger.Debug("list programs",
				zap.String("query", filter.Query),
				zap.String("category", filter.Category),
				zap.String("region", filter.Region),
				zap.Int("matches", len(programs)))
			return printPrograms(cmd.OutOrStdout(), env, programs, opts.asJSON)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.category, "category", "c", "", "category label in any supported language")
	flags.StringVarP(&opts.state, "state", "s", "", "two-letter state code")
	flags.BoolVar(&opts.saved, "saved", false, "only saved programs")
	flags.BoolVar(&opts.asJSON, "json", false, "print JSON")
	cmd.MarkFlagsMutuallyExclusive("category", "saved")

	return cmd
}

// filter turns the flags into a pipeline filter, rejecting labels the
// pipeline would otherwise ignore.
func (o *listOptions) filter(env *app.Env, args []string) (search.Filter, error) {
	f := search.Filter{
		Query:    strings.Join(args, " "),
		Category: env.Table.ChoiceLabel(env.Language, locale.ChoiceAll),
		Region:   env.Table.AllRegionsLabel(env.Language),
	}

	switch {
	case o.saved:
		f.Category = env.Table.ChoiceLabel(env.Language, locale.ChoiceSaved)
	case o.category != "":
		if _, ok := env.Table.ResolveCategory(o.category); !ok {
			return search.Filter{}, fmt.Errorf("unknown category %q", o.category)
		}
		f.Category = o.category
	}

	if state := strings.ToUpper(strings.TrimSpace(o.state)); state != "" && !env.Table.IsAllRegions(o.state) {
		if !slices.Contains(catalog.StateCodes, state) {
			return search.Filter{}, fmt.Errorf("unknown state %q", o.state)
		}
		f.Region = state
	}
	return f, nil
}

func toView(env *app.Env, p catalog.Program) programView {
	tr := p.Translation(env.Language)
	return programView{
		Link:        p.Link,
		Category:    env.Table.CategoryLabel(env.Language, p.Category),
		Title:       tr.Title,
		Description: tr.Description,
		States:      p.States,
		Saved:       env.Favorites.IsFavorite(p.ID()),
	}
}

func printPrograms(w io.Writer, env *app.Env, programs []catalog.Program, asJSON bool) error {
	views := make([]programView, 0, len(programs))
	for _, p := range programs {
		views = append(views, toView(env, p))
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	if len(views) == 0 {
		_, err := fmt.Fprintln(w, env.Table.T(env.Language, "list.empty"))
		return err
	}
	nationwide := env.Table.T(env.Language, "card.all_states")
	for _, v := range views {
		star := " "
		if v.Saved {
			star = "★"
		}
		states := nationwide
		if len(v.States) > 0 {
			states = strings.Join(v.States, ", ")
		}
		if _, err := fmt.Fprintf(w, "%s %s [%s] (%s)\n    %s\n", star, v.Title, v.Category, states, v.Link); err != nil {
			return err
		}
	}
	return nil
}
