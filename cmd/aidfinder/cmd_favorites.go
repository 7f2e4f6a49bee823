package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/aidfinder/internal/catalog"
)

func newFavoritesCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List saved programs",
		Long: `Lists the programs saved from the interactive browser or with
"favorites toggle". Saved links that are no longer in the catalog are kept
in storage but not shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := root.openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			var saved []catalog.Program
			for _, p := range env.Index.Programs() {
				if env.Favorites.IsFavorite(p.ID()) {
					saved = append(saved, p)
				}
			}
			return printPrograms(cmd.OutOrStdout(), env, saved, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <link>",
		Short: "Save or unsave a program by its application link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := root.openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			p, err := findProgram(env, args[0])
			if err != nil {
				return err
			}
			env.Favorites.Toggle(cmd.Context(), p.ID())

			key := "status.unsaved"
			if env.Favorites.IsFavorite(p.ID()) {
				key = "status.saved"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", env.Table.T(env.Language, key), p.Translation(env.Language).Title)
			return err
		},
	})

	return cmd
}
