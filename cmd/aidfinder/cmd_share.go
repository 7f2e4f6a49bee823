package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/aidfinder/internal/app"
	"github.com/five82/aidfinder/internal/catalog"
	"github.com/five82/aidfinder/internal/share"
)

const (
	viaMail     = "mail"
	viaWhatsApp = "whatsapp"
)

type shareOptions struct {
	via  string
	open bool
}

func newShareCmd(root *rootOptions) *cobra.Command {
	opts := &shareOptions{}

	cmd := &cobra.Command{
		Use:   "share <link>",
		Short: "Print a mail or WhatsApp share link for a program",
		Long: `Prints the share URI for the program whose application link is <link>.
The message carries the program title, description and link in the active
language.

Examples:
  aidfinder share https://www.medicaid.gov/ --via mail
  aidfinder share https://www.medicaid.gov/ --via whatsapp --lang es --open`,
		Args: cobra.ExactArgs(1),
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

			var uri string
			switch strings.ToLower(opts.via) {
			case viaMail:
				uri = share.MailtoURI(p, env.Language)
			case viaWhatsApp:
				uri = share.WhatsAppURI(p, env.Language)
			default:
				return fmt.Errorf("--via must be %s or %s: %q", viaMail, viaWhatsApp, opts.via)
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), uri); err != nil {
				return err
			}
			if opts.open {
				if err := share.OpenURL(uri); err != nil {
					env.Logger.Warn("open share link failed", zap.String("via", opts.via), zap.Error(err))
					return fmt.Errorf("open share link: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.via, "via", viaMail, "share channel: mail or whatsapp")
	cmd.Flags().BoolVar(&opts.open, "open", false, "also open the link with the desktop handler")
	return cmd
}

// findProgram looks a program up by its application link.
func findProgram(env *app.Env, link string) (catalog.Program, error) {
	link = strings.TrimSpace(link)
	for _, p := range env.Index.Programs() {
		if p.ID() == link {
			return p, nil
		}
	}
	return catalog.Program{}, fmt.Errorf("no program with link %q", link)
}
