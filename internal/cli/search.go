package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/DPT/internal/database"
)

// NewSearchCommand searches titles and journals.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>...",
		Short: "Search item titles and journals",
		Long: `Search every record. Matching ignores case and accents.

Filters:
  status:done|not_done|neutral   only items with that status
  type:goal|priority|overdue|journal   only that kind of entry`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.openSession(cmd.Context(), sessionCLI, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			hits, err := s.DB.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return commandError("search", err)
			}
			if hits == nil {
				hits = []database.Hit{}
			}
			return rootOpts.formatter(cmd).Success(hits, func(w io.Writer) {
				if len(hits) == 0 {
					fmt.Fprintln(w, "No matches")
				}
				for _, h := range hits {
					if h.IsJournal() {
						fmt.Fprintf(w, "%s  journal   %s\n", h.Date, h.Title)
						continue
					}
					fmt.Fprintf(w, "%s  %-9s %s %s\n", h.Date, h.Type, checkbox(h.Status), h.Title)
				}
			})
		},
	}
}
