package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/view"
)

var (
	renderMin     int
	renderTech    string
	renderName    string
	renderEmail   string
	renderMessage string
)

var renderCmd = &cobra.Command{
	Use:   "render <section>",
	Short: "Print one section as plain text",
	Long: `Render a section the way the site would, as plain text.

Sections: about, education, skills, experience, portfolio, contact.
Passing --name to the contact section echoes a form submission.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: sectionNames(),
	RunE:      runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderMin, "min", 0, "minimum skill level (skills)")
	renderCmd.Flags().StringVar(&renderTech, "tech", "", "technology filter (portfolio)")
	renderCmd.Flags().StringVar(&renderName, "name", "", "submitted name (contact)")
	renderCmd.Flags().StringVar(&renderEmail, "email", "", "submitted email (contact)")
	renderCmd.Flags().StringVar(&renderMessage, "message", "", "submitted message (contact)")
}

func sectionNames() []string {
	names := make([]string, 0, len(view.Sections))
	for _, s := range view.Sections {
		names = append(names, string(s))
	}
	return names
}

func runRender(cmd *cobra.Command, args []string) error {
	section, ok := view.ParseSection(args[0])
	if !ok {
		return fmt.Errorf("unknown section %q (want one of %s)", args[0], strings.Join(sectionNames(), ", "))
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	st := view.NewState(section).WithMinLevel(cfg.DefaultMinLevel)
	if cmd.Flags().Changed("min") {
		st = st.WithMinLevel(renderMin)
	}
	if renderTech != "" {
		st = st.WithTechnology(renderTech)
	}
	if renderName != "" {
		st = st.WithContact(view.ContactSubmission{
			Name:    renderName,
			Email:   renderEmail,
			Message: renderMessage,
		})
	}

	return view.WriteText(cmd.OutOrStdout(), view.Render(cat, st))
}
