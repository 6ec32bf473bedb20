package cli

import (
	"github.com/alexanderramin/almanac/internal/knowledge"
	"github.com/alexanderramin/almanac/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and shared state used by CLI commands.
type App struct {
	Wisdom   service.WisdomService
	Profiles service.ProfileService

	// Knowledge is the knowledge base the services were built with.
	Knowledge *knowledge.KnowledgeBase
	// KnowledgeFile is the corpus file Knowledge came from; empty means
	// the embedded corpus.
	KnowledgeFile string

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "almanac" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "almanac",
		Short:         "Personal finance guidance drawn from historical wisdom",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAdviseCmd(app),
		newProfileCmd(app),
		newKnowledgeCmd(app),
	)

	return root
}
