package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RicGue02/LifeOS/internal/ui"
)

const Version = "0.1.0"

var globalFlags struct {
	configFile string
	dbPath     string
	memory     bool
}

var rootCmd = &cobra.Command{
	Use:           "lifeos",
	Short:         "LifeOS: plan your day, level up your life",
	Long:          "LifeOS is a local-first CLI/TUI for daily time blocking, habits, tasks and money, scored as a character with six life dimensions.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&globalFlags.configFile, "config", "", "Config file (default $HOME/.lifeos/config.yaml)")
	pf.StringVar(&globalFlags.dbPath, "db", "", "SQLite database path (overrides config)")
	pf.BoolVar(&globalFlags.memory, "memory", false, "Use a throwaway in-memory database")

	rootCmd.AddCommand(
		newDayCmd(),
		newBlockCmd(),
		newSuggestCmd(),
		newReviewCmd(),
		newStatusCmd(),
		newRefreshCmd(),
		newTaskCmd(),
		newHabitCmd(),
		newMoneyCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
