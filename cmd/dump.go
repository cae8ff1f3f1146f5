package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wrenbrowser/toolbarkit/internal/action"
	"github.com/wrenbrowser/toolbarkit/internal/middleware"
	"github.com/wrenbrowser/toolbarkit/internal/state"
	"github.com/wrenbrowser/toolbarkit/internal/toolbar"
)

var (
	dumpPosition string
	dumpPrivate  bool
	dumpTabs     int
	dumpScroll   int
)

// dumpOutput is the JSON shape printed by the dump command.
type dumpOutput struct {
	Window     string                  `json:"window"`
	Address    toolbar.AddressModel    `json:"address"`
	Navigation toolbar.NavigationModel `json:"navigation"`
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the built toolbar models as JSON",
	Long: `Print the built toolbar models as JSON.

Registers one window with the given state, routes a browser-did-load
action through the middleware, and prints the dispatched models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump(cmd.OutOrStdout())
	},
}

func runDump(w io.Writer) error {
	window := uuid.New()
	screens := state.NewStore()
	screens.Set(window, state.Screen{
		Position: state.ParsePosition(dumpPosition),
		Private:  dumpPrivate,
		ScrollY:  dumpScroll,
		TabCount: dumpTabs,
	})
	router := middleware.NewRouter(screens, nil, nil)

	var loaded *action.ToolbarsLoaded
	router.Handle(
		action.BrowserDidLoad{Scope: action.ScopeFor(window), TabCount: dumpTabs},
		func(a action.ToolbarAction) {
			if l, ok := a.(action.ToolbarsLoaded); ok {
				loaded = &l
			}
		},
	)
	if loaded == nil {
		return fmt.Errorf("middleware dispatched no toolbars-loaded action")
	}

	out := dumpOutput{
		Window:     window.String(),
		Address:    loaded.Address,
		Navigation: loaded.Navigation,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	dumpCmd.Flags().StringVar(&dumpPosition, "position", "top", "address toolbar position: top or bottom")
	dumpCmd.Flags().BoolVar(&dumpPrivate, "private", false, "private window")
	dumpCmd.Flags().IntVar(&dumpTabs, "tabs", 1, "tab count")
	dumpCmd.Flags().IntVar(&dumpScroll, "scroll", 0, "page scroll offset")
	rootCmd.AddCommand(dumpCmd)
}
