package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wrenbrowser/toolbarkit/internal/config"
	"github.com/wrenbrowser/toolbarkit/internal/logging"
	"github.com/wrenbrowser/toolbarkit/internal/middleware"
	"github.com/wrenbrowser/toolbarkit/internal/state"
	"github.com/wrenbrowser/toolbarkit/internal/tui"
)

var (
	previewPosition string
	previewPrivate  bool
	previewTabs     int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run the interactive toolbar preview",
	Long: `Run the interactive toolbar preview.

Simulates one browser window: keys become toolbar button taps and
lifecycle events, which are routed through the middleware; the dispatched
toolbar actions drive the rendered toolbars.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		screens, router, window := newPreviewPipeline()
		model := tui.NewModel(screens, router, window)
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("preview failed: %w", err)
		}
		return nil
	},
}

// newPreviewPipeline wires a store, router, and one registered window from
// the preview flags and configuration.
func newPreviewPipeline() (*state.Store, *middleware.Router, uuid.UUID) {
	position := previewPosition
	if position == "" {
		position = config.Get("toolbar_position", "top")
	}
	tabs := previewTabs
	if tabs <= 0 {
		tabs = config.GetInt("preview_tab_count", 1)
	}

	window := uuid.New()
	screens := state.NewStore()
	screens.Set(window, state.Screen{
		Position: state.ParsePosition(position),
		Private:  previewPrivate,
		TabCount: tabs,
	})

	var policy middleware.BorderPolicy = middleware.DefaultBorderPolicy{}
	if !config.GetBool("borders_enabled", true) {
		policy = noBorders{}
	}
	router := middleware.NewRouter(screens, policy, logging.GetGlobal())
	return screens, router, window
}

// noBorders suppresses all toolbar borders, for hosts that draw their own
// separators.
type noBorders struct{}

func (noBorders) AddressBorders(pos state.Position, private bool, scrollY int) (bool, bool) {
	return false, false
}

func (noBorders) NavigationBorder(pos state.Position, private bool, scrollY int) bool {
	return false
}

func init() {
	previewCmd.Flags().StringVar(&previewPosition, "position", "", "address toolbar position: top or bottom")
	previewCmd.Flags().BoolVar(&previewPrivate, "private", false, "simulate a private window")
	previewCmd.Flags().IntVar(&previewTabs, "tabs", 0, "initial tab count")
	rootCmd.AddCommand(previewCmd)
}
