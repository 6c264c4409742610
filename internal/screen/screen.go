package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsheets/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that want to show
// context in the right side of the header, e.g. "Grade 5 · Medium".
type StatusProvider interface {
	Status() string
}

// BackInterceptor is an optional interface for screens that need to run
// cleanup (e.g. cancel an in-flight generation) when the user backs out.
// The returned command is executed instead of the default pop.
type BackInterceptor interface {
	InterceptBack() tea.Cmd
}
