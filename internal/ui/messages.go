package ui

import (
	"github.com/soettl/fluentui/internal/config"
	"github.com/soettl/fluentui/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ConfigReloadedMsg carries a configuration that was changed on disk
type ConfigReloadedMsg struct {
	Config *config.Config
}

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}

// clearStatusMsg clears the status message if it is still the one with seq
type clearStatusMsg struct {
	seq int
}
