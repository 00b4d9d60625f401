package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soettl/fluentui/internal/config"
	"github.com/soettl/fluentui/internal/demo"
	"github.com/soettl/fluentui/internal/domain"
	"github.com/soettl/fluentui/internal/eventbus"
	"github.com/soettl/fluentui/internal/loader"
	"github.com/soettl/fluentui/internal/selection"
	"github.com/soettl/fluentui/internal/store"
	"github.com/soettl/fluentui/internal/ui"
)

var version = "dev"

// forwardedEvents are the bus events the UI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventRangeLoadStarted,
	eventbus.EventRangeLoaded,
	eventbus.EventRangeLoadFailed,
	eventbus.EventError,
}

func newRootCmd() (*cobra.Command, *viper.Viper) {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "detailslist",
		Short:         "A virtualized details list of files in the terminal",
		Long:          `Scroll through tens of thousands of generated file records. Only the rows around the viewport are rendered and loaded.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), v)
		},
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "config file (default: "+config.DefaultPath()+")")
	flags.IntP("items", "n", 0, "number of rows in the list")
	flags.Bool("compact", false, "use single line rows")
	flags.Float64("overscan", 0, "rows rendered beyond the viewport, as a fraction of its height")
	flags.Bool("no-hw-accel", false, "position rows by offset instead of translation")
	flags.Duration("latency", 0, "simulated latency of every page load")
	flags.Uint64("seed", 1, "seed for the generated documents")
	flags.Bool("debug", false, "write a debug log")
	flags.String("log-file", "detailslist.log", "debug log location")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("DETAILSLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd, v
}

// applyOverrides lets flags and environment variables win over the file
func applyOverrides(v *viper.Viper, cfg *config.Config) {
	if v.IsSet("items") {
		cfg.ItemCount = v.GetInt("items")
	}
	if v.IsSet("compact") {
		cfg.List.Compact = v.GetBool("compact")
	}
	if v.IsSet("overscan") {
		cfg.List.OverscanRatio = v.GetFloat64("overscan")
	}
	if v.GetBool("no-hw-accel") {
		cfg.List.EnableHardwareAccelleration = false
	}
	if v.IsSet("latency") {
		cfg.Loader.Latency = config.Duration{Duration: v.GetDuration("latency")}
	}
}

// loadConfig reads the config file, writing the defaults on first run
func loadConfig(svc config.ConfigService, v *viper.Viper) (*config.Config, error) {
	_, statErr := os.Stat(svc.Path())

	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if os.IsNotExist(statErr) {
		if err := svc.Save(cfg); err != nil {
			log.Printf("Could not write default config: %v", err)
		}
	}

	applyOverrides(v, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(v *viper.Viper) (func(), error) {
	if !v.GetBool("debug") {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(v.GetString("log-file"), "detailslist")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func runApp(ctx context.Context, v *viper.Viper) error {
	closeLog, err := setupLogging(v)
	if err != nil {
		return err
	}
	defer closeLog()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus, v.GetString("config"))
	cfg, err := loadConfig(configSvc, v)
	if err != nil {
		return err
	}
	log.Printf("Loaded config from %s: %d items", configSvc.Path(), cfg.ItemCount)

	docs := store.NewMemoryDocumentStore()
	source := demo.NewSource(demo.Options{
		Count:   cfg.ItemCount,
		Seed:    v.GetUint64("seed"),
		Latency: cfg.Loader.Latency.Duration,
	})

	ld := loader.New(bus, docs, source, loader.Options{
		ItemCount:      cfg.ItemCount,
		PageSize:       cfg.Loader.PageSize,
		LoadAheadCount: cfg.Loader.LoadAheadCount,
	})
	ld.Start(ctx)

	model := ui.NewModel(ui.Options{
		Bus:           bus,
		Config:        cfg,
		ConfigService: configSvc,
		Store:         docs,
		Selection:     selection.NewService(bus),
	})

	zone.NewGlobal()
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 1000)
	var unsubscribe []func()
	for _, eventType := range forwardedEvents {
		unsubscribe = append(unsubscribe, bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				log.Println("Event channel full, dropping event")
			}
		}))
	}
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	watcher := watchConfig(ctx, configSvc, v, p, func(next *config.Config) {
		source.SetCount(next.ItemCount)
		source.SetLatency(next.Loader.Latency.Duration)
		docs.Truncate(next.ItemCount)
		ld.SetItemCount(next.ItemCount)
		ld.SetLoadAheadCount(next.Loader.LoadAheadCount)
		bus.Publish(domain.ConfigChangedEvent{Path: configSvc.Path()})
	})

	_, runErr := p.Run()
	interrupted := ctx.Err() != nil

	// Cleanup
	cancel()
	model.Dispose()
	if watcher != nil {
		_ = watcher.Stop()
	}
	for _, unsub := range unsubscribe {
		unsub()
	}
	ld.Stop()
	bus.Close()
	close(eventChan)

	if runErr != nil && !interrupted {
		return fmt.Errorf("error running program: %w", runErr)
	}
	return nil
}

// watchConfig reloads the config file when it changes on disk. A file that
// fails to parse or validate is reported and the running config is kept.
func watchConfig(ctx context.Context, svc config.ConfigService, v *viper.Viper, p *tea.Program, apply func(*config.Config)) *config.Watcher {
	watcher, err := config.NewWatcher(svc.Path(), 0)
	if err != nil {
		log.Printf("Config hot reload disabled: %v", err)
		return nil
	}
	changes, err := watcher.Start()
	if err != nil {
		log.Printf("Config hot reload disabled: %v", err)
		_ = watcher.Stop()
		return nil
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				next, err := svc.LoadFromPath(svc.Path())
				if err == nil {
					applyOverrides(v, next)
					err = next.Validate()
				}
				if err != nil {
					log.Printf("Config reload failed: %v", err)
					p.Send(ui.EventMsg{Event: domain.ErrorEvent{
						Message: fmt.Sprintf("Config reload failed: %v", err),
						Err:     err,
					}})
					continue
				}

				apply(next)
				p.Send(ui.ConfigReloadedMsg{Config: next})
			}
		}
	}()

	return watcher
}
