package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codycoggins/istari/internal/api"
	"github.com/codycoggins/istari/internal/bus"
	"github.com/codycoggins/istari/internal/chat"
	"github.com/codycoggins/istari/internal/config"
	"github.com/codycoggins/istari/internal/logging"
	"github.com/codycoggins/istari/internal/store"
	"github.com/codycoggins/istari/internal/update"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "istari",
		Short:        "Terminal client for the istari personal assistant",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			config.SetDefaults(v)

			v.SetEnvPrefix("ISTARI")
			v.AutomaticEnv()

			if configPath != "" {
				v.SetConfigFile(configPath)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			} else {
				v.SetConfigName("istari")
				v.SetConfigType("yaml")
				if home, err := os.UserConfigDir(); err == nil {
					v.AddConfigPath(home + "/istari")
				}
				v.AddConfigPath(".")
				if err := v.ReadInConfig(); err != nil {
					if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
						return fmt.Errorf("read config: %w", err)
					}
				}
			}

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			return run(config.FromViper(v))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a config file")
	cmd.Flags().String("api_base", config.Default().APIBase, "assistant API base URL")
	cmd.Flags().String("ws_url", "", "chat websocket URL (derived from api_base when empty)")
	cmd.Flags().Bool("desktop_notifications", false, "raise desktop notifications for new unread items")
	cmd.Flags().String("logging.level", config.Default().LogLevel, "log level")
	cmd.Flags().String("logging.file", config.Default().LogFile, "log file path (empty disables logging)")

	return cmd
}

func run(cfg config.Config) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	client := api.New(cfg.APIBase, logger)
	todos := store.NewTodos(client, logger)
	inbox := store.NewNotifications(client, cfg.NotificationLimit, logger)
	digests := store.NewDigests(client, cfg.DigestLimit, logger)
	settings := store.NewSettings(client, logger)
	slot := new(bus.AskSlot)

	var notifier update.Notifier = update.NoopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecNotifier{}
	}

	// The side-effect callbacks fire from the channel goroutine; they
	// hand off to the update loop through program.Send, which is safe
	// from any goroutine. program is assigned before Start.
	var program *tea.Program
	channel := chat.NewChannel(chat.Config{
		URL:         cfg.WSURL,
		BackoffBase: cfg.ReconnectBase,
		BackoffCap:  cfg.ReconnectCap,
		BufferSize:  64,
		Logger:      logger,
		Callbacks: chat.Callbacks{
			OnTodoChanged:   func() { program.Send(update.TodosChangedMsg{}) },
			OnMemoryCreated: func() { program.Send(update.MemoryCreatedMsg{}) },
		},
	})

	m := update.NewModel(update.Deps{
		Config:   cfg,
		Logger:   logger,
		Todos:    todos,
		Inbox:    inbox,
		Digests:  digests,
		Settings: settings,
		Channel:  channel,
		Ask:      slot,
		Notifier: notifier,
	})

	program = tea.NewProgram(m, tea.WithAltScreen())
	channel.Start()
	defer channel.Stop()

	_, err = program.Run()
	return err
}
