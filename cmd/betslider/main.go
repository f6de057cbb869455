package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jask/betslider/internal/assets"
	"github.com/jask/betslider/internal/config"
	"github.com/jask/betslider/internal/logging"
	"github.com/jask/betslider/internal/slider"
	"github.com/jask/betslider/internal/tui"
)

var (
	configPath string
	logFile    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "betslider",
	Short:        "Drag to accept or decline a peer-to-peer bet",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		closer, err := logging.Setup(cfg.Log)
		if err != nil {
			return err
		}
		defer closer.Close()

		outcomes, err := run(cfg)
		for _, o := range outcomes {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s at %s\n", o.ID, o.Decision, o.At.Format("15:04:05"))
		}
		return err
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = os.Getenv("BETSLIDER_CONFIG")
		}
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.Save(config.Default(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $BETSLIDER_CONFIG or ~/.config/betslider/config.toml)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "override log.file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "override log.level")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = logFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

func run(cfg config.Config) ([]slider.Outcome, error) {
	var outcomes []slider.Outcome
	m := tui.New(cfg, assets.Default(), slider.Options{
		OnDecision: func(o slider.Outcome) { outcomes = append(outcomes, o) },
	})
	defer m.Teardown()

	log.WithFields(log.Fields{
		"maxDistance": cfg.Slider.MaxDistance,
	}).Info("Starting slider")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return outcomes, fmt.Errorf("run program: %w", err)
	}
	return outcomes, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
