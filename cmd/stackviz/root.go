package main

import (
	"fmt"
	"os"
	"path"

	"github.com/amirrezaask/stackviz"
	"github.com/amirrezaask/stackviz/logging"
	"github.com/amirrezaask/stackviz/session"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "stackviz",
	Short:         "stackviz visualizes an array backed stack",
	Long:          `Opens a window to push, pop and peek values on a fixed size stack and to watch a balanced bracket check step by step.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger := logging.New(level)
		logger.Debug("config loaded", "config", cfg.String())

		viz, err := stackviz.New(cfg, logger)
		if err != nil {
			return err
		}
		viz.StartMainLoop()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("cfg", path.Join(os.Getenv("HOME"), ".stackviz"), "path to config file")
	rootCmd.PersistentFlags().Int("capacity", 0, fmt.Sprintf("stack size (%d-%d), asked on start when not set", session.MinCapacity, session.MaxCapacity))
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")
}

// loadConfig reads the config file and applies the flags on top of it.
func loadConfig(cmd *cobra.Command) (*stackviz.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("cfg")
	cfg, err := stackviz.ReadConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
	}

	if cmd.Flags().Changed("capacity") {
		capacity, _ := cmd.Flags().GetInt("capacity")
		if capacity < session.MinCapacity || capacity > session.MaxCapacity {
			return nil, session.ErrCapacityOutOfRange
		}
		cfg.Capacity = capacity
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	return cfg, nil
}
