package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rzbill/minlog"
	emitrun "github.com/rzbill/minlog/internal/cmd/emit"
	cfgpkg "github.com/rzbill/minlog/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "minlog",
		Short: "minlog CLI",
		Long:  "minlog is an embeddable logging facility. This CLI emits messages through a configured handle and inspects filter bit layouts.",
	}

	// emit
	emitCmd := &cobra.Command{
		Use:   "emit",
		Short: "Emit messages through a configured handle",
		Long:  "Emit reads lines from stdin (or --message) and logs each through a handle built from the config file, MINLOG_* env vars and flags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			module, _ := cmd.Flags().GetString("module")
			priority, _ := cmd.Flags().GetString("priority")
			raw, _ := cmd.Flags().GetBool("raw")
			message, _ := cmd.Flags().GetString("message")
			if err := emitrun.Run(emitrun.Options{
				ConfigPath: configPath,
				Module:     module,
				Priority:   priority,
				Raw:        raw,
				Message:    message,
			}); err != nil {
				return fmt.Errorf("emit: %w", err)
			}
			return nil
		},
	}
	emitCmd.Flags().String("config", os.Getenv("MINLOG_CONFIG"), "Config file (JSON or YAML)")
	emitCmd.Flags().String("module", "paging", "Module name to tag messages with")
	emitCmd.Flags().String("priority", "info", "Severity: error|warn|info|debug|trace")
	emitCmd.Flags().Bool("raw", false, "Bypass filtering and decoration (raw write)")
	emitCmd.Flags().String("message", "", "Single message to emit instead of reading stdin")
	rootCmd.AddCommand(emitCmd)

	// bits
	bitsCmd := &cobra.Command{
		Use:   "bits",
		Short: "Show priority and module bit assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return err
			}
			cfgpkg.FromEnv(&cfg)
			reg, err := cfgpkg.Registry(cfg)
			if err != nil {
				return err
			}

			fmt.Println("priorities:")
			for _, p := range []minlog.Priority{
				minlog.PriorityError, minlog.PriorityWarn, minlog.PriorityInfo,
				minlog.PriorityDebug, minlog.PriorityTrace,
			} {
				fmt.Printf("  %-8s %#010x\n", p, uint32(p))
			}
			fmt.Println("modules:")
			for _, name := range reg.Names() {
				m, _ := reg.Lookup(name)
				fmt.Printf("  %-8s %#010x\n", name, uint32(m))
			}
			return nil
		},
	}
	bitsCmd.Flags().String("config", os.Getenv("MINLOG_CONFIG"), "Config file (JSON or YAML)")
	rootCmd.AddCommand(bitsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
