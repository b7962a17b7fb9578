package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/dayclaw/internal/config"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check environment and configuration health",
		Run: func(cmd *cobra.Command, args []string) {
			runDoctor()
		},
	}
}

func runDoctor() {
	fmt.Println("dayclaw doctor")
	fmt.Printf("  Version:  %s\n", version)
	fmt.Printf("  OS:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("  Go:       %s\n", runtime.Version())
	fmt.Println()

	cfgPath := resolveConfigPath()
	fmt.Printf("  Config:   %s", cfgPath)
	if _, err := os.Stat(cfgPath); err != nil {
		fmt.Println(" (NOT FOUND, using defaults)")
	} else {
		fmt.Println(" (OK)")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("  Config load error: %s\n", err)
		return
	}

	fmt.Println()
	fmt.Println("  Provider:")
	fmt.Printf("    %-12s %s\n", cfg.Provider.Name, credStatus(cfg.Provider.APIKey))

	fmt.Println()
	fmt.Println("  Search:")
	fmt.Printf("    %-12s %s\n", "brave", credStatus(cfg.Search.BraveAPIKey))

	fmt.Println()
	fmt.Println("  Channels:")
	fmt.Printf("    %-12s enabled=%t token=%s\n", "telegram", cfg.Telegram.Enabled, credStatus(cfg.Telegram.Token))
	fmt.Printf("    %-12s addr=%s auth=%t\n", "webhook", cfg.HTTP.Addr, cfg.HTTP.Token != "")

	fmt.Println()
	fmt.Printf("  Store:    %s", cfg.Store.Backend)
	if cfg.Store.Backend == "redis" {
		fmt.Printf(" (%s)\n", credStatus(cfg.Store.RedisURL))
	} else {
		fmt.Printf(" (%s)\n", cfg.Store.Path)
		if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
			fmt.Printf("  Data dir not writable: %s\n", err)
		}
	}

	fmt.Println()
	fmt.Println("  Reminders:")
	fmt.Printf("    morning: %s\n", orNone(cfg.Reminders.MorningCron))
	fmt.Printf("    night:   %s\n", orNone(cfg.Reminders.NightCron))
}

func credStatus(secret string) string {
	if secret == "" {
		return "not configured"
	}
	return "configured"
}

func orNone(s string) string {
	if s == "" {
		return "(off)"
	}
	return s
}
