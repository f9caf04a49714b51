package main

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/udisondev/deathfx/internal/query"
)

var (
	pingAddr    string
	pingTimeout time.Duration
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that a query service answers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr := pingAddr
		if addr == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			addr = net.JoinHostPort(cfg.BindAddress, strconv.Itoa(cfg.Port))
		}

		start := time.Now()
		c, err := query.Dial(cmd.Context(), addr, pingTimeout)
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Ping(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s ok (%s)\n", addr, time.Since(start).Round(time.Microsecond))
		return nil
	},
}

func init() {
	pingCmd.Flags().StringVar(&pingAddr, "addr", "", "service address host:port (default: from config)")
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 3*time.Second, "round trip timeout")
}
