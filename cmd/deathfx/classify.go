package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/deathfx/internal/deatheffect"
	"github.com/udisondev/deathfx/internal/effect"
)

var (
	classifySnapshot string
	classifyMode     string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a saved effect snapshot offline",
	Long: `Resolve a YAML snapshot against the configured definitions and print the
death effect result as three integers: category, minimum skill level,
projectile type. No result prints -1 -1 -1.`,
	Args: cobra.NoArgs,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&classifySnapshot, "snapshot", "s", "", "snapshot YAML file")
	classifyCmd.Flags().StringVarP(&classifyMode, "mode", "m", "elemental", "classification mode (elemental, resist)")
	_ = classifyCmd.MarkFlagRequired("snapshot")
}

func runClassify(cmd *cobra.Command, _ []string) error {
	mode, err := deatheffect.ParseMode(classifyMode)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	snap, err := effect.LoadSnapshotFile(classifySnapshot)
	if err != nil {
		return err
	}

	resolver, err := loadResolver(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	present, keywords := snap.KillerKeywords()
	res := deatheffect.Classify(resolver.Records(snap.Effects), resolver.Killer(present, keywords), mode)

	v := res.Ints()
	fmt.Fprintf(cmd.OutOrStdout(), "%d %d %d\t# %s\n", v[0], v[1], v[2], res.Category)
	return nil
}
