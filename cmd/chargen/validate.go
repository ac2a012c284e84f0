package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ninthworld/chargen/internal/domain/catalog"
	"github.com/ninthworld/chargen/internal/domain/validation"
	cherr "github.com/ninthworld/chargen/internal/errors"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the game data files for problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		cat, err := catalog.Load(cfg.Data.Dir)
		if err != nil {
			return err
		}

		report := validation.CheckCatalog(cat)
		for _, v := range report.Violations {
			fmt.Fprintln(os.Stderr, v.String())
		}

		if report.HasErrors() {
			return cherr.CorruptDataf("catalog in %s has %d errors", cfg.Data.Dir, len(report.Errors()))
		}

		fmt.Printf("catalog ok: %d types, %d descriptors, %d species, %d foci, %d cyphers, %d artifacts, %d oddities\n",
			len(cat.Types), len(cat.Descriptors), len(cat.Species), len(cat.Foci),
			len(cat.Cyphers), len(cat.Artifacts), len(cat.Oddities))
		if n := len(report.Warnings()); n > 0 {
			fmt.Printf("%d warnings\n", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
