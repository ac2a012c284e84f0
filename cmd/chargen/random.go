package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninthworld/chargen/internal/services/assembly"
	"github.com/ninthworld/chargen/internal/uuid"
)

var (
	randomCount int
	randomSeed  int64
	randomSave  bool
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Roll one or more complete characters",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		gen, err := assembly.NewGenerator(&assembly.GeneratorConfig{
			Catalog:     cat,
			IDGenerator: uuid.NewGoogleUUIDGenerator(),
			Seed:        randomSeed,
		})
		if err != nil {
			return err
		}

		sheets, err := gen.GenerateBatch(cmd.Context(), randomCount)
		if err != nil {
			return err
		}

		if randomSave {
			v, err := newVault(cfg)
			if err != nil {
				return err
			}
			for _, sheet := range sheets {
				if err := v.Store(cmd.Context(), sheet); err != nil {
					return err
				}
			}
		}

		for i, sheet := range sheets {
			if i > 0 {
				fmt.Println("---")
			}
			fmt.Print(sheet.String())
			if randomSave {
				fmt.Printf("Saved as %s\n", sheet.ID)
			}
		}
		return nil
	},
}

func init() {
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1, "how many characters to roll")
	randomCmd.Flags().Int64Var(&randomSeed, "seed", 0, "random seed for reproducible rolls")
	randomCmd.Flags().BoolVar(&randomSave, "save", false, "store rolled characters in the vault")
	rootCmd.AddCommand(randomCmd)
}
