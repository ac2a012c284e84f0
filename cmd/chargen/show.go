package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored character sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		v, err := newVault(cfg)
		if err != nil {
			return err
		}

		sheet, err := v.Fetch(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Print(sheet.String())

		if len(sheet.Skills.Trained) > 0 {
			fmt.Printf("Trained: %s\n", strings.Join(sheet.Skills.Trained, ", "))
		}
		if len(sheet.Skills.Specialized) > 0 {
			fmt.Printf("Specialized: %s\n", strings.Join(sheet.Skills.Specialized, ", "))
		}
		if len(sheet.Skills.Inabilities) > 0 {
			fmt.Printf("Inabilities: %s\n", strings.Join(sheet.Skills.Inabilities, ", "))
		}

		for _, a := range sheet.SpecialAbilities {
			if a.Cost != "" {
				fmt.Printf("Ability: %s (%s, %s)\n", a.Name, a.Cost, a.Source)
			} else {
				fmt.Printf("Ability: %s (%s)\n", a.Name, a.Source)
			}
		}
		for _, c := range sheet.Cyphers {
			fmt.Printf("Cypher: %s (level %d)\n", c.Name, c.Level)
		}
		for _, a := range sheet.Artifacts {
			fmt.Printf("Artifact: %s (level %d)\n", a.Name, a.Level)
		}
		fmt.Printf("Oddity: %s\n", sheet.Oddity.Name)

		for _, item := range sheet.Purchases {
			fmt.Printf("Bought: %s (%d shins)\n", item.Name, item.Cost)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
