package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the characters in the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		v, err := newVault(cfg)
		if err != nil {
			return err
		}

		listed, err := v.List(cmd.Context())
		if err != nil {
			return err
		}

		if len(listed) == 0 {
			fmt.Println("vault is empty")
			return nil
		}

		for _, sheet := range listed {
			fmt.Printf("%s  %s: %s  (%s)\n", sheet.ID, sheet.Name, sheet.Sentence(), sheet.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
