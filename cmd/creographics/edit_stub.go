//go:build noebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [project.json]",
		Short: "Open the editor window (not available in this build)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("this build has no window support (built with -tags noebiten)")
		},
	}
}
