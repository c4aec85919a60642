package main

import (
	"github.com/spf13/cobra"

	"github.com/lookbusy1344/armcodec/codec"
	"github.com/lookbusy1344/armcodec/config"
	"github.com/lookbusy1344/armcodec/inspector"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Launch the read-only bit-field inspector TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c := codec.NewAt(cfg.Cursor.DefaultAddress)
			insp := inspector.New(c)
			return insp.Run()
		},
	}
	return cmd
}
