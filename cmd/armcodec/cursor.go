package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/armcodec/codec"
)

func newCursorCmd() *cobra.Command {
	var start uint32
	cmd := &cobra.Command{
		Use:   "cursor {seek|skip-bytes|skip-halfwords|skip-words} <n>",
		Short: "Exercise the codec cursor-advance primitives directly",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[1], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[1], err)
			}
			c := codec.NewAt(start)
			switch args[0] {
			case "seek":
				c.SeekTo(uint32(n))
			case "skip-bytes":
				c.SkipBytes(uint32(n))
			case "skip-halfwords":
				c.SkipHalfwords(uint32(n))
			case "skip-words":
				c.SkipWords(uint32(n))
			default:
				return fmt.Errorf("unrecognised cursor subcommand %q", args[0])
			}
			fmt.Printf("cursor: %#08x\n", c.Address())
			return nil
		},
	}
	cmd.Flags().Uint32Var(&start, "start", 0, "starting cursor address")
	return cmd
}
