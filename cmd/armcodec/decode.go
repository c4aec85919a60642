package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/armcodec/codec"
	"github.com/lookbusy1344/armcodec/opcode"
)

func newDecodeThumbCmd() *cobra.Command {
	var cursor uint32
	var second string
	cmd := &cobra.Command{
		Use:   "decode-thumb <hex-opcode>",
		Short: "Decode a 16-bit Thumb opcode into its instruction rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 16)
			if err != nil {
				return fmt.Errorf("invalid opcode %q: %w", args[0], err)
			}
			first := opcode.NewThumb(uint16(v))

			var secondOp *opcode.ThumbOpcode
			if second != "" {
				sv, err := strconv.ParseUint(strings.TrimPrefix(second, "0x"), 16, 16)
				if err != nil {
					return fmt.Errorf("invalid second opcode %q: %w", second, err)
				}
				s := opcode.NewThumb(uint16(sv))
				secondOp = &s
			}

			c := codec.NewAt(cursor)
			instr, err := c.DecodeThumb(first, secondOp)
			if err != nil {
				logger.Printf("decode-thumb failed: %v", err)
				return err
			}
			fmt.Printf("%s\ncursor: %#08x\n", instr.String(), c.Address())
			return nil
		},
	}
	cmd.Flags().Uint32Var(&cursor, "cursor", 0, "cursor address before decoding")
	cmd.Flags().StringVar(&second, "second", "", "following 16-bit opcode, for the BranchLink pair")
	return cmd
}
