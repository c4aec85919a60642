package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/armcodec/codec"
)

func bindOperandFlags(cmd *cobra.Command, f *operandFlags) {
	cmd.Flags().StringVar(&f.mnemonic, "mnemonic", "", "instruction mnemonic (required)")
	cmd.Flags().StringVar(&f.pred, "pred", "al", "condition predicate suffix")
	cmd.Flags().StringVar(&f.rd, "rd", "", "destination register")
	cmd.Flags().StringVar(&f.rn, "rn", "", "base/first-operand register")
	cmd.Flags().StringVar(&f.rm, "rm", "", "second register operand")
	cmd.Flags().StringVar(&f.rs, "rs", "", "third register operand (MUL/MLA's Rs; MLA's accumulate register comes from --rn)")
	cmd.Flags().StringVar(&f.shifter, "shifter", "", "second operand: rN | #imm | rN,lsl,#N | rN,lsl,rM | rN,rrx")
	cmd.Flags().StringVar(&f.address, "address", "", "memory operand: [rN] | [rN,#imm] | [rN,rM] | [rN,rM,lsl,#N]")
	cmd.Flags().StringVar(&f.imm, "imm", "0", "bare immediate (branch target, BKPT/SWI/USAT immediate)")
	cmd.Flags().BoolVar(&f.flagS, "flag-s", false, "set the S (flags) bit")
	cmd.Flags().BoolVar(&f.flagB, "flag-b", false, "set the B (byte) bit")
	cmd.Flags().BoolVar(&f.flagT, "flag-t", false, "set the T (translate/post-indexed) bit")
	_ = cmd.MarkFlagRequired("mnemonic")
}

var cursorAddress uint32

func newEncodeArmCmd() *cobra.Command {
	f := operandFlags{}
	cmd := &cobra.Command{
		Use:   "encode-arm",
		Short: "Encode an Arm instruction from flag-supplied operands",
		RunE: func(cmd *cobra.Command, args []string) error {
			instr, err := buildInstruction(f)
			if err != nil {
				return err
			}
			c := codec.NewAt(cursorAddress)
			op, err := c.EncodeArm(instr)
			if err != nil {
				logger.Printf("encode-arm failed: %v", err)
				return err
			}
			fmt.Printf("%s\ncursor: %#08x\n", op.String(), c.Address())
			return nil
		},
	}
	bindOperandFlags(cmd, &f)
	cmd.Flags().Uint32Var(&cursorAddress, "cursor", 0, "cursor address before encoding")
	return cmd
}

func newEncodeThumbCmd() *cobra.Command {
	f := operandFlags{}
	cmd := &cobra.Command{
		Use:   "encode-thumb",
		Short: "Encode a Thumb instruction from flag-supplied operands",
		RunE: func(cmd *cobra.Command, args []string) error {
			instr, err := buildInstruction(f)
			if err != nil {
				return err
			}
			c := codec.NewAt(cursorAddress)
			first, second, err := c.EncodeThumb(instr)
			if err != nil {
				logger.Printf("encode-thumb failed: %v", err)
				return err
			}
			fmt.Println(first.String())
			if second != nil {
				fmt.Println(second.String())
			}
			fmt.Printf("cursor: %#08x\n", c.Address())
			return nil
		},
	}
	bindOperandFlags(cmd, &f)
	cmd.Flags().Uint32Var(&cursorAddress, "cursor", 0, "cursor address before encoding")
	return cmd
}
