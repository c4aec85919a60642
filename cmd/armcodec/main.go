// Command armcodec is a thin CLI over package codec: every operand is
// supplied structurally via flags, never parsed from assembly-source
// text. It exercises EncodeArm, EncodeThumb, DecodeThumb and the cursor
// primitives directly.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var logger *log.Logger

func init() {
	if os.Getenv("ARMCODEC_DEBUG") != "" {
		f, err := os.OpenFile("armcodec-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			logger = log.New(os.Stderr, "armcodec: ", log.LstdFlags)
		} else {
			logger = log.New(f, "armcodec: ", log.LstdFlags)
		}
	} else {
		logger = log.New(os.Stderr, "armcodec: ", log.LstdFlags)
	}
}

func main() {
	root := &cobra.Command{
		Use:   "armcodec",
		Short: "Encode and decode 32-bit Arm and 16-bit Thumb instructions",
	}

	root.AddCommand(newEncodeArmCmd())
	root.AddCommand(newEncodeThumbCmd())
	root.AddCommand(newDecodeThumbCmd())
	root.AddCommand(newCursorCmd())
	root.AddCommand(newInspectCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
