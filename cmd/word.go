package cmd

import (
	"fmt"

	"evm-kit/pkg/bigint"
	"github.com/spf13/cobra"
)

type WordResult struct {
	Decimal string `json:"decimal"`
	Hex     string `json:"hex"`
	Word    string `json:"word"`
}

func (r *WordResult) GetOutput() string {
	return fmt.Sprintf("decimal: %s\nhex:     %s\nword:    %s", r.Decimal, r.Hex, r.Word)
}

func GetWordCommand() *cobra.Command {
	wordCmd := &cobra.Command{
		Use:   "word",
		Short: "Convert integers to and from 256-bit EVM words",
	}

	wordCmd.AddCommand(
		&cobra.Command{
			Use:   "encode [value]",
			Short: "Encode a decimal, 0x, 0o or 0b prefixed integer as a word",
			Args:  cobra.ExactArgs(1),
			RunE:  runWordEncode,
		},
		&cobra.Command{
			Use:   "decode [word]",
			Short: "Decode a 64 digit word",
			Args:  cobra.ExactArgs(1),
			RunE:  runWordDecode,
		},
	)

	return wordCmd
}

func runWordEncode(cmd *cobra.Command, args []string) error {
	value, err := bigint.FromBigIntLike(bigint.String(args[0]))
	if err != nil {
		return err
	}

	word, err := bigint.ToWord(value)
	if err != nil {
		return err
	}

	return writeOutput(cmd, &WordResult{
		Decimal: value.String(),
		Hex:     bigint.ToHex(value),
		Word:    word,
	})
}

func runWordDecode(cmd *cobra.Command, args []string) error {
	value, err := bigint.FromWord(args[0])
	if err != nil {
		return err
	}

	return writeOutput(cmd, &WordResult{
		Decimal: value.String(),
		Hex:     bigint.ToHex(value),
		Word:    args[0],
	})
}
