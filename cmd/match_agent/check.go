package main

import (
	"fmt"
	"os"

	"github.com/jonathan/picture-match/internal/observability"
	"github.com/jonathan/picture-match/internal/server"
	"github.com/jonathan/picture-match/internal/types"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether an item code fits a slot",
	Long:  "Checks an item code against a slot's required codes using the same matching rules as session generation.",
	RunE:  runCheck,
}

var (
	checkItem   string
	checkCodes  []string
	checkStrict bool
	checkJSON   bool
)

func init() {
	checkCmd.Flags().StringVar(&checkItem, "item", "", "Item code (required)")
	checkCmd.Flags().StringSliceVar(&checkCodes, "codes", nil, "Slot required codes, one or two (required)")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Slot only accepts an exact match")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the result as JSON")

	if err := checkCmd.MarkFlagRequired("item"); err != nil {
		panic(fmt.Sprintf("failed to mark item flag as required: %v", err))
	}
	if err := checkCmd.MarkFlagRequired("codes"); err != nil {
		panic(fmt.Sprintf("failed to mark codes flag as required: %v", err))
	}

	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	req := newCheckRequest(checkItem, checkCodes, checkStrict)
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid check: %w", err)
	}

	resp := server.Check(req)
	if checkJSON {
		return writeJSON("", resp)
	}

	observability.NewPrinter(os.Stdout).WithColor(true).PrintCheck(req, resp)
	return nil
}

func newCheckRequest(item string, codes []string, strict bool) *types.CheckRequest {
	req := &types.CheckRequest{ItemCode: types.Code(item), Strict: strict}
	for _, c := range codes {
		req.RequiredCodes = append(req.RequiredCodes, types.Code(c))
	}
	return req
}
