package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/pow-ledger/ledger"
)

func printTitle() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ow ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("L", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("edger", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func describeBlock(b ledger.Block) string {
	return fmt.Sprintf("Hash: %s\nData: %s\nPrevious hash: %s\nTime: %s\nProof: %d",
		b.Hash(),
		b.Data(),
		b.PrevHash(),
		b.Time().Format(time.ANSIC),
		b.Proof(),
	)
}

func blockPanel(b ledger.Block) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightYellow(fmt.Sprintf("|BLOCK %d|", b.Index()))
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopLeft().Sprint(describeBlock(b))}
}

// printChain renders one block per row, in index order.
func printChain(blocks []ledger.Block) {
	rows := make([][]pterm.Panel, 0, len(blocks))
	for _, b := range blocks {
		rows = append(rows, []pterm.Panel{blockPanel(b)})
	}
	pterm.DefaultPanel.WithPanels(rows).Render()
}

func printVerdict(err error) {
	if err != nil {
		pterm.Error.Printfln("Chain is invalid: %v", err)
		return
	}
	pterm.Success.Println("Chain is valid")
}

type chainReport struct {
	Blocks []ledger.Block `json:"blocks"`
	Valid  bool           `json:"valid"`
	Error  string         `json:"error,omitempty"`
}

func writeJSON(w io.Writer, blocks []ledger.Block, verr error) error {
	report := chainReport{Blocks: blocks, Valid: verr == nil}
	if verr != nil {
		report.Error = verr.Error()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
