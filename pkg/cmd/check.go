// Copyright akinovak
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/akinovak/l1-table-verifier/pkg/field/bls12_377"
	"github.com/akinovak/l1-table-verifier/pkg/gadget"
	"github.com/akinovak/l1-table-verifier/pkg/plonk"
	"github.com/akinovak/l1-table-verifier/pkg/plonk/mock"
	"github.com/akinovak/l1-table-verifier/pkg/tablefile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] lookup_file",
	Short: "Check a witness against a lookup table.",
	Long: `Check that every witnessed (x, y) pair in the given JSON document
	appears as a row of its table, by synthesizing the lookup circuit and
	running the mock prover over it.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig

		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg.report = GetFlag(cmd, "report")
		cfg.k = GetUint(cmd, "k")
		// Parse lookup document
		doc := readLookupFile(args[0])
		// Go!
		checkDocument(doc, cfg)
	},
}

// check config encapsulates certain parameters to be used when checking a
// lookup document.
type checkConfig struct {
	// Log2 of the circuit's row count.  Zero means infer the smallest power
	// of two which fits the document.
	k uint
	// Specifies whether or not to report details of each failure.
	report bool
}

// checkDocument synthesizes the lookup circuit over the document and reports
// whether the mock prover accepts it.
func checkDocument(doc *tablefile.Document, cfg checkConfig) {
	k := cfg.k
	if k == 0 {
		k = inferK(doc)
	}
	//
	log.Debugf("checking %d witness rows against %d table rows (k=%d)",
		len(doc.Rows), len(doc.Xs), k)
	//
	circuit := &gadget.LookupCircuit[bls12_377.Element]{
		Xs:      doc.Xs,
		Ys:      doc.Ys,
		Witness: doc.Rows,
	}
	//
	prover, err := mock.Run[bls12_377.Element](k, circuit)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	failures := prover.Verify()
	if len(failures) == 0 {
		fmt.Println("OK")
		return
	}
	//
	fmt.Printf("rejected (%d failures)\n", len(failures))
	//
	if cfg.report {
		reportFailures(failures)
	}
	//
	os.Exit(1)
}

// inferK determines the smallest power of two which fits both the table and
// the witness rows.
func inferK(doc *tablefile.Document) uint {
	var (
		k    uint = 1
		need      = max(len(doc.Xs), len(doc.Ys), len(doc.Rows))
	)
	//
	for (1 << k) < need {
		k++
	}
	//
	return k
}

// reportFailures prints one line per failure, truncated to the terminal width
// when attached to one.
func reportFailures(failures []plonk.Failure) {
	width := 0
	//
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	//
	for _, failure := range failures {
		message := failure.Message()
		if width > 3 && len(message) > width {
			message = message[:width-3] + "..."
		}
		//
		fmt.Println(message)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("report", false, "report details of each failure")
	checkCmd.Flags().UintP("k", "k", 0, "log2 of the circuit row count (0 = infer)")
}
