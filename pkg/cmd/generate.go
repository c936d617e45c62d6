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

	"github.com/akinovak/l1-table-verifier/pkg/gadget"
	"github.com/akinovak/l1-table-verifier/pkg/rel"
	"github.com/akinovak/l1-table-verifier/pkg/tablefile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [flags] relation",
	Short: "Generate a lookup document for a canonical byte relation.",
	Long: `Generate a lookup document tabulating a canonical byte relation
	(identity, complement, increment, or xor with a fixed key).  The witness
	rows mirror the table, so the generated document checks clean.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			key    = GetUint(cmd, "key")
			output = GetString(cmd, "output")
			rows   []gadget.TableRow
		)
		//
		switch args[0] {
		case "identity":
			rows = rel.Identity()
		case "complement":
			rows = rel.Complement()
		case "increment":
			rows = rel.Increment()
		case "xor":
			if key > 255 {
				fmt.Printf("xor key %d out of byte range\n", key)
				os.Exit(1)
			}
			//
			rows = rel.XorConst(uint8(key))
		default:
			fmt.Printf("unknown relation %q\n", args[0])
			os.Exit(1)
		}
		//
		writeDocument(rows, output)
	},
}

// writeDocument renders a table (with a mirroring witness) as JSON, either to
// a file or to stdout.
func writeDocument(rows []gadget.TableRow, output string) {
	xs, ys := gadget.Columns(rows)
	//
	doc := &tablefile.Document{Xs: xs, Ys: ys, Rows: make([]gadget.InputRow, len(rows))}
	for i, row := range rows {
		doc.Rows[i] = gadget.NewInputRow(row.X, row.Y)
	}
	//
	data, err := tablefile.ToBytes(doc)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if output == "" {
		fmt.Println(string(data))
		return
	}
	//
	if err := os.WriteFile(output, data, 0644); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("wrote %d rows to %s", len(rows), output)
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Uint("key", 0, "key byte for the xor relation")
	generateCmd.Flags().StringP("output", "o", "", "write the document to a file rather than stdout")
}
