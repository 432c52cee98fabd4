package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/circuit"
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/engine"
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/netlist"
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/util"
)

var useSparse bool

var solveCmd = &cobra.Command{
	Use:   "solve <schematic.json>",
	Short: "Solve a schematic and print per-element results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := netlist.Load(args[0])
		if err != nil {
			return err
		}

		opts := []engine.Option{}
		if debug {
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(zerolog.DebugLevel).With().Timestamp().Logger()
			opts = append(opts, engine.WithLogger(log))
		}
		if useSparse {
			opts = append(opts, engine.WithSparse())
		}

		results := engine.New(opts...).Solve(doc.Elements, doc.Wires)
		printResults(doc.Title, results)
		return nil
	},
}

func printResults(title string, elements []circuit.Element) {
	if title != "" {
		fmt.Printf("%s\n", title)
	}
	fmt.Println("Element                        Voltage      Current      Power        Reading")
	fmt.Println("-----------------------------------------------------------------------------")
	for _, e := range elements {
		c := e.Computed
		reading := "-"
		if e.Type == circuit.TypeMultimeter {
			switch e.Properties.Mode {
			case circuit.ModeCurrent:
				reading = util.FormatValueFactor(c.Measurement, "A")
			case circuit.ModeResistance:
				reading = util.FormatValueFactor(c.Measurement, "Ohm")
			default:
				reading = util.FormatValueFactor(c.Measurement, "V")
			}
		}
		fmt.Printf("%-24s %12s %12s %12s  %s\n",
			fmt.Sprintf("%s (%s)", e.ID, e.Type),
			util.FormatValueFactor(c.Voltage, "V"),
			util.FormatValueFactor(c.Current, "A"),
			util.FormatValueFactor(c.Power, "W"),
			reading)
	}
}

func init() {
	solveCmd.Flags().BoolVar(&useSparse, "sparse", false, "force the sparse LU backend")
	rootCmd.AddCommand(solveCmd)
}
