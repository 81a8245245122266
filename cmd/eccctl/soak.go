package main

import (
	"bytes"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	soakRounds  int
	soakSeed    uint64
	soakSize    int
	soakMetrics bool
)

var soakCmd = &cobra.Command{
	Use:   "soak",
	Short: "Inject random single-bit faults and tally the outcomes",
	Long: `The soak command repeatedly stores a random payload, flips one random bit
of it in place and reads it back. Every round is classified as recovered,
undetected, uncorrectable or miscorrected.

Example:
  eccctl soak --rounds 100000
  eccctl soak --seed 7 --size 2 --metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSoak()
	},
}

func init() {
	soakCmd.Flags().IntVar(&soakRounds, "rounds", 10000, "Number of fault rounds")
	soakCmd.Flags().Uint64Var(&soakSeed, "seed", 1, "Random seed")
	soakCmd.Flags().IntVar(&soakSize, "size", 0, "Payload size in bytes (0 uses the block size)")
	soakCmd.Flags().BoolVar(&soakMetrics, "metrics", false, "Print region metrics after the run")
	rootCmd.AddCommand(soakCmd)
}

type soakResult struct {
	Rounds        int `json:"rounds"`
	Recovered     int `json:"recovered"`
	Undetected    int `json:"undetected"`
	Uncorrectable int `json:"uncorrectable"`
	Miscorrected  int `json:"miscorrected"`
}

func runSoak() error {
	if soakRounds < 0 {
		return fmt.Errorf("rounds must not be negative: %d", soakRounds)
	}

	mem, reg, err := openMemory()
	if err != nil {
		return err
	}
	defer mem.Close()

	size := soakSize
	if size == 0 {
		size = mem.Region().BlockSize()
	}
	if size < 1 || size > mem.Region().BlockSize() {
		return fmt.Errorf("size %d outside 1-%d", size, mem.Region().BlockSize())
	}

	rng := rand.New(rand.NewPCG(soakSeed, soakSeed^0x9e3779b97f4a7c15))
	res := soakResult{Rounds: soakRounds}
	payload := make([]byte, size)

	for i := 0; i < soakRounds; i++ {
		for j := range payload {
			payload[j] = byte(rng.UintN(256))
		}
		off, err := mem.Put(payload)
		if err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
		bit := rng.IntN(size * 8)
		if err := mem.Region().InjectFault(off+bit/8, 1<<(bit%8)); err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
		got, rep, err := mem.Get(off, size)
		if err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
		if err := mem.Release(off); err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}

		switch {
		case bytes.Equal(got, payload):
			res.Recovered++
		case len(rep.Uncorrectable) > 0:
			res.Uncorrectable++
		case rep.Clean():
			res.Undetected++
		default:
			res.Miscorrected++
		}
	}

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		p := message.NewPrinter(language.English)
		printInfo("%s", p.Sprintf("Rounds:        %d\n", res.Rounds))
		printInfo("%s", p.Sprintf("Recovered:     %d\n", res.Recovered))
		printInfo("%s", p.Sprintf("Undetected:    %d\n", res.Undetected))
		printInfo("%s", p.Sprintf("Uncorrectable: %d\n", res.Uncorrectable))
		printInfo("%s", p.Sprintf("Miscorrected:  %d\n", res.Miscorrected))
	}

	if soakMetrics {
		return printMetrics(reg)
	}
	return nil
}
