package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ecckit/ecc/region"
)

var (
	demoByte    int
	demoBit     int
	demoPayload string
)

// errMismatch is returned when a read does not give back the written payload.
var errMismatch = errors.New("read data does not match written data")

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write a payload, flip one bit and read it back",
	Long: `The demo command allocates one block, writes a payload, flips a single
bit of the stored data and reads the block back through the check codes.

Example:
  eccctl demo
  eccctl demo --byte 1 --bit 3
  eccctl demo --payload cafebabe --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoByte, "byte", 2, "Payload byte to corrupt")
	demoCmd.Flags().IntVar(&demoBit, "bit", 0, "Bit within the byte to flip (0-7)")
	demoCmd.Flags().StringVar(&demoPayload, "payload", "12345678", "Payload as hex")
	rootCmd.AddCommand(demoCmd)
}

type demoResult struct {
	Offset     int              `json:"offset"`
	Written    string           `json:"written"`
	Corrupted  string           `json:"corrupted"`
	Read       string           `json:"read"`
	Match      bool             `json:"match"`
	Corrected  []region.Finding `json:"corrected,omitempty"`
	CheckBit   []region.Finding `json:"check_bit,omitempty"`
	Undetected bool             `json:"undetected"`
}

func runDemo() error {
	payload, err := parseHex(demoPayload)
	if err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	if demoByte < 0 || demoByte >= len(payload) {
		return fmt.Errorf("byte %d outside %d-byte payload", demoByte, len(payload))
	}
	if demoBit < 0 || demoBit > 7 {
		return fmt.Errorf("bit %d outside 0-7", demoBit)
	}

	mem, _, err := openMemory()
	if err != nil {
		return err
	}
	defer mem.Close()

	off, err := mem.Put(payload)
	if err != nil {
		return fmt.Errorf("failed to store payload: %w", err)
	}
	printVerbose("Stored %d bytes at offset %d\n", len(payload), off)

	if err := mem.Region().InjectFault(off+demoByte, 1<<demoBit); err != nil {
		return fmt.Errorf("failed to inject fault: %w", err)
	}
	corrupted := bytes.Clone(payload)
	corrupted[demoByte] ^= 1 << demoBit

	got, rep, err := mem.Get(off, len(payload))
	if err != nil {
		return fmt.Errorf("failed to read back: %w", err)
	}
	if err := mem.Release(off); err != nil {
		return fmt.Errorf("failed to release block: %w", err)
	}

	res := demoResult{
		Offset:     off,
		Written:    hexBytes(payload),
		Corrupted:  hexBytes(corrupted),
		Read:       hexBytes(got),
		Match:      bytes.Equal(got, payload),
		Corrected:  rep.Corrections,
		CheckBit:   rep.CheckBitErrors,
		Undetected: rep.Clean(),
	}

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		printInfo("Written:   %s\n", res.Written)
		printInfo("Corrupted: %s (byte %d, bit %d)\n", res.Corrupted, demoByte, demoBit)
		printInfo("Read:      %s\n", res.Read)
		for _, f := range rep.Corrections {
			printInfo("Corrected bit %d (syndrome %d, slot %d)\n", f.BitPosition, f.Syndrome, f.Slot)
		}
		for _, f := range rep.Uncorrectable {
			printInfo("Uncorrectable group at bit %d (syndrome %d, slot %d)\n", f.BitPosition, f.Syndrome, f.Slot)
		}
		if res.Undetected {
			printInfo("Fault not covered by any check code\n")
		}
		if res.Match {
			printInfo("Data recovered\n")
		}
	}

	if !res.Match {
		return errMismatch
	}
	return nil
}

// parseHex decodes a hex string, ignoring spaces.
func parseHex(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, " ", "")
	return hex.DecodeString(s)
}
