package main

import (
	"errors"
	"testing"

	"github.com/joshuapare/ecckit/ecc/region"
)

func TestDemoCommand(t *testing.T) {
	tests := []struct {
		name           string
		mode           string
		payload        string
		byteIdx        int
		bit            int
		wantJSON       bool
		wantErr        error
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "default scenario",
			payload:     "12345678",
			byteIdx:     2,
			bit:         0,
			wantContain: []string{"Written:   12 34 56 78", "Corrupted: 12 34 57 78", "Read:      12 34 56 78", "Corrected bit 16", "Data recovered"},
		},
		{
			name:        "reference mode corrects group position two",
			mode:        "reference",
			payload:     "12345678",
			byteIdx:     2,
			bit:         0,
			wantContain: []string{"Corrected bit 16 (syndrome 3", "Data recovered"},
		},
		{
			name:        "hamming corrects first bit of a group",
			payload:     "12345678",
			byteIdx:     0,
			bit:         0,
			wantContain: []string{"Corrected bit 0 (syndrome 6", "Data recovered"},
		},
		{
			name:           "reference mode refuses syndrome six",
			mode:           "reference",
			payload:        "12345678",
			byteIdx:        0,
			bit:            0,
			wantErr:        errMismatch,
			wantContain:    []string{"Uncorrectable group at bit 0 (syndrome 6", "Read:      13 34 56 78"},
			wantNotContain: []string{"Data recovered"},
		},
		{
			name:           "uncovered bit",
			payload:        "12345678",
			byteIdx:        0,
			bit:            4,
			wantErr:        errMismatch,
			wantContain:    []string{"Fault not covered", "Read:      02 34 56 78"},
			wantNotContain: []string{"Data recovered"},
		},
		{
			name:        "json output",
			payload:     "cafebabe",
			byteIdx:     1,
			bit:         7,
			wantJSON:    true,
			wantContain: []string{`"written": "CA FE BA BE"`, `"match": true`, `"status": "corrected"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			modeFlag = tt.mode
			demoPayload = tt.payload
			demoByte = tt.byteIdx
			demoBit = tt.bit
			jsonOut = tt.wantJSON

			output, err := captureOutput(t, runDemo)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("runDemo() error = %v, want %v", err, tt.wantErr)
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestDemoCommand_InvalidArgs(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		byteIdx int
		bit     int
	}{
		{"bad hex", "zz", 0, 0},
		{"byte past payload", "1234", 2, 0},
		{"negative byte", "1234", -1, 0},
		{"bit too high", "1234", 0, 8},
		{"payload larger than block", "0102030405060708", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			demoPayload = tt.payload
			demoByte = tt.byteIdx
			demoBit = tt.bit

			_, err := captureOutput(t, runDemo)
			if err == nil {
				t.Errorf("runDemo() expected error")
			}
		})
	}
}

func TestDemoCommand_ConfigFile(t *testing.T) {
	resetFlags()
	configPath = writeConfig(t, "capacity: 448\nblock_size: 7\nmode: hamming\n")
	demoPayload = "01020304050607"
	demoByte = 6
	demoBit = 3
	verbose = true

	output, err := captureOutput(t, runDemo)
	if err != nil {
		t.Fatalf("runDemo() error = %v", err)
	}
	assertContains(t, output, []string{"Region: 448 B, 7-byte blocks, hamming decoding", "Data recovered"})
}

func TestDemoCommand_BadConfig(t *testing.T) {
	resetFlags()
	configPath = writeConfig(t, "capacity: 448\nblocksize: 7\n")

	_, err := captureOutput(t, runDemo)
	if err == nil {
		t.Fatalf("runDemo() expected error for unknown config key")
	}
}

func TestDemoCommand_UnalignedConfig(t *testing.T) {
	resetFlags()
	configPath = writeConfig(t, "capacity: 4096\nblock_size: 4\n")

	_, err := captureOutput(t, runDemo)
	if !errors.Is(err, region.ErrUnaligned) {
		t.Fatalf("runDemo() error = %v, want %v", err, region.ErrUnaligned)
	}
}
