package main

import (
	"testing"

	"github.com/joshuapare/ecckit/ecc"
)

func TestSyndromeTable(t *testing.T) {
	tests := []struct {
		name string
		mode ecc.Mode
		want [8]int
		// statuses for syndromes 0..7
		status [8]ecc.Status
	}{
		{
			name: "hamming",
			mode: ecc.ModeHamming,
			want: [8]int{-1, -1, -1, 2, -1, 1, 0, 3},
			status: [8]ecc.Status{
				ecc.StatusClean, ecc.StatusCheckBit, ecc.StatusCheckBit, ecc.StatusCorrected,
				ecc.StatusCheckBit, ecc.StatusCorrected, ecc.StatusCorrected, ecc.StatusCorrected,
			},
		},
		{
			name: "reference",
			mode: ecc.ModeReference,
			want: [8]int{-1, 0, 1, 2, -1, -1, -1, -1},
			status: [8]ecc.Status{
				ecc.StatusClean, ecc.StatusCorrected, ecc.StatusCorrected, ecc.StatusCorrected,
				ecc.StatusUncorrectable, ecc.StatusUncorrectable, ecc.StatusUncorrectable, ecc.StatusUncorrectable,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := syndromeTable(tt.mode)
			if len(rows) != 8 {
				t.Fatalf("got %d rows, want 8", len(rows))
			}
			for s, r := range rows {
				if int(r.Syndrome) != s {
					t.Errorf("row %d: syndrome %d", s, r.Syndrome)
				}
				if r.Position != tt.want[s] {
					t.Errorf("syndrome %d: position %d, want %d", s, r.Position, tt.want[s])
				}
				if r.Status != tt.status[s] {
					t.Errorf("syndrome %d: status %s, want %s", s, r.Status, tt.status[s])
				}
			}
		})
	}
}

func TestTableCommand(t *testing.T) {
	tests := []struct {
		name        string
		mode        string
		wantJSON    bool
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "default mode",
			wantContain: []string{"Mode: hamming", "SYNDROME", "check-bit", "d3"},
		},
		{
			name:        "reference mode",
			mode:        "reference",
			wantContain: []string{"Mode: reference", "uncorrectable", "d0"},
		},
		{
			name:        "json",
			mode:        "ref",
			wantJSON:    true,
			wantContain: []string{`"mode": "reference"`, `"status": "uncorrectable"`},
		},
		{
			name:    "unknown mode",
			mode:    "bch",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			modeFlag = tt.mode
			jsonOut = tt.wantJSON

			output, err := captureOutput(t, runTable)
			if (err != nil) != tt.wantErr {
				t.Errorf("runTable() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}
