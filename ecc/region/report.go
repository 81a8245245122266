package region

import (
	"github.com/joshuapare/ecckit/ecc"
	"github.com/joshuapare/ecckit/ecc/codeword"
)

// Finding is one non-clean group.
type Finding struct {
	// Slot is the check-code slot of the group.
	Slot int `json:"slot"`
	// BitPosition is the absolute bit offset of the corrected bit, or of the
	// group's first bit when no data bit was identified.
	BitPosition int `json:"bit_position"`
	// GroupPosition is the corrected index within the group, or -1.
	GroupPosition int        `json:"group_position"`
	Syndrome      uint8      `json:"syndrome"`
	Status        ecc.Status `json:"status"`
}

func newFinding(off int, g codeword.Group, res ecc.Result) Finding {
	bit := off*8 + g.Start
	if res.Status == ecc.StatusCorrected {
		bit += res.Position
	}
	return Finding{
		Slot:          g.Slot,
		BitPosition:   bit,
		GroupPosition: res.Position,
		Syndrome:      res.Syndrome,
		Status:        res.Status,
	}
}

// Report summarises one read.
type Report struct {
	// Groups is the number of groups verified.
	Groups int

	Corrections    []Finding
	CheckBitErrors []Finding
	Uncorrectable  []Finding
}

// Clean reports whether every group verified without error.
func (r Report) Clean() bool {
	return len(r.Corrections) == 0 && len(r.CheckBitErrors) == 0 && len(r.Uncorrectable) == 0
}
