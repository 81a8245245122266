// Package eccmem is the high-level API over an ECC-protected region.
//
// It adds block ownership on top of region.Region: Put allocates a block and
// stores a payload in it, Get reads only from allocated blocks, and Release
// returns the block. Configuration can be loaded from YAML:
//
//	capacity: 3584
//	block_size: 7      # must be a multiple of 7
//	mode: hamming      # or "reference"
//	backing: heap      # or "mmap"
//	log:
//	  level: info
//	  format: text
//
// Example:
//
//	cfg, err := eccmem.LoadConfig("ecc.yaml")
//	if err != nil {
//	    return err
//	}
//	rc, err := cfg.RegionConfig()
//	if err != nil {
//	    return err
//	}
//	mem, err := eccmem.Open(rc)
//	if err != nil {
//	    return err
//	}
//	defer mem.Close()
//
//	off, err := mem.Put([]byte{0x12, 0x34, 0x56, 0x78})
package eccmem
