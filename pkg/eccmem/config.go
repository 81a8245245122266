package eccmem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/ecckit/ecc"
	"github.com/joshuapare/ecckit/ecc/region"
	"github.com/joshuapare/ecckit/internal/membuf"
)

// FileConfig is the on-disk configuration format.
type FileConfig struct {
	Capacity  int       `yaml:"capacity"`
	BlockSize int       `yaml:"block_size"`
	Mode      string    `yaml:"mode"`
	Backing   string    `yaml:"backing"`
	Log       LogConfig `yaml:"log"`
}

// LogConfig selects driver logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

const (
	// DefaultCapacity is the data buffer size of DefaultFileConfig.
	DefaultCapacity = 3584

	// DefaultBlockSize is the block size of DefaultFileConfig. Memory keeps
	// one payload per block and needs blocks that own their check codes.
	DefaultBlockSize = 7
)

// DefaultFileConfig returns 512 blocks of 7 bytes with Hamming decoding on
// the heap.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Capacity:  DefaultCapacity,
		BlockSize: DefaultBlockSize,
		Mode:      ecc.ModeHamming.String(),
		Backing:   membuf.KindHeap.String(),
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("eccmem: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultFileConfig. Unknown keys are rejected.
func ParseConfig(data []byte) (FileConfig, error) {
	cfg := DefaultFileConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return FileConfig{}, fmt.Errorf("eccmem: parse config: %w", err)
	}
	return cfg, nil
}

// RegionConfig converts the file format into a validated region.Config.
// Block sizes that are not a multiple of 7 bytes are rejected with
// region.ErrUnaligned. Logger and Observer are left for the caller to set.
func (c FileConfig) RegionConfig() (region.Config, error) {
	mode, err := ecc.ParseMode(c.Mode)
	if err != nil {
		return region.Config{}, fmt.Errorf("%w: %w", region.ErrInvalidConfig, err)
	}
	backing, err := membuf.ParseKind(c.Backing)
	if err != nil {
		return region.Config{}, fmt.Errorf("%w: %w", region.ErrInvalidConfig, err)
	}
	rc := region.Config{
		Capacity:  c.Capacity,
		BlockSize: c.BlockSize,
		Mode:      mode,
		Backing:   backing,
	}
	if err := validate(rc); err != nil {
		return region.Config{}, err
	}
	return rc, nil
}
