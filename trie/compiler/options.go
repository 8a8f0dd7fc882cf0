package compiler

import (
	"github.com/sirupsen/logrus"

	"github.com/joshuapare/entitytrie/trie/layout"
)

// Default file names, matching the generator this tool replaces.
const (
	DefaultSource         = "entities.json"
	DefaultOutput         = "trie_little_endian.bin"
	DefaultFixture        = "all_entities_test.go"
	DefaultFixturePackage = "entities"
)

// Options configures Compile.
type Options struct {
	// Layout configures node encoding.
	// Default: layout.DefaultOptions()
	Layout layout.Options

	// Verify runs the structural and round-trip checks on the result.
	// Default: true
	Verify bool

	// Logger receives progress and statistics.
	// Default: logrus standard logger tagged component=compiler
	Logger logrus.FieldLogger
}

// DefaultOptions returns the recommended options.
func DefaultOptions() *Options {
	return &Options{
		Layout: layout.DefaultOptions(),
		Verify: true,
		Logger: log,
	}
}

// Config names the files used by CompileFiles.
type Config struct {
	Source         string
	Output         string
	Fixture        string // Empty disables fixture generation
	FixturePackage string
	Options        *Options
}

// DefaultConfig returns the file names used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Source:         DefaultSource,
		Output:         DefaultOutput,
		Fixture:        DefaultFixture,
		FixturePackage: DefaultFixturePackage,
		Options:        DefaultOptions(),
	}
}
