// Package rdd models an rdd invocation assembled by the wizard and renders
// it as abbreviated and verbose command lines.
package rdd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/rddi/internal/prompt"
)

// Mode selects whether rdd copies locally, sends over the network or
// receives from the network.
type Mode int

const (
	Local Mode = iota
	Client
	Server
)

// Modes lists the mode names accepted by ParseMode.
var Modes = []string{"local", "client", "server"}

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Local:
		return "local"
	case Client:
		return "client"
	case Server:
		return "server"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local", "":
		return Local, nil
	case "client":
		return Client, nil
	case "server":
		return Server, nil
	default:
		return Local, fmt.Errorf("invalid mode: %s", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Hash is the set of hash algorithms rdd computes over the data.
type Hash uint8

const (
	HashMD5 Hash = 1 << iota
	HashSHA1

	HashNone Hash = 0
	HashBoth      = HashMD5 | HashSHA1
)

// Has reports whether h includes every algorithm in alg.
func (h Hash) Has(alg Hash) bool {
	return h&alg == alg
}

// String returns none, md5, sha1 or both.
func (h Hash) String() string {
	switch h {
	case HashNone:
		return "none"
	case HashMD5:
		return "md5"
	case HashSHA1:
		return "sha1"
	case HashBoth:
		return "both"
	default:
		return fmt.Sprintf("hash(%d)", uint8(h))
	}
}

// ParseHash parses none, md5, sha1 or both, ignoring case.
func ParseHash(s string) (Hash, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return HashNone, nil
	case "md5":
		return HashMD5, nil
	case "sha1":
		return HashSHA1, nil
	case "both":
		return HashBoth, nil
	default:
		return HashNone, fmt.Errorf("invalid hash selection: %s", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(b []byte) error {
	v, err := ParseHash(string(b))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// Configuration holds the answers of one wizard session. String fields are
// unset when empty.
type Configuration struct {
	Mode         Mode   `yaml:"mode"`
	Verbose      bool   `yaml:"verbose"`
	Progress     string `yaml:"progress,omitempty"`
	Hash         Hash   `yaml:"hash"`
	Source       string `yaml:"source,omitempty"`
	Host         string `yaml:"host,omitempty"`
	Destination  string `yaml:"destination,omitempty"`
	LogFile      string `yaml:"log_file,omitempty"`
	BlockSize    string `yaml:"block_size,omitempty"`
	MinBlockSize string `yaml:"min_block_size,omitempty"`
	MaxErrors    string `yaml:"max_errors,omitempty"`
	Offset       string `yaml:"offset,omitempty"`
	Count        string `yaml:"count,omitempty"`
	Port         string `yaml:"port,omitempty"`
}

// Recovery reports whether recovery options were chosen.
func (c Configuration) Recovery() bool {
	return c.MinBlockSize != "" || c.MaxErrors != ""
}

// Sliced reports whether a sub-range of the input was selected.
func (c Configuration) Sliced() bool {
	return c.Offset != "" || c.Count != ""
}

// Validation errors.
var (
	ErrPartialSlice    = errors.New("offset and count must be set together")
	ErrPartialRecovery = errors.New("minimum block size and maximum errors must be set together")
	ErrPortMode        = errors.New("port is set only in client and server mode")
	ErrHostMode        = errors.New("destination host is set only in client mode")
	ErrSourceMode      = errors.New("source is required unless in server mode")
	ErrServerField     = errors.New("field is not used in server mode")
	ErrFieldFormat     = errors.New("malformed field")
)

// Validate checks that every set field is an answer the wizard would accept
// and that the cross-field invariants hold. It returns every violation found.
func (c Configuration) Validate() error {
	errs := c.fieldErrors()

	if (c.Offset == "") != (c.Count == "") {
		errs = append(errs, ErrPartialSlice)
	}
	if (c.MinBlockSize == "") != (c.MaxErrors == "") {
		errs = append(errs, ErrPartialRecovery)
	}

	networked := c.Mode == Client || c.Mode == Server
	if networked != (c.Port != "") {
		errs = append(errs, fmt.Errorf("%w (mode %s)", ErrPortMode, c.Mode))
	}
	if (c.Mode == Client) != (c.Host != "") {
		errs = append(errs, fmt.Errorf("%w (mode %s)", ErrHostMode, c.Mode))
	}

	if c.Mode == Server {
		for _, f := range []struct{ name, value string }{
			{"source", c.Source},
			{"destination", c.Destination},
			{"block_size", c.BlockSize},
			{"min_block_size", c.MinBlockSize},
			{"max_errors", c.MaxErrors},
			{"offset", c.Offset},
			{"count", c.Count},
		} {
			if f.value != "" {
				errs = append(errs, fmt.Errorf("%w: %s", ErrServerField, f.name))
			}
		}
	} else if c.Source == "" {
		errs = append(errs, ErrSourceMode)
	}

	return errors.Join(errs...)
}

// fieldErrors checks numeric and size fields against the wizard's answer
// patterns. Unset fields are skipped.
func (c Configuration) fieldErrors() []error {
	number := prompt.Match(prompt.NumberPattern)
	size := prompt.Match(prompt.SizePattern)

	var errs []error
	for _, f := range []struct {
		name, value string
		c           prompt.Constraint
	}{
		{"progress", c.Progress, number},
		{"port", c.Port, number},
		{"max_errors", c.MaxErrors, number},
		{"block_size", c.BlockSize, size},
		{"min_block_size", c.MinBlockSize, size},
		{"offset", c.Offset, size},
		{"count", c.Count, size},
	} {
		if f.value == "" {
			continue
		}
		if _, ok := f.c.Accept(f.value); !ok {
			errs = append(errs, fmt.Errorf("%w: %s %q", ErrFieldFormat, f.name, f.value))
		}
	}
	return errs
}
