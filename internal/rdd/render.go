package rdd

import (
	"fmt"

	"github.com/alessio/shellescape"
)

// DefaultProgram is the executable name placed at the start of a command.
const DefaultProgram = "rdd"

// Style selects the flag spelling of a rendered command.
type Style int

const (
	Short Style = iota
	Long
)

// String returns short or long.
func (s Style) String() string {
	if s == Long {
		return "long"
	}
	return "short"
}

// field identifies a flag in canonical rendering order.
type field int

const (
	fieldClient field = iota
	fieldServer
	fieldVerbose
	fieldProgress
	fieldMD5
	fieldSHA1
	fieldBlockSize
	fieldMinBlockSize
	fieldMaxErrors
	fieldOffset
	fieldCount
	fieldPort
	fieldLogFile
	numFields
)

// Parallel flag tables indexed by field, spelled as rdd itself accepts them.
var (
	shortFlags = [numFields]string{
		fieldClient:       "-C",
		fieldServer:       "-S",
		fieldVerbose:      "-v",
		fieldProgress:     "-P",
		fieldMD5:          "--md5",
		fieldSHA1:         "--sha",
		fieldBlockSize:    "-b",
		fieldMinBlockSize: "-m",
		fieldMaxErrors:    "-M",
		fieldOffset:       "-o",
		fieldCount:        "-c",
		fieldPort:         "-p",
		fieldLogFile:      "-l",
	}
	longFlags = [numFields]string{
		fieldClient:       "--client",
		fieldServer:       "--server",
		fieldVerbose:      "--verbose",
		fieldProgress:     "--progress",
		fieldMD5:          "--md5",
		fieldSHA1:         "--sha1",
		fieldBlockSize:    "--block-size",
		fieldMinBlockSize: "--min-block-size",
		fieldMaxErrors:    "--max-read-err",
		fieldOffset:       "--offset",
		fieldCount:        "--count",
		fieldPort:         "--port",
		fieldLogFile:      "--log-file",
	}
)

// Option is one flag of a rendered command. Value is empty for bare flags.
type Option struct {
	Flag  string
	Value string
}

// Command is a rendered rdd invocation.
type Command struct {
	Program string
	Options []Option
	Args    []string
}

// Len returns the number of populated fields in the command.
func (c Command) Len() int {
	return len(c.Options) + len(c.Args)
}

// Argv returns the command's arguments, excluding the program name.
func (c Command) Argv() []string {
	argv := make([]string, 0, 2*len(c.Options)+len(c.Args))
	for _, o := range c.Options {
		argv = append(argv, o.Flag)
		if o.Value != "" {
			argv = append(argv, o.Value)
		}
	}
	return append(argv, c.Args...)
}

// String joins the program and its arguments with single spaces, quoting
// any word a POSIX shell would split or expand.
func (c Command) String() string {
	return shellescape.QuoteCommand(append([]string{c.Program}, c.Argv()...))
}

type entry struct {
	field field
	value string
}

// entries lists the populated flags of c in canonical order.
func (c Configuration) entries() []entry {
	var es []entry
	add := func(f field, v string) {
		es = append(es, entry{f, v})
	}
	addIf := func(f field, v string) {
		if v != "" {
			add(f, v)
		}
	}

	switch c.Mode {
	case Client:
		add(fieldClient, "")
	case Server:
		add(fieldServer, "")
	}
	if c.Verbose {
		add(fieldVerbose, "")
	}
	addIf(fieldProgress, c.Progress)
	if c.Hash.Has(HashMD5) {
		add(fieldMD5, "")
	}
	if c.Hash.Has(HashSHA1) {
		add(fieldSHA1, "")
	}
	addIf(fieldBlockSize, c.BlockSize)
	addIf(fieldMinBlockSize, c.MinBlockSize)
	addIf(fieldMaxErrors, c.MaxErrors)
	addIf(fieldOffset, c.Offset)
	addIf(fieldCount, c.Count)
	addIf(fieldPort, c.Port)
	addIf(fieldLogFile, c.LogFile)
	return es
}

// positionals returns the source and destination arguments. The destination
// is prefixed by host: when a host is set. Without a destination nothing is
// emitted for it, host included.
func (c Configuration) positionals() []string {
	var args []string
	if c.Source != "" {
		args = append(args, c.Source)
	}
	if c.Destination != "" {
		if c.Host != "" {
			args = append(args, fmt.Sprintf("%s:%s", c.Host, c.Destination))
		} else {
			args = append(args, c.Destination)
		}
	}
	return args
}

// RenderStyle renders c with the flag spelling of style.
func RenderStyle(c Configuration, program string, style Style) Command {
	if program == "" {
		program = DefaultProgram
	}

	table := &shortFlags
	if style == Long {
		table = &longFlags
	}

	es := c.entries()
	cmd := Command{
		Program: program,
		Options: make([]Option, len(es)),
		Args:    c.positionals(),
	}
	for i, e := range es {
		cmd.Options[i] = Option{Flag: table[e.field], Value: e.value}
	}
	return cmd
}

// Render renders c in both spellings. The two commands always have the same
// fields in the same order and differ only in flag text.
func Render(c Configuration, program string) (short, long Command) {
	return RenderStyle(c, program, Short), RenderStyle(c, program, Long)
}
