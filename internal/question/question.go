// Package question holds the static registry of wizard questions: the prompt
// shown to the operator and the help text printed on request.
package question

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownQuestion is returned when a question id is not registered.
var ErrUnknownQuestion = errors.New("unknown question")

// Question ids.
const (
	Mode         = "mode"
	Verbose      = "verb"
	Progress     = "progress"
	Hash         = "hash"
	MD5          = "md5"
	SHA1         = "sha1"
	Source       = "source"
	DestHost     = "desthost"
	Port         = "port"
	DestFile     = "destfile"
	LogFile      = "logfile"
	BlockSize    = "blksize"
	Recover      = "recover"
	MinBlockSize = "minblksize"
	MaxErrors    = "maxerr"
	Slice        = "slice"
	Offset       = "offset"
	Count        = "count"
	Run          = "run"
)

// Spec describes one question.
type Spec struct {
	ID     string
	Prompt string
	Help   string
}

var registry = map[string]Spec{
	Mode:         {Mode, modePrompt, modeHelp},
	Verbose:      {Verbose, verbosePrompt, verboseHelp},
	Progress:     {Progress, progressPrompt, progressHelp},
	Hash:         {Hash, hashPrompt, hashHelp},
	MD5:          {MD5, md5Prompt, md5Help},
	SHA1:         {SHA1, sha1Prompt, sha1Help},
	Source:       {Source, sourcePrompt, sourceHelp},
	DestHost:     {DestHost, destHostPrompt, destHostHelp},
	Port:         {Port, portPrompt, portHelp},
	DestFile:     {DestFile, destFilePrompt, destFileHelp},
	LogFile:      {LogFile, logFilePrompt, logFileHelp},
	BlockSize:    {BlockSize, blockSizePrompt, blockSizeHelp + sizeHelp("block size")},
	Recover:      {Recover, recoverPrompt, recoverHelp},
	MinBlockSize: {MinBlockSize, minBlockSizePrompt, minBlockSizeHelp + sizeHelp("block size")},
	MaxErrors:    {MaxErrors, maxErrorsPrompt, maxErrorsHelp},
	Slice:        {Slice, slicePrompt, sliceHelp},
	Offset:       {Offset, offsetPrompt, offsetHelp + sizeHelp("offset")},
	Count:        {Count, countPrompt, countHelp + sizeHelp("count")},
	Run:          {Run, runPrompt, runHelp},
}

// Lookup returns the registered question for id.
func Lookup(id string) (Spec, error) {
	spec, ok := registry[id]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	return spec, nil
}

// MustLookup is like Lookup but panics on an unregistered id.
func MustLookup(id string) Spec {
	spec, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return spec
}

// IDs returns every registered id in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Markdown renders the help for the given questions as a markdown document.
// With no ids, every registered question is included.
func Markdown(ids ...string) (string, error) {
	if len(ids) == 0 {
		ids = IDs()
	}

	var sb strings.Builder
	sb.WriteString("# rdd wizard questions\n")
	for _, id := range ids {
		spec, err := Lookup(id)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "\n## %s\n\n**%s**\n\n%s\n", spec.ID, strings.TrimSpace(spec.Prompt), strings.TrimSpace(spec.Help))
	}
	return sb.String(), nil
}
