// Package wizard walks the operator through the rdd questions, branching on
// the chosen mode, and assembles an rdd.Configuration.
package wizard

import (
	"fmt"

	"github.com/mark3labs/rddi/internal/logger"
	"github.com/mark3labs/rddi/internal/question"
	"github.com/mark3labs/rddi/internal/rdd"
)

// Asker asks typed questions. *prompt.Asker implements it.
type Asker interface {
	AskChoice(id string, tokens []string, def string) (string, error)
	AskYesNo(id string, def bool) (bool, error)
	AskNumber(id, def string) (string, error)
	AskSize(id, def string) (string, error)
	AskFile(id, def string) (string, error)
	AskOptionalFile(id, def string) (string, error)
}

// Defaults are the answers offered when the operator presses enter.
type Defaults struct {
	Port         string
	Interval     string
	BlockSize    string
	MinBlockSize string
	MaxErrors    string
	LogFile      string
	Host         string
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		Port:         "4832",
		Interval:     "5",
		BlockSize:    "512k",
		MinBlockSize: "512",
		MaxErrors:    "0",
		Host:         "localhost",
	}
}

// State is a point in the question flow.
type State int

const (
	Start State = iota
	ModeSelected
	HashChosen
	PathsChosen
	RecoveryChosen
	SliceChosen
	Ready
)

var stateNames = [...]string{
	Start:          "start",
	ModeSelected:   "mode-selected",
	HashChosen:     "hash-chosen",
	PathsChosen:    "paths-chosen",
	RecoveryChosen: "recovery-chosen",
	SliceChosen:    "slice-chosen",
	Ready:          "ready",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Session is a single pass through the questions.
type Session struct {
	asker    Asker
	defaults Defaults

	cfg   rdd.Configuration
	trace []State
}

// NewSession creates a session that asks questions through a.
func NewSession(a Asker, d Defaults) *Session {
	if d.Host == "" {
		d.Host = "localhost"
	}
	return &Session{asker: a, defaults: d}
}

// Run asks every question the chosen mode needs and returns the resulting
// configuration. A session may be run again; each run starts empty.
func (s *Session) Run() (rdd.Configuration, error) {
	s.cfg = rdd.Configuration{}
	s.trace = []State{Start}

	state := Start
	for state != Ready {
		next, err := s.step(state)
		if err != nil {
			return rdd.Configuration{}, fmt.Errorf("wizard %s: %w", state, err)
		}
		logger.Debug("wizard: %s -> %s", state, next)
		state = next
		s.trace = append(s.trace, state)
	}

	logger.Info("wizard: %s configuration complete", s.cfg.Mode)
	return s.cfg, nil
}

// Trace returns the states visited by the last Run, starting with Start.
func (s *Session) Trace() []State {
	return append([]State(nil), s.trace...)
}

func (s *Session) step(state State) (State, error) {
	switch state {
	case Start:
		return ModeSelected, s.askBasics()
	case ModeSelected:
		return HashChosen, s.askHash()
	case HashChosen:
		return PathsChosen, s.askPaths()
	case PathsChosen:
		if s.cfg.Mode == rdd.Server {
			return Ready, nil
		}
		return RecoveryChosen, s.askRecovery()
	case RecoveryChosen:
		return SliceChosen, s.askSlice()
	case SliceChosen:
		return Ready, nil
	default:
		return state, fmt.Errorf("no transition from %s", state)
	}
}

func (s *Session) askBasics() error {
	m, err := s.asker.AskChoice(question.Mode, rdd.Modes, rdd.Local.String())
	if err != nil {
		return err
	}
	if s.cfg.Mode, err = rdd.ParseMode(m); err != nil {
		return err
	}

	if s.cfg.Verbose, err = s.asker.AskYesNo(question.Verbose, false); err != nil {
		return err
	}
	s.cfg.Progress, err = s.asker.AskNumber(question.Progress, s.defaults.Interval)
	return err
}

// askHash defaults sha1 to yes only when md5 was declined, nudging towards
// at least one algorithm without requiring it.
func (s *Session) askHash() error {
	want, err := s.asker.AskYesNo(question.Hash, true)
	if err != nil || !want {
		return err
	}

	md5, err := s.asker.AskYesNo(question.MD5, true)
	if err != nil {
		return err
	}
	sha1, err := s.asker.AskYesNo(question.SHA1, !md5)
	if err != nil {
		return err
	}

	if md5 {
		s.cfg.Hash |= rdd.HashMD5
	}
	if sha1 {
		s.cfg.Hash |= rdd.HashSHA1
	}
	return nil
}

func (s *Session) askPaths() error {
	var err error
	c := &s.cfg

	if c.Mode == rdd.Server {
		if c.Port, err = s.asker.AskNumber(question.Port, s.defaults.Port); err != nil {
			return err
		}
		c.LogFile, err = s.asker.AskOptionalFile(question.LogFile, s.defaults.LogFile)
		return err
	}

	if c.Source, err = s.asker.AskFile(question.Source, ""); err != nil {
		return err
	}
	if c.Mode == rdd.Client {
		if c.Host, err = s.asker.AskFile(question.DestHost, s.defaults.Host); err != nil {
			return err
		}
		if c.Port, err = s.asker.AskNumber(question.Port, s.defaults.Port); err != nil {
			return err
		}
	}
	if c.Destination, err = s.asker.AskOptionalFile(question.DestFile, ""); err != nil {
		return err
	}
	if c.LogFile, err = s.asker.AskOptionalFile(question.LogFile, s.defaults.LogFile); err != nil {
		return err
	}
	c.BlockSize, err = s.asker.AskSize(question.BlockSize, s.defaults.BlockSize)
	return err
}

func (s *Session) askRecovery() error {
	custom, err := s.asker.AskYesNo(question.Recover, false)
	if err != nil || !custom {
		return err
	}
	if s.cfg.MinBlockSize, err = s.asker.AskSize(question.MinBlockSize, s.defaults.MinBlockSize); err != nil {
		return err
	}
	s.cfg.MaxErrors, err = s.asker.AskNumber(question.MaxErrors, s.defaults.MaxErrors)
	return err
}

func (s *Session) askSlice() error {
	whole, err := s.asker.AskYesNo(question.Slice, true)
	if err != nil || whole {
		return err
	}
	if s.cfg.Offset, err = s.asker.AskSize(question.Offset, ""); err != nil {
		return err
	}
	s.cfg.Count, err = s.asker.AskSize(question.Count, "")
	return err
}
