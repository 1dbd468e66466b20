package cli

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"todo/internal/errors"
)

// CommandKind classifies a parsed input line
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandAdd
	CommandList
	CommandComplete
	CommandQuit
	CommandInvalid
)

// Command keywords, compared after Unicode case folding.
const (
	keywordAdd  = "add"
	keywordList = "list"
	keywordDone = "done"
	keywordQuit = "quit"
)

const reasonNotANumber = "not a number"

// String returns the command kind name used in debug output
func (k CommandKind) String() string {
	switch k {
	case CommandAdd:
		return "add"
	case CommandList:
		return "list"
	case CommandComplete:
		return "complete"
	case CommandQuit:
		return "quit"
	case CommandInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Command is the parsed form of one input line.
// Text holds the description for Add and the trimmed line for Unknown;
// ID is set for Complete; Reason and Text (the raw argument) are set for Invalid.
type Command struct {
	Kind   CommandKind
	Text   string
	ID     uint64
	Reason string
}

// Err returns the rejection error for Invalid and Unknown commands, nil otherwise
func (c Command) Err() error {
	switch c.Kind {
	case CommandInvalid:
		return errors.NewInvalidIDError(c.Text, c.Reason)
	case CommandUnknown:
		return errors.NewUnknownCommandError(c.Text)
	default:
		return nil
	}
}

// Parse turns one line of input into a Command. The keyword is matched
// case-insensitively; the argument keeps its case. Every line yields a Command.
func Parse(line string) Command {
	trimmed := strings.TrimSpace(line)
	keyword, rest := splitKeyword(trimmed)

	switch cases.Fold().String(keyword) {
	case keywordQuit:
		return Command{Kind: CommandQuit}
	case keywordList:
		return Command{Kind: CommandList}
	case keywordAdd:
		return Command{Kind: CommandAdd, Text: rest}
	case keywordDone:
		id, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return Command{Kind: CommandInvalid, Text: rest, Reason: reasonNotANumber}
		}
		return Command{Kind: CommandComplete, ID: id}
	default:
		return Command{Kind: CommandUnknown, Text: trimmed}
	}
}

// splitKeyword returns the first whitespace-delimited token and the trimmed remainder
func splitKeyword(s string) (keyword, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
