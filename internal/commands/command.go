package commands

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeRename Type = "rename"
	TypeDelete Type = "delete"
	TypeReload Type = "reload"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title string
}

// RenameArgs and DeleteArgs address rows by their 1-based display position.
type RenameArgs struct {
	Row   int
	Title string
}

type DeleteArgs struct {
	Row int
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Rename *RenameArgs
	Delete *DeleteArgs
}

// Parse reads a palette command. Titles are taken as typed after the verb
// (and row) tokens, so interior and trailing spaces survive.
func Parse(input string) (Command, error) {
	raw := strings.TrimPrefix(strings.TrimLeftFunc(input, unicode.IsSpace), "/")
	verb, rest := nextToken(raw)
	if verb == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head := strings.ToLower(verb)
	switch Type(head) {
	case TypeAdd, "new":
		return parseAdd(input, rest)
	case TypeRename, "edit":
		return parseRename(input, rest)
	case TypeDelete, "rm":
		return parseDelete(input, rest)
	case TypeReload:
		return Command{Type: TypeReload, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// nextToken splits off the first whitespace-delimited token. rest starts at
// the first non-space character after it and is otherwise untouched.
func nextToken(s string) (token, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], strings.TrimLeftFunc(s[end:], unicode.IsSpace)
}

func parseAdd(raw, title string) (Command, error) {
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseRename(raw, rest string) (Command, error) {
	rowToken, title := nextToken(rest)
	if rowToken == "" || title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires a row and a title"}
	}
	row, err := parseRow(rowToken)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeRename, Raw: raw, Rename: &RenameArgs{Row: row, Title: title}}, nil
}

func parseDelete(raw, rest string) (Command, error) {
	rowToken, extra := nextToken(rest)
	if rowToken == "" || extra != "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete requires exactly one row"}
	}
	row, err := parseRow(rowToken)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{Row: row}}, nil
}

func parseRow(s string) (int, error) {
	row, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil || row < 1 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid row: %s", s)}
	}
	return row, nil
}
