package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAsk      Type = "ask"
	TypeComplete Type = "complete"
	TypeReopen   Type = "reopen"
	TypeRead     Type = "read"
	TypeReadAll  Type = "read-all"
	TypeReview   Type = "review"
	TypeFocus    Type = "focus"
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

type AskArgs struct {
	Prompt string
}

type TodoArgs struct {
	ID int64
}

type ReadArgs struct {
	ID int64
}

type ReviewArgs struct {
	ID int64
}

type FocusArgs struct {
	Enabled bool
}

type Command struct {
	Type   Type
	Raw    string
	Ask    *AskArgs
	Todo   *TodoArgs
	Read   *ReadArgs
	Review *ReviewArgs
	Focus  *FocusArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAsk:
		return parseAsk(input, args)
	case TypeComplete, TypeReopen:
		return parseTodo(Type(head), input, args)
	case TypeRead:
		id, err := parseID(args, "read requires a notification id")
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeRead, Raw: input, Read: &ReadArgs{ID: id}}, nil
	case TypeReadAll:
		return Command{Type: TypeReadAll, Raw: input}, nil
	case TypeReview:
		id, err := parseID(args, "review requires a digest id")
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeReview, Raw: input, Review: &ReviewArgs{ID: id}}, nil
	case TypeFocus:
		return parseFocus(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAsk(raw string, args []string) (Command, error) {
	prompt := strings.TrimSpace(strings.Join(args, " "))
	if prompt == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "ask requires a prompt"}
	}
	return Command{Type: TypeAsk, Raw: raw, Ask: &AskArgs{Prompt: prompt}}, nil
}

func parseTodo(t Type, raw string, args []string) (Command, error) {
	id, err := parseID(args, fmt.Sprintf("%s requires a todo id", t))
	if err != nil {
		return Command{}, err
	}
	return Command{Type: t, Raw: raw, Todo: &TodoArgs{ID: id}}, nil
}

func parseFocus(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "focus requires on or off"}
	}
	switch strings.ToLower(args[0]) {
	case "on":
		return Command{Type: TypeFocus, Raw: raw, Focus: &FocusArgs{Enabled: true}}, nil
	case "off":
		return Command{Type: TypeFocus, Raw: raw, Focus: &FocusArgs{Enabled: false}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("focus expects on or off, got %q", args[0])}
	}
}

func parseID(args []string, missing string) (int64, error) {
	if len(args) == 0 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: missing}
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid id: %s", args[0])}
	}
	return id, nil
}
