package commands

import (
	"errors"
	"testing"
)

func TestParseAsk(t *testing.T) {
	cmd, err := Parse("/ask what should I work on today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Type != TypeAsk {
		t.Fatalf("expected ask command, got %q", cmd.Type)
	}
	if cmd.Ask == nil || cmd.Ask.Prompt != "what should I work on today" {
		t.Fatalf("unexpected ask args: %+v", cmd.Ask)
	}
}

func TestParseTodoCommands(t *testing.T) {
	cmd, err := Parse("complete 12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Type != TypeComplete || cmd.Todo == nil || cmd.Todo.ID != 12 {
		t.Fatalf("unexpected command: %+v", cmd)
	}

	cmd, err = Parse("reopen 7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Type != TypeReopen || cmd.Todo.ID != 7 {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestParseFocus(t *testing.T) {
	cmd, err := Parse("focus on")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Focus == nil || !cmd.Focus.Enabled {
		t.Fatalf("expected focus on, got %+v", cmd.Focus)
	}

	cmd, err = Parse("focus off")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Focus.Enabled {
		t.Fatalf("expected focus off, got %+v", cmd.Focus)
	}

	if _, err := Parse("focus maybe"); err == nil {
		t.Fatal("expected error for invalid focus argument")
	}
}

func TestParseErrors(t *testing.T) {
	var cmdErr *CommandError

	_, err := Parse("   ")
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty_input, got %v", err)
	}

	_, err = Parse("launch rockets")
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown_command, got %v", err)
	}

	_, err = Parse("review abc")
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}

	_, err = Parse("complete")
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument for missing id, got %v", err)
	}
}

func TestExecuteRoutesToHandlers(t *testing.T) {
	var completed int64
	handlers := Handlers{
		Complete: func(args TodoArgs) (Result, error) {
			completed = args.ID
			return Result{Message: "done"}, nil
		},
	}

	cmd, err := Parse("complete 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := Execute(cmd, handlers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "done" || completed != 3 {
		t.Fatalf("handler not invoked correctly: res=%+v completed=%d", res, completed)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("read-all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got %v", err)
	}
}
