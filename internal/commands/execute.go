package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Ask      func(AskArgs) (Result, error)
	Complete func(TodoArgs) (Result, error)
	Reopen   func(TodoArgs) (Result, error)
	Read     func(ReadArgs) (Result, error)
	ReadAll  func() (Result, error)
	Review   func(ReviewArgs) (Result, error)
	Focus    func(FocusArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAsk:
		if handlers.Ask == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "ask handler not configured"}
		}
		return handlers.Ask(*cmd.Ask)
	case TypeComplete:
		if handlers.Complete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "complete handler not configured"}
		}
		return handlers.Complete(*cmd.Todo)
	case TypeReopen:
		if handlers.Reopen == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reopen handler not configured"}
		}
		return handlers.Reopen(*cmd.Todo)
	case TypeRead:
		if handlers.Read == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "read handler not configured"}
		}
		return handlers.Read(*cmd.Read)
	case TypeReadAll:
		if handlers.ReadAll == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "read-all handler not configured"}
		}
		return handlers.ReadAll()
	case TypeReview:
		if handlers.Review == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "review handler not configured"}
		}
		return handlers.Review(*cmd.Review)
	case TypeFocus:
		if handlers.Focus == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "focus handler not configured"}
		}
		return handlers.Focus(*cmd.Focus)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
