package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Rename func(RenameArgs) (Result, error)
	Delete func(DeleteArgs) (Result, error)
	Reload func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeRename:
		if handlers.Rename == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "rename handler not configured"}
		}
		return handlers.Rename(*cmd.Rename)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "delete handler not configured"}
		}
		return handlers.Delete(*cmd.Delete)
	case TypeReload:
		if handlers.Reload == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reload handler not configured"}
		}
		return handlers.Reload()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
