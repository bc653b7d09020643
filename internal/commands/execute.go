package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Toggle  func(RefArgs) (Result, error)
	Delete  func(RefArgs) (Result, error)
	NoDue   func(RefArgs) (Result, error)
	Plant   func(PlantArgs) (Result, error)
	Reset   func() (Result, error)
	Chore   func(ChoreArgs) (Result, error)
	History func(HistoryArgs) (Result, error)
	Help    func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeToggle:
		if handlers.Toggle == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Toggle(*cmd.Ref)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Delete(*cmd.Ref)
	case TypeNoDue:
		if handlers.NoDue == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.NoDue(*cmd.Ref)
	case TypePlant:
		if handlers.Plant == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Plant(*cmd.Plant)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Reset()
	case TypeChore:
		if handlers.Chore == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Chore(*cmd.Chore)
	case TypeHistory:
		if handlers.History == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.History(*cmd.History)
	case TypeHelp:
		if handlers.Help == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Help()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
