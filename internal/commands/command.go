package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/plantd/internal/model"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeToggle  Type = "toggle"
	TypeDelete  Type = "delete"
	TypeNoDue   Type = "nodue"
	TypePlant   Type = "plant"
	TypeReset   Type = "reset"
	TypeChore   Type = "chore"
	TypeHistory Type = "history"
	TypeHelp    Type = "help"
)

// aliases map short forms onto their command.
var aliases = map[string]Type{
	"done": TypeToggle,
	"rm":   TypeDelete,
	"del":  TypeDelete,
	"?":    TypeHelp,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
	ErrCodeNotFound        ErrorCode = "not_found"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
	Due  string
}

// RefArgs names one task, either by 1-based list position or by id.
type RefArgs struct {
	Ref string
}

type PlantArgs struct {
	PlantID string
}

type ChoreArgs struct {
	Index int
}

type HistoryArgs struct {
	Kind model.EventKind
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Ref     *RefArgs
	Plant   *PlantArgs
	Chore   *ChoreArgs
	History *HistoryArgs
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
	typ := Type(head)
	if alias, ok := aliases[head]; ok {
		typ = alias
	}

	switch typ {
	case TypeAdd:
		return parseAdd(input, strings.TrimSpace(raw[len(parts[0]):]))
	case TypeToggle, TypeDelete, TypeNoDue:
		return parseRef(input, typ, args)
	case TypePlant:
		return parsePlant(input, args)
	case TypeChore:
		return parseChore(input, args)
	case TypeHistory:
		return parseHistory(input, args)
	case TypeReset, TypeHelp:
		return Command{Type: typ, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

var (
	dueToken  = regexp.MustCompile(`(?i)(?:^|\s)due:(\S*)`)
	clockWord = regexp.MustCompile(`^\s+(\d{1,2}:\d{2}(?::\d{2})?)(?:\s|$)`)
)

// parseAdd takes the task text plus an optional due:<value> token anywhere in it.
// A date followed by a separate clock word ("due:2026-05-10 18:30") is one value.
// The text keeps its original spacing.
func parseAdd(raw, body string) (Command, error) {
	due := ""
	text := body
	if loc := dueToken.FindStringSubmatchIndex(body); loc != nil {
		due = body[loc[2]:loc[3]]
		end := loc[1]
		if m := clockWord.FindStringSubmatchIndex(body[end:]); m != nil && isDateOnly(due) {
			due += " " + body[end+m[2]:end+m[3]]
			end += m[3]
		}
		before := strings.TrimRight(body[:loc[0]], " \t")
		after := strings.TrimLeft(body[end:], " \t")
		text = before
		if before != "" && after != "" {
			text += " "
		}
		text += after
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	if due == "" && dueToken.MatchString(body) {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "due: requires a value"}
	}
	if due != "" {
		if _, err := model.ParseDue(due, time.Local); err != nil {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid due value %q", due)}
		}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text, Due: due}}, nil
}

func isDateOnly(v string) bool {
	_, err := time.Parse("2006-01-02", v)
	return err == nil
}

func parseRef(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires one task number or id", typ)}
	}
	return Command{Type: typ, Raw: raw, Ref: &RefArgs{Ref: args[0]}}, nil
}

func parsePlant(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "plant requires a plant id"}
	}
	opt, err := model.LookupPlant(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown plant %q", args[0])}
	}
	return Command{Type: TypePlant, Raw: raw, Plant: &PlantArgs{PlantID: opt.ID}}, nil
}

func parseChore(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("chore requires a number from 1 to %d", len(model.Chores))}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(model.Chores) {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("chore requires a number from 1 to %d", len(model.Chores))}
	}
	return Command{Type: TypeChore, Raw: raw, Chore: &ChoreArgs{Index: n - 1}}, nil
}

var historyKinds = map[string]model.EventKind{
	"added":     model.EventTaskAdded,
	"completed": model.EventTaskCompleted,
	"done":      model.EventTaskCompleted,
	"due":       model.EventTaskDue,
}

func parseHistory(raw string, args []string) (Command, error) {
	out := &HistoryArgs{}
	if len(args) > 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "history takes at most one filter"}
	}
	if len(args) == 1 {
		kind, ok := historyKinds[strings.ToLower(args[0])]
		if !ok {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown history filter %q", args[0])}
		}
		out.Kind = kind
	}
	return Command{Type: TypeHistory, Raw: raw, History: out}, nil
}

// ResolveRef maps a 1-based position or a task id onto a task id.
func ResolveRef(ref string, tasks []model.Task) (string, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(tasks) {
			return "", &CommandError{Code: ErrCodeNotFound, Message: fmt.Sprintf("no task #%d", n)}
		}
		return tasks[n-1].ID, nil
	}
	for _, t := range tasks {
		if t.ID == ref {
			return t.ID, nil
		}
	}
	return "", &CommandError{Code: ErrCodeNotFound, Message: fmt.Sprintf("no task with id %q", ref)}
}
