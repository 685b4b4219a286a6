package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"hedgeview/pkg/logging"

	"github.com/chzyer/readline"
	"github.com/mark3labs/mcp-go/mcp"
)

const replSubsystem = "REPL"

var errExit = errors.New("exit")

// REPL reads tool calls line by line: "<tool> key=value ...".
type REPL struct {
	executor *ToolExecutor
	tools    []mcp.Tool
	out      io.Writer
}

// NewREPL creates a REPL over the given tools. Output of calls goes through
// executor; help and tool listings go to out.
func NewREPL(executor *ToolExecutor, tools []mcp.Tool, out io.Writer) *REPL {
	sorted := append([]mcp.Tool(nil), tools...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &REPL{
		executor: executor,
		tools:    sorted,
		out:      out,
	}
}

// Run starts the loop and returns on exit, EOF or ctx cancellation.
func (r *REPL) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              "hedgeview> ",
		HistoryFile:         filepath.Join(os.TempDir(), ".hedgeview_history"),
		AutoComplete:        r.completer(),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(r.out, "Type 'help' for available commands. Use TAB for completion.")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		if err := r.ExecuteLine(ctx, line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			logging.Error(replSubsystem, err, "Command failed")
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
	}
}

// ExecuteLine runs one REPL command. It returns errExit for exit and quit.
func (r *REPL) ExecuteLine(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "exit", "quit":
		return errExit
	case "help", "?":
		r.printHelp()
		return nil
	case "tools":
		r.printTools()
		return nil
	}

	tool := FindTool(r.tools, fields[0])
	if tool == nil {
		return fmt.Errorf("unknown tool %q, type 'tools' to list them", fields[0])
	}
	args, err := ParseToolArgs(fields[1:], tool)
	if err != nil {
		return err
	}
	return r.executor.Execute(ctx, fields[0], args)
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, "Commands:")
	fmt.Fprintln(r.out, "  <tool> [key=value...]  call a tool")
	fmt.Fprintln(r.out, "  tools                  list the available tools")
	fmt.Fprintln(r.out, "  help                   show this help")
	fmt.Fprintln(r.out, "  exit, quit             leave")
}

func (r *REPL) printTools() {
	for _, t := range r.tools {
		fmt.Fprintf(r.out, "%-16s %s\n", t.Name, t.Description)
	}
}

func (r *REPL) completer() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("tools"),
		readline.PcItem("exit"),
	}
	for _, t := range r.tools {
		var params []readline.PrefixCompleterInterface
		for name := range t.InputSchema.Properties {
			params = append(params, readline.PcItem(name+"="))
		}
		items = append(items, readline.PcItem(t.Name, params...))
	}
	return readline.NewPrefixCompleter(items...)
}

// filterInput blocks ctrl+z, which would suspend the process mid-line.
func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
