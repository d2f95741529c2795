// Package cli provides the interactive command-line interface for Daybook.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"daybook/local-app/src/pkg/model"
	"daybook/local-app/src/pkg/session"
)

// CLI represents the command-line interface
type CLI struct {
	sessionManager *session.SessionManager
	rl             *readline.Instance
	logger         *zap.Logger
}

// NewCLI creates a new CLI instance with line editing and persistent history.
func NewCLI(sessionManager *session.SessionManager, cfg *model.Config, logger *zap.Logger) (*CLI, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &CLI{
		sessionManager: sessionManager,
		rl:             rl,
		logger:         logger,
	}, nil
}

// Run starts the CLI and handles user input until exit or EOF.
func (c *CLI) Run() error {
	fmt.Println("Welcome to Daybook!")
	fmt.Println("Type 'help' for a list of commands or 'exit' to quit.")

	defer func() {
		if err := c.rl.Close(); err != nil {
			c.logger.Warn("Error closing readline", zap.Error(err))
		}
	}()

	for {
		c.rl.SetPrompt(c.prompt())

		line, err := c.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := ParseArgs(line)
		switch args[0] {
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return nil
		case "help":
			c.printHelp(args[1:])
			continue
		}

		cmd, err := parseCommand(args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		// system scope is handled here, not by the session layer
		if cmd.Scope == "system" {
			if cmd.Operation == "exit" || cmd.Operation == "quit" {
				fmt.Println("Goodbye!")
				return nil
			}
			fmt.Printf("Error: invalid operation '%s' for scope 'system'\n", cmd.Operation)
			continue
		}

		result, err := c.sessionManager.CommandRun(cmd)
		if err != nil {
			if err == session.ErrLoginRequired {
				fmt.Println("Please log in first ('auth login' or 'auth register').")
				continue
			}
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if result != nil {
			fmt.Printf("%v\n", result)
		}
	}

	return nil
}

// Stop closes the readline instance, unblocking the main loop.
func (c *CLI) Stop() {
	if err := c.rl.Close(); err != nil {
		c.logger.Warn("Error closing readline", zap.Error(err))
	}
}

// prompt reflects the session state: the username when logged in.
func (c *CLI) prompt() string {
	state := c.sessionManager.Current()
	if state.IsAuthenticated && state.User != nil {
		return fmt.Sprintf("%s> ", state.User.Username)
	}
	return "> "
}

// ParseArgs splits input into arguments, honoring double quotes.
func ParseArgs(input string) []string {
	var args []string
	var currentArg strings.Builder
	inQuotes := false

	for _, char := range input {
		switch char {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes {
				if currentArg.Len() > 0 {
					args = append(args, currentArg.String())
					currentArg.Reset()
				}
			} else {
				currentArg.WriteRune(char)
			}
		default:
			currentArg.WriteRune(char)
		}
	}

	if currentArg.Len() > 0 {
		args = append(args, currentArg.String())
	}

	return args
}

// parseCommand turns parsed arguments into a model.Command.
func parseCommand(args []string) (model.Command, error) {
	if len(args) == 0 {
		return model.Command{}, fmt.Errorf("empty command")
	}

	cmd := model.Command{
		Scope:     strings.ToLower(args[0]),
		Operation: "",
		Args:      []string{},
	}
	if len(args) > 1 {
		cmd.Operation = strings.ToLower(args[1])
		cmd.Args = args[2:]
	}

	return cmd, nil
}
