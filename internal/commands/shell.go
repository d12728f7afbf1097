package commands

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/xhamera1/Hotel-app/internal/utils"
	"go.uber.org/zap"
)

// Shell reads command names from a port and runs them
type Shell struct {
	registry *Registry
	port     *Port
	logger   *zap.Logger
}

// NewShell creates a shell
func NewShell(registry *Registry, port *Port, logger *zap.Logger) *Shell {
	return &Shell{registry: registry, port: port, logger: logger}
}

// Run prompts for commands until exit, end of input or ctx is done
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		input, err := s.port.Prompt("Enter command: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed, leaving shell")
				return nil
			}
			return err
		}

		name := strings.ToLower(input)
		if name == "" {
			continue
		}

		command, ok := s.registry.Lookup(name)
		if !ok {
			s.logger.Debug("Unknown command", zap.String("input", utils.SanitizeLogString(input)))
			s.port.Println("Invalid command")
			continue
		}

		if !command(ctx, s.port) {
			return nil
		}
	}
}
