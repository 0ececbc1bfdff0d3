package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// maxLineSize bounds one stdio request line (a digest response easily
// exceeds bufio's 64K default).
const maxLineSize = 4 * 1024 * 1024

// ServeStdio runs the newline-delimited JSON-RPC loop until the input
// stream closes. Only protocol JSON is ever written to out; logging goes to
// the default slog handler (stderr).
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			slog.Debug("Malformed request line", "error", err)
			parseErr := &Response{
				JSONRPC: "2.0",
				Error: &ErrorObject{
					Code:    ParseError,
					Message: "Failed to parse request",
				},
			}
			if err := encoder.Encode(parseErr); err != nil {
				return fmt.Errorf("failed to write parse error response: %w", err)
			}
			continue
		}

		resp := s.HandleRequest(ctx, &req)
		if resp == nil {
			continue
		}

		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request stream: %w", err)
	}
	return nil
}
