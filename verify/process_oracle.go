package verify

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// ProcessOracle shells an external solver process speaking SMT-LIB2 over
// stdin/stdout (§4.4, §6: the oracle lives outside the compiler process).
// No SMT binding exists anywhere in the example pack to wrap instead, so a
// plain os/exec subprocess pipe is the only grounded choice; see DESIGN.md.
type ProcessOracle struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
}

// NewProcessOracle starts binary (e.g. "z3") with args (e.g. "-in",
// "-smt2") and leaves it running for the lifetime of the returned Oracle.
func NewProcessOracle(binary string, args ...string) (*ProcessOracle, error) {
	cmd := exec.Command(binary, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("verify: opening solver stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("verify: opening solver stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("verify: starting solver process: %w", err)
	}
	return &ProcessOracle{cmd: cmd, stdin: stdin, stdout: bufio.NewReader(stdout)}, nil
}

func (p *ProcessOracle) Assert(ctx context.Context, smt string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := io.WriteString(p.stdin, smt+"\n")
	return err
}

func (p *ProcessOracle) CheckSat(ctx context.Context) (Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := io.WriteString(p.stdin, "(check-sat)\n"); err != nil {
		return Timeout, err
	}
	line, err := p.readLine()
	if err != nil {
		return Timeout, err
	}
	switch strings.TrimSpace(line) {
	case "sat":
		return Sat, nil
	case "unsat":
		return Unsat, nil
	default:
		return Timeout, nil
	}
}

func (p *ProcessOracle) UnsatCore(ctx context.Context) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := io.WriteString(p.stdin, "(get-unsat-core)\n"); err != nil {
		return nil, err
	}
	line, err := p.readLine()
	if err != nil {
		return nil, err
	}
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "(")
	line = strings.TrimSuffix(line, ")")
	if line == "" {
		return nil, nil
	}
	return strings.Fields(line), nil
}

func (p *ProcessOracle) Reset(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := io.WriteString(p.stdin, "(reset)\n(set-option :produce-unsat-cores true)\n")
	return err
}

func (p *ProcessOracle) Close() error {
	p.stdin.Close()
	return p.cmd.Wait()
}

func (p *ProcessOracle) readLine() (string, error) {
	return p.stdout.ReadString('\n')
}
