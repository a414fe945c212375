package pty

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/pleimann/swipe-pad/internal/action"
	"github.com/pleimann/swipe-pad/internal/utils"
)

var ErrNotStarted = errors.New("PTY not started")

// DefaultStopTimeout is how long the TUI gets to exit after an interrupt
// before it is killed
const DefaultStopTimeout = 3 * time.Second

// Manager runs the target TUI inside a PTY and types into it
type Manager struct {
	command    string
	args       []string
	workingDir string
	output     io.Writer

	// StopTimeout bounds the wait after interrupting the TUI
	StopTimeout time.Duration

	mu     sync.Mutex
	ptmx   *os.File
	cmd    *exec.Cmd
	exited chan struct{}
}

// NewManager prepares a manager for command. Everything the TUI prints is
// copied to output, which may be nil to discard it.
func NewManager(command string, args []string, workingDir string, output io.Writer) (*Manager, error) {
	if command == "" {
		return nil, fmt.Errorf("command is required")
	}
	if output == nil {
		output = io.Discard
	}

	return &Manager{
		command:     command,
		args:        args,
		workingDir:  workingDir,
		output:      output,
		StopTimeout: DefaultStopTimeout,
	}, nil
}

// Start launches the TUI. Cancelling ctx interrupts it the same way Stop does.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ptmx != nil {
		return fmt.Errorf("%s is already running", m.command)
	}

	cmd := exec.CommandContext(ctx, m.command, m.args...)
	cmd.Dir = m.workingDir
	cmd.Env = os.Environ()
	// interrupt on ctx done, kill if still alive after StopTimeout
	cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }
	cmd.WaitDelay = m.StopTimeout

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start PTY: %w", err)
	}

	m.ptmx = ptmx
	m.cmd = cmd
	m.exited = make(chan struct{})

	go m.copyOutput(ptmx)
	go func(exited chan struct{}) {
		err := cmd.Wait()
		utils.Verbose("%s exited: %v", m.command, err)
		close(exited)
	}(m.exited)

	return nil
}

// Stop interrupts the TUI and waits for it, killing it if it has not exited
// within StopTimeout, then closes the PTY
func (m *Manager) Stop() {
	m.mu.Lock()
	cmd, ptmx, exited := m.cmd, m.ptmx, m.exited
	m.ptmx = nil
	m.mu.Unlock()

	if cmd != nil && cmd.Process != nil && exited != nil {
		cmd.Process.Signal(os.Interrupt)
		select {
		case <-exited:
		case <-time.After(m.StopTimeout):
			utils.Info("%s ignored interrupt, killing it", m.command)
			cmd.Process.Kill()
			<-exited
		}
	}
	if ptmx != nil {
		ptmx.Close()
	}
}

// Done is closed when the TUI process exits. It is nil before Start.
func (m *Manager) Done() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exited
}

func (m *Manager) copyOutput(ptmx *os.File) {
	// read errors mean the PTY was closed or the child went away
	if _, err := io.Copy(m.output, ptmx); err != nil {
		utils.Verbose("pty output: %v", err)
	}
}

// WriteKey types one key press into the TUI
func (m *Manager) WriteKey(key action.KeyPress) error {
	data := key.ToBytes()
	if data == nil {
		return fmt.Errorf("could not convert %s to bytes", key)
	}
	return m.write(data)
}

func (m *Manager) WriteString(s string) error {
	return m.write([]byte(s))
}

func (m *Manager) write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ptmx == nil {
		return ErrNotStarted
	}
	_, err := m.ptmx.Write(data)
	return err
}

// Resize sets the PTY window size
func (m *Manager) Resize(rows, cols uint16) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ptmx == nil {
		return ErrNotStarted
	}
	return pty.Setsize(m.ptmx, &pty.Winsize{Rows: rows, Cols: cols})
}

// IsRunning reports whether the TUI has been started and not yet exited
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	exited := m.exited
	m.mu.Unlock()

	if exited == nil {
		return false
	}
	select {
	case <-exited:
		return false
	default:
		return true
	}
}
