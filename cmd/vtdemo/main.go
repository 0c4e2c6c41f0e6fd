// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command vtdemo drives vtcore against a real shell: it execs $SHELL
// under a pty, puts the controlling terminal into raw mode, feeds the
// pty master's output into a vtcore.Terminal, and renders the
// resulting grid back to stdout. It is the host half of the picture
// spec.md §1 explicitly keeps out of the core library — pty creation,
// I/O multiplexing and rasterization all happen here, not in vtcore.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/ozkl/vtcore/vtcore"
)

func main() {
	rows := flag.Int("rows", 25, "terminal rows")
	cols := flag.Int("cols", 80, "terminal cols")
	flag.Parse()

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	// Prefer the controlling terminal's actual size over the flag
	// defaults when stdin is a real tty.
	if ws, err := unix.IoctlGetWinsize(int(os.Stdin.Fd()), unix.TIOCGWINSZ); err == nil && ws.Row > 0 && ws.Col > 0 {
		*rows, *cols = int(ws.Row), int(ws.Col)
	}

	if err := run(shell, *rows, *cols); err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo:", err)
		os.Exit(1)
	}
}

func run(shell string, rows, cols int) error {
	c := exec.Command(shell)
	ptmx, err := pty.StartWithSize(c, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close() //nolint:errcheck

	// Window size changes are forwarded to the pty so the child shell
	// sees them, but the emulator's own grid stays fixed — vtcore has
	// no runtime resize (spec.md §3, a deliberate non-goal).
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)
	go func() {
		for range winch {
			if ws, err := unix.IoctlGetWinsize(int(os.Stdin.Fd()), unix.TIOCGWINSZ); err == nil {
				_ = pty.Setsize(ptmx, &pty.Winsize{Rows: ws.Row, Cols: ws.Col})
			}
		}
	}()

	stdinFD := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(stdinFD)
	if err != nil {
		return fmt.Errorf("make raw: %w", err)
	}
	defer term.Restore(stdinFD, oldState) //nolint:errcheck

	out := os.Stdout
	vt, err := vtcore.NewTerminal(rows, cols, vtcore.Callbacks{
		WriteToMaster: func(p []byte) { ptmx.Write(p) }, //nolint:errcheck
	})
	if err != nil {
		return fmt.Errorf("new terminal: %w", err)
	}

	go io.Copy(ptmx, os.Stdin) //nolint:errcheck

	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			vt.Feed(buf[:n])
			render(vt, out)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read pty: %w", err)
		}
	}
}

// render draws the Terminal's current view, honoring its scrollback
// offset (spec.md §4.5), to w using plain cursor-positioning escapes.
func render(t *vtcore.Terminal, w io.Writer) {
	var b strings.Builder
	b.WriteString("\x1b[H")
	for y := 0; y < t.Rows(); y++ {
		row := t.VisibleRow(y)
		for _, cell := range row {
			b.WriteByte(cell.Char)
		}
		b.WriteString("\x1b[K")
		if y < t.Rows()-1 {
			b.WriteString("\r\n")
		}
	}
	row, col := t.Cursor()
	fmt.Fprintf(&b, "\x1b[%d;%dH", row+1, col+1)
	w.Write([]byte(b.String())) //nolint:errcheck
}
