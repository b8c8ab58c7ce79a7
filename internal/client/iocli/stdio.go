package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by MakeRaw when stdin is not a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

type Stdio struct {
	in  *os.File
	out io.Writer
	r   *bufio.Reader
	raw bool
}

func NewStdio() IO {
	return newStdio(os.Stdin, os.Stdout)
}

func newStdio(in *os.File, out io.Writer) *Stdio {
	return &Stdio{
		in:  in,
		out: out,
		r:   bufio.NewReader(in),
	}
}

// Println в raw-режиме терминал не переводит \n в \r\n, делаем это сами
func (s *Stdio) Println(a ...any) {
	line := fmt.Sprintln(a...)
	if s.raw {
		line = strings.TrimSuffix(line, "\n") + "\r\n"
	}
	_, _ = io.WriteString(s.out, line)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadKey() (rune, error) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return 0, err
	}
	return r, nil
}

func (s *Stdio) IsTerminal() bool {
	return term.IsTerminal(int(s.in.Fd()))
}

func (s *Stdio) MakeRaw() (func() error, error) {
	if !s.IsTerminal() {
		return nil, ErrNotTerminal
	}
	fd := int(s.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	s.raw = true

	return func() error {
		s.raw = false
		return term.Restore(fd, state)
	}, nil
}

func (s *Stdio) Write(p []byte) (int, error) {
	if !s.raw {
		return s.out.Write(p)
	}
	converted := strings.ReplaceAll(string(p), "\n", "\r\n")
	if _, err := io.WriteString(s.out, converted); err != nil {
		return 0, err
	}
	return len(p), nil
}
