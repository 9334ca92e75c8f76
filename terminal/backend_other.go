//go:build !unix

package terminal

import "errors"

var ErrNotTerminal = errors.New("ansi backend requires a unix tty, use the tcell backend")

type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error                             { return ErrNotTerminal }
func (unsupportedBackend) Fini()                                   {}
func (unsupportedBackend) Size() (int, int)                        { return 80, 24 }
func (unsupportedBackend) Write([]byte) error                      { return ErrNotTerminal }
func (unsupportedBackend) Read(<-chan struct{}) ([]byte, error)    { return nil, ErrNotTerminal }
func (unsupportedBackend) SetResizeHandler(func(width, height int)) {}
