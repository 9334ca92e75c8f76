package terminal

// Backend abstracts the platform tty: raw mode, byte I/O and resize notification
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error

	// Read waits up to one poll interval for input
	// Returns (nil, nil) on timeout or when stopCh is closed
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
