package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

type finalizerBox struct{ f Finalizer }

var (
	crashTerminal atomic.Pointer[finalizerBox]

	// Overridden in tests
	crashOutput io.Writer = os.Stderr
	exitFunc              = os.Exit
)

// RegisterTerminal sets the screen restored by HandleCrash; nil clears it
func RegisterTerminal(f Finalizer) {
	if f == nil {
		crashTerminal.Store(nil)
		return
	}
	crashTerminal.Store(&finalizerBox{f: f})
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Terminal first, otherwise the trace is printed into the alternate screen
	if box := crashTerminal.Swap(nil); box != nil {
		box.f.Fini()
	}

	log.Printf("crash: %v\n%s", r, debug.Stack())
	fmt.Fprintf(crashOutput, "\n\x1b[31mLANE-RACER CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", debug.Stack())

	exitFunc(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
