package testutil

import (
	"fmt"
	"net"
	"sync"
)

var (
	// recentPorts tracks recently allocated ports to prevent immediate reuse
	// when tests allocate ports in rapid succession.
	recentPorts   map[int]bool
	recentPortsMu sync.Mutex
)

// GetFreePort returns an available TCP port on localhost by binding to port 0
// and immediately releasing it. Ports handed out earlier in the process are
// skipped so two servers started back to back never collide.
// Panics if no port can be allocated.
func GetFreePort() int {
	const maxRetries = 100

	recentPortsMu.Lock()
	defer recentPortsMu.Unlock()

	if recentPorts == nil {
		recentPorts = make(map[int]bool)
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		listener, err := net.Listen("tcp", "localhost:0")
		if err != nil {
			panic(fmt.Sprintf("failed to get free port: %v", err))
		}
		port := listener.Addr().(*net.TCPAddr).Port
		listener.Close()

		if !recentPorts[port] {
			recentPorts[port] = true
			return port
		}
	}

	panic(fmt.Sprintf("failed to get unique free port after %d attempts", maxRetries))
}

// GetFreeAddress returns an available localhost:port address.
func GetFreeAddress() string {
	return fmt.Sprintf("localhost:%d", GetFreePort())
}
