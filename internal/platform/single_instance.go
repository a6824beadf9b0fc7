package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance of this front-end already
// holds the lock. Each front-end locks under its own name, so the tray app
// and the web app can run side by side.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard holds the single-instance lock.
type InstanceGuard struct {
	listener net.Listener
	address  string
}

// AcquireSingleInstance binds a localhost port derived from the front-end
// name. A bind failure means another instance holds the port.
func AcquireSingleInstance(frontendName string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", portFromName(frontendName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func portFromName(frontendName string) int {
	const (
		minPort = 40000
		maxPort = 59999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(frontendName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
