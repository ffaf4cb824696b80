// File: bollywood/pid.go
package bollywood

// PID identifies a spawned actor.
type PID struct {
	ID string
}

func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}
