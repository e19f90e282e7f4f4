package bollywood

// PID identifies a running actor inside an Engine.
type PID struct {
	ID string
}

func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}
