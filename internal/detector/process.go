package detector

import (
	"fmt"

	ps "github.com/mitchellh/go-ps"
	"github.com/shirou/gopsutil/v3/process"
)

const (
	BackendGopsutil = "gopsutil"
	BackendGoPS     = "go-ps"
	BackendNone     = "none"
)

// Process is the part of a process-table entry the detector looks at.
type Process struct {
	PID     int
	Name    string
	Cmdline string
}

// ProcessTable enumerates running processes. Implementations that cannot
// reach the process table return ErrProcessTableUnavailable.
type ProcessTable interface {
	Processes() ([]Process, error)
}

// NewProcessTable returns the process table for a configured backend name.
func NewProcessTable(backend string) (ProcessTable, error) {
	switch backend {
	case BackendGopsutil, "":
		return GopsutilTable(), nil
	case BackendGoPS:
		return GoPSTable(), nil
	case BackendNone:
		return Unavailable(), nil
	default:
		return nil, fmt.Errorf("unknown process table backend: %s", backend)
	}
}

type gopsutilTable struct{}

// GopsutilTable reads names and full command lines through gopsutil.
func GopsutilTable() ProcessTable {
	return gopsutilTable{}
}

func (gopsutilTable) Processes() ([]Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessTableUnavailable, err)
	}

	result := make([]Process, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			// Process exited between listing and reading.
			continue
		}
		cmdline, err := p.Cmdline()
		if err != nil || cmdline == "" {
			cmdline = name
		}
		result = append(result, Process{PID: int(p.Pid), Name: name, Cmdline: cmdline})
	}
	return result, nil
}

type goPSTable struct{}

// GoPSTable reads executable names through go-ps. go-ps exposes no command
// line, so Cmdline repeats the name.
func GoPSTable() ProcessTable {
	return goPSTable{}
}

func (goPSTable) Processes() ([]Process, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessTableUnavailable, err)
	}

	result := make([]Process, 0, len(procs))
	for _, p := range procs {
		result = append(result, Process{PID: p.Pid(), Name: p.Executable(), Cmdline: p.Executable()})
	}
	return result, nil
}

type unavailableTable struct{}

// Unavailable is the process table of a host where enumeration is not
// possible or not wanted.
func Unavailable() ProcessTable {
	return unavailableTable{}
}

func (unavailableTable) Processes() ([]Process, error) {
	return nil, ErrProcessTableUnavailable
}

// StaticTable serves a fixed snapshot.
type StaticTable []Process

func (t StaticTable) Processes() ([]Process, error) {
	return t, nil
}
