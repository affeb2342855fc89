// Package hostinfo describes the machine a render runs on, for logs and
// benchmark output.
package hostinfo

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

var errNoCPU = errors.New("no CPU information available")

// Info is a snapshot of the host CPU and memory.
type Info struct {
	Model    string
	GHz      float64
	Logical  int
	TotalRAM uint64 // bytes
}

// Collect queries the OS. Fields it cannot read are left zero; the returned
// error reports the first failure.
func Collect() (Info, error) {
	var info Info
	var first error
	keep := func(err error) {
		if first == nil {
			first = err
		}
	}

	cpus, err := cpu.Info()
	switch {
	case err != nil:
		keep(err)
	case len(cpus) == 0:
		keep(errNoCPU)
	default:
		info.Model = cpus[0].ModelName
		info.GHz = cpus[0].Mhz / 1000
	}

	if n, err := cpu.Counts(true); err != nil {
		keep(err)
	} else {
		info.Logical = n
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		keep(err)
	} else {
		info.TotalRAM = vm.Total
	}
	return info, first
}

// Describe is Collect with the error folded away: missing fields fall back
// to what the Go runtime knows.
func Describe() Info {
	info, _ := Collect()
	if info.Logical <= 0 {
		info.Logical = runtime.NumCPU()
	}
	if info.Model == "" {
		info.Model = runtime.GOARCH
	}
	return info
}

func (i Info) String() string {
	s := fmt.Sprintf("cpu=%q threads=%d", i.Model, i.Logical)
	if i.GHz > 0 {
		s += fmt.Sprintf(" ghz=%.2f", i.GHz)
	}
	if i.TotalRAM > 0 {
		s += fmt.Sprintf(" ram=%.1fGiB", float64(i.TotalRAM)/(1<<30))
	}
	return s
}
