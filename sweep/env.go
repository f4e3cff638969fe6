// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/katalvlaran/lvlath-matmul/matrix"
)

// Env describes the execution environment the parallel kernel runs in.
type Env struct {
	GOOS        string
	GOARCH      string
	NumCPU      int
	Parallelism int      // matrix.Parallelism(), i.e. GOMAXPROCS
	Features    []string // notable CPU features detected by x/sys/cpu
}

// DetectEnv snapshots the current environment.
func DetectEnv() Env {
	return Env{
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		NumCPU:      runtime.NumCPU(),
		Parallelism: matrix.Parallelism(),
		Features:    cpuFeatures(),
	}
}

// String renders a one-line header, e.g.
// "linux/amd64 cpus=8 gomaxprocs=8 features=[avx2 fma]".
func (e Env) String() string {
	return fmt.Sprintf("%s/%s cpus=%d gomaxprocs=%d features=[%s]",
		e.GOOS, e.GOARCH, e.NumCPU, e.Parallelism, strings.Join(e.Features, " "))
}

func cpuFeatures() []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasFPHP, "fphp")
		add(cpu.ARM64.HasSVE, "sve")
		add(cpu.ARM64.HasSVE2, "sve2")
	}

	return out
}
