// numfmt-memory-tester stress-tests the formatting entry points and
// reports heap growth. The library promises zero allocation per call, so
// memory use should stay flat regardless of the iteration count.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	numfmt "github.com/enerqi/odin-num-format"
)

// memStats holds memory statistics for a point in time
type memStats struct {
	alloc      uint64 // bytes allocated and still in use
	totalAlloc uint64 // bytes allocated (even if freed)
	sys        uint64 // bytes obtained from system
	numGC      uint32 // number of completed GC cycles
}

func getMemStats() memStats {
	runtime.GC() // Force GC to get accurate measurement
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return memStats{
		alloc:      m.Alloc,
		totalAlloc: m.TotalAlloc,
		sys:        m.Sys,
		numGC:      m.NumGC,
	}
}

func (m memStats) String() string {
	return fmt.Sprintf("Alloc: %6d KB, TotalAlloc: %6d KB, Sys: %6d KB, NumGC: %d",
		m.alloc/1024, m.totalAlloc/1024, m.sys/1024, m.numGC)
}

// workload runs one pass over a mix of values and buffer families and
// returns the total bytes produced, so the calls cannot be optimized away.
func workload(i int) int {
	var fbuf [numfmt.MinFloatBufLen]byte
	var ibuf [numfmt.MinIntBufLen]byte

	total := 0
	f := float64(i) * 1.25
	total += numfmt.PutFloat64(fbuf[:], f)
	total += numfmt.PutFloat64(fbuf[:], -f/3.0)
	total += numfmt.PutFloat32(fbuf[:], float32(f))
	total += numfmt.PutFiniteFloat64(fbuf[:], f*1e10)
	total += numfmt.PutFiniteFloat32(fbuf[:], float32(f)*1e-10)
	total += numfmt.PutInt64(ibuf[:], int64(-i)*1234567)
	total += numfmt.PutUint64(ibuf[:], uint64(i)*7654321)
	total += numfmt.PutInt32(ibuf[:], int32(i))
	total += numfmt.PutUint32(ibuf[:], uint32(i))
	return total
}

func main() {
	iterations := flag.Int("iterations", 100000, "number of workload passes")
	reportInterval := flag.Int("report", 10000, "iterations between reports")
	flag.Parse()

	startMem := getMemStats()
	fmt.Println("Start:", startMem)

	produced := 0
	for i := 0; i < *iterations; i++ {
		n := workload(i + 1)
		if n == 0 {
			fmt.Fprintf(os.Stderr, "workload produced no output at iteration %d\n", i)
			os.Exit(1)
		}
		produced += n

		if *reportInterval > 0 && i%*reportInterval == 0 && i > 0 {
			stats := getMemStats()
			fmt.Printf("Iteration %7d: %s\n", i, stats)
		}
	}

	endMem := getMemStats()
	fmt.Println("End:  ", endMem)

	allocGrowth := int64(endMem.alloc) - int64(startMem.alloc)
	allocGrowthKB := allocGrowth / 1024
	bytesPerIteration := float64(allocGrowth) / float64(*iterations)

	fmt.Printf("\nFormatted %d bytes total\n", produced)
	fmt.Printf("Memory growth: %d KB (%.4f bytes/iteration)\n", allocGrowthKB, bytesPerIteration)

	// A steady-state budget of one byte per iteration is already far
	// beyond what the zero-allocation contract allows.
	if bytesPerIteration > 1.0 {
		fmt.Fprintln(os.Stderr, "FAIL: formatting appears to allocate")
		os.Exit(1)
	}
	fmt.Println("PASS: no per-call allocation detected")
}
