// Command l2bench measures fused nearest-centroid assignment throughput
// on randomly generated data.
//
// Usage:
//
//	l2bench -rows 100000 -refs 1024 -dim 128 -iters 10
//	l2bench -dtype float64 -workers 4 -squared
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/hupe1980/fusedl2"
)

var (
	rows    = flag.Int("rows", 100000, "Number of query rows")
	refs    = flag.Int("refs", 1024, "Number of reference rows (centroids)")
	dim     = flag.Int("dim", 128, "Vector dimension")
	iters   = flag.Int("iters", 10, "Number of assignment iterations")
	workers = flag.Int("workers", 0, "Worker goroutines (0 = GOMAXPROCS)")
	dtype   = flag.String("dtype", "float32", "Element type: 'float32' or 'float64'")
	squared = flag.Bool("squared", false, "Report squared distances (skip sqrt)")
	seed    = flag.Int64("seed", 42, "Random seed")
	verbose = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	fmt.Printf("fused L2 assignment benchmark:\n")
	fmt.Printf("  Rows:      %d\n", *rows)
	fmt.Printf("  Refs:      %d\n", *refs)
	fmt.Printf("  Dimension: %d\n", *dim)
	fmt.Printf("  Dtype:     %s\n", *dtype)
	fmt.Printf("  Workers:   %d (GOMAXPROCS=%d)\n", *workers, runtime.GOMAXPROCS(0))
	fmt.Printf("  CPU:       %s\n", cpuFeatures())

	switch *dtype {
	case "float32":
		run[float32]()
	case "float64":
		run[float64]()
	default:
		log.Fatalf("unknown dtype %q", *dtype)
	}
}

func run[T fusedl2.Float]() {
	rng := rand.New(rand.NewSource(*seed))

	qdata := make([]T, *rows**dim)
	for i := range qdata {
		qdata[i] = T(rng.Float64())
	}
	rdata := make([]T, *refs**dim)
	for i := range rdata {
		rdata[i] = T(rng.Float64())
	}

	queries, err := fusedl2.NewMatrix(qdata, *rows, *dim)
	if err != nil {
		log.Fatal(err)
	}
	references, err := fusedl2.NewMatrix(rdata, *refs, *dim)
	if err != nil {
		log.Fatal(err)
	}

	opts := []fusedl2.Option{fusedl2.WithWorkers(*workers)}
	if *squared {
		opts = append(opts, fusedl2.WithSquaredDistances())
	}
	if *verbose {
		opts = append(opts, fusedl2.WithLogger(fusedl2.NewTextLogger(slog.LevelDebug)))
	}

	metrics := &fusedl2.BasicMetricsCollector{}
	opts = append(opts, fusedl2.WithMetricsCollector(metrics))

	assigner, err := fusedl2.NewAssigner(references, opts...)
	if err != nil {
		log.Fatal(err)
	}

	out := make([]int32, *rows)
	dists := make([]T, *rows)

	ctx := context.Background()

	// Warmup pass so pool buffers and page faults don't skew timing.
	if err := assigner.Assign(ctx, queries, out, dists); err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	for i := 0; i < *iters; i++ {
		if err := assigner.Assign(ctx, queries, out, dists); err != nil {
			log.Fatal(err)
		}
	}
	elapsed := time.Since(start)

	perIter := elapsed / time.Duration(*iters)
	rowsPerSec := float64(*rows) * float64(*iters) / elapsed.Seconds()
	pairsPerSec := rowsPerSec * float64(*refs)

	fmt.Printf("\nResults:\n")
	fmt.Printf("  Per iteration: %s\n", perIter)
	fmt.Printf("  Rows/s:        %.0f\n", rowsPerSec)
	fmt.Printf("  Pairs/s:       %.3g\n", pairsPerSec)
	fmt.Printf("  Assignments:   %d (errors: %d)\n",
		metrics.AssignCount.Load(), metrics.AssignErrors.Load())
}

// cpuFeatures reports the SIMD capabilities of the host so benchmark
// numbers can be interpreted.
func cpuFeatures() string {
	switch runtime.GOARCH {
	case "amd64":
		return fmt.Sprintf("amd64 avx2=%t avx512f=%t fma=%t",
			cpu.X86.HasAVX2, cpu.X86.HasAVX512F, cpu.X86.HasFMA)
	case "arm64":
		return fmt.Sprintf("arm64 asimd=%t sve=%t",
			cpu.ARM64.HasASIMD, cpu.ARM64.HasSVE)
	default:
		return runtime.GOARCH
	}
}
