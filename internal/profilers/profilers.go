// Package profilers sets up profiling for the solver, controlled by flags.
//
// If linked, it will install the flags -prof, -cpu_profile and -mem_profile.
package profilers

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagProfiler   = flag.Int("prof", -1, "If set, serves the pprof HTTP profiler at the given port, and keeps the program alive at the end.")
	flagCPUProfile = flag.String("cpu_profile", "", "write cpu profile to `file`")
	flagMemProfile = flag.String("mem_profile", "", "write a heap profile to `file` at the end of the program")

	profilerAddr string
	cpuFile      *os.File

	// globalCtx is set on the call to Setup.
	globalCtx context.Context
)

// Setup starts the HTTP (flag -prof) and CPU profilers (flag -cpu_profile), if they were configured.
// You should follow with a deferred call to OnQuit.
func Setup(ctx context.Context) error {
	globalCtx = ctx
	if *flagProfiler >= 0 {
		setupHTTPProfiler()
	}
	if *flagCPUProfile != "" {
		var err error
		cpuFile, err = os.Create(*flagCPUProfile)
		if err != nil {
			return errors.Wrapf(err, "creating CPU profile file %q", *flagCPUProfile)
		}
		if err = pprof.StartCPUProfile(cpuFile); err != nil {
			return errors.Wrap(err, "starting CPU profile")
		}
	}
	return nil
}

// OnQuit stops the profilers and writes the heap profile. It should be deferred just after Setup.
//
// If the HTTP profiler is enabled, it blocks until the context given to Setup is done.
func OnQuit() {
	if cpuFile != nil {
		pprof.StopCPUProfile()
		_ = cpuFile.Close()
		cpuFile = nil
	}
	if *flagMemProfile != "" {
		if err := writeHeapProfile(*flagMemProfile); err != nil {
			klog.Errorf("Failed to write heap profile: %+v", err)
		}
	}
	if *flagProfiler >= 0 {
		httpProfilerOnQuit()
	}
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating heap profile file %q", path)
	}
	defer func() { _ = f.Close() }()
	runtime.GC()
	return errors.Wrap(pprof.WriteHeapProfile(f), "writing heap profile")
}

func setupHTTPProfiler() {
	profilerAddr = fmt.Sprintf("localhost:%d", *flagProfiler)
	klog.Infof("Starting profiler on %s/debug/pprof", profilerAddr)
	klog.Infof("- You can access it with: $ go tool pprof %s/debug/pprof/heap", profilerAddr)
	go func() {
		klog.Fatal(http.ListenAndServe(profilerAddr, nil))
	}()
}

// httpProfilerOnQuit keeps the program alive until the context is cancelled, so the profile
// can be inspected.
func httpProfilerOnQuit() {
	if globalCtx == nil || globalCtx.Err() != nil {
		// Already interrupted.
		return
	}
	fmt.Printf("- Program finished: kept alive with profiler opened at %s/debug/pprof\n", profilerAddr)
	fmt.Printf("- Interrupt (Ctrl+C) to exit\n")
	<-globalCtx.Done()
	fmt.Printf("... exiting ...\n")
}
