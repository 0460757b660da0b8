package cli

import (
	"errors"
	"os"
	"os/signal"
	"pwmeter/internal/common"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
)

type CommandOpts struct {
	Name  string
	Flags Flags

	Use     string
	Aliases []string
	Short   string
	Long    string
	Example string

	Run func(cmd *cobra.Command, opts *Command, args []string) error
}

// NewCommand initialises and returns a data structure that contains
// a set of common constructs for long-running commands to use
func NewCommand(opts CommandOpts) *Command {
	output := &Command{
		flags:             opts.Flags,
		name:              opts.Name,
		shutdownProcesses: map[string]func() error{},
	}
	serviceLogs := make(chan common.ServiceLog, 64)
	common.StartServiceLogLoop(serviceLogs)
	output.serviceLogs = serviceLogs

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown_hostname"
	}
	output.hostname = hostname

	output.Command = &cobra.Command{
		Use:     opts.Use,
		Aliases: opts.Aliases,
		Short:   opts.Short,
		Long:    opts.Long,
		Example: opts.Example,
		PreRun: func(cmd *cobra.Command, args []string) {
			opts.Flags.BindViper(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := opts.Run(cmd, output, args)
			output.stopListening()
			output.Shutdown()
			return errors.Join(err, output.Error())
		},
	}
	opts.Flags.AddToCommand(output.Command)

	return output
}

// Command wraps a cobra.Command with lifecycle management for
// commands that run until they are signalled to stop
type Command struct {
	errs              []error
	errsMutex         sync.Mutex
	flags             Flags
	name              string
	hostname          string
	serviceLogs       chan common.ServiceLog
	shutdownOnce      sync.Once
	shutdownProcesses map[string]func() error
	signals           chan os.Signal

	*cobra.Command
}

// AddShutdownProcess adds a `process` named `id` for use when the
// Shutdown() method is called
func (cd *Command) AddShutdownProcess(id string, process func() error) {
	if _, ok := cd.shutdownProcesses[id]; ok {
		cd.serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "process[%s] was overwritten", id)
	}
	cd.shutdownProcesses[id] = process
}

// Error returns any errors raised by the shutdown processes
func (cd *Command) Error() error {
	cd.errsMutex.Lock()
	defer cd.errsMutex.Unlock()
	return errors.Join(cd.errs...)
}

// Get returns the underlying cobra.Command
func (cd *Command) Get() *cobra.Command {
	return cd.Command
}

// GetFlags returns the flagset of this command, useful when creating
// alternate names for commands and needing to replicate the flagset
func (cd *Command) GetFlags() Flags {
	return cd.flags
}

// GetFullname returns the full namespaced ID of the current command
func (cd *Command) GetFullname() string {
	return strings.ToLower("pwmeter." + cd.name)
}

// GetSnakeCaseName returns the full namespaced ID of the current
// command in snake_case, useful as a metric or log prefix
func (cd *Command) GetSnakeCaseName() string {
	return strings.ReplaceAll(cd.GetFullname(), ".", "_")
}

// GetHostname returns the current hostname of the machine
func (cd *Command) GetHostname() string {
	return cd.hostname
}

// GetServiceLogs returns the service logs channel that other
// components can use for logging to a central logging system
func (cd *Command) GetServiceLogs() chan common.ServiceLog {
	return cd.serviceLogs
}

// IsReady tells the command to begin listening for system lifecycle
// events, a SIGINT or SIGTERM triggers the registered shutdown
// processes
func (cd *Command) IsReady() {
	cd.signals = make(chan os.Signal, 1)
	signal.Notify(cd.signals, syscall.SIGINT, syscall.SIGTERM)
	go func(signals chan os.Signal) {
		if sig, ok := <-signals; ok {
			cd.serviceLogs <- common.ServiceLogf(common.LogLevelInfo, "received signal[%s]", sig)
			cd.Shutdown()
		}
	}(cd.signals)
}

func (cd *Command) stopListening() {
	if cd.signals == nil {
		return
	}
	signal.Stop(cd.signals)
	close(cd.signals)
	cd.signals = nil
}

// Shutdown gracefully terminates any processes in the command, use
// the AddShutdownProcess method to register them. Only the first
// call does anything
func (cd *Command) Shutdown() {
	cd.shutdownOnce.Do(cd.shutdown)
}

func (cd *Command) shutdown() {
	var waiter sync.WaitGroup
	cd.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "triggering shutdownProcesses (%v registered)", len(cd.shutdownProcesses))
	succeededCount := 0
	failedCount := 0
	var countMutex sync.Mutex
	for id, shutdownProcess := range cd.shutdownProcesses {
		waiter.Add(1)
		go func(processId string, process func() error) {
			defer waiter.Done()
			cd.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "triggering shutdownProcess[%s]", processId)
			if err := process(); err != nil {
				cd.serviceLogs <- common.ServiceLogf(common.LogLevelError, "shutdownProcess[%s] failed: %s", processId, err)
				countMutex.Lock()
				failedCount++
				countMutex.Unlock()
				cd.errsMutex.Lock()
				cd.errs = append(cd.errs, err)
				cd.errsMutex.Unlock()
				return
			}
			countMutex.Lock()
			succeededCount++
			countMutex.Unlock()
			cd.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "shutdownProcess[%s] succeeded", processId)
		}(id, shutdownProcess)
	}
	waiter.Wait()
	cd.serviceLogs <- common.ServiceLogf(common.LogLevelInfo, "completed shutdownProcesses (%v successful, %v errored out)", succeededCount, failedCount)
}
