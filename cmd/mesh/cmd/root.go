// Package cmd implements the mesh CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (info, validate, render).
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/go-mesh/mesh/pkg/errors"
)

import stderrors "errors"

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "mesh",
	Short: "mesh - structured-mesh level inspection tools",
	Long: `mesh inspects, validates, and visualizes box-level description
files used by the mesh hierarchy library.

Use "mesh <command> --help" for more information about a command.`,
	Usage: "mesh <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags
	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("mesh CLI version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			errors.SetHandler(&errors.LogHandler{Verbose: true})
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return runCommand(cmd, cmdArgs)
}

// runCommand executes a subcommand, routing failures and recovered
// panics through the error handler so they reach stderr before the
// process exits with a failure code.
func runCommand(cmd *Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "cmd." + cmd.Name,
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
			err = fmt.Errorf("command %s panicked: %v", cmd.Name, r)
		}
	}()

	if err := cmd.Run(args); err != nil {
		reportError(cmd.Name, err)
		return err
	}
	return nil
}

// reportError hands a command failure to the error handler. Structured
// errors keep their own operation and kind; anything else is wrapped.
func reportError(name string, err error) {
	var merr *errors.MeshError
	if stderrors.As(err, &merr) {
		errors.Report(merr)
		return
	}
	errors.Report(&errors.MeshError{
		Op:   "cmd." + name,
		Kind: errors.KindUnknown,
		Err:  err,
	})
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --verbose            Include stack traces in error output")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  mesh info level.yaml            Print level statistics")
	fmt.Println("  mesh validate level.yaml        Check a level for consistency problems")
	fmt.Println("  mesh render level.yaml -o x.png Draw the level to a PNG")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
