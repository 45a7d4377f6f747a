package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/toon-format/toon-go/internal"
)

// main is the main entry point for toon-go.
func main() {
	if len(os.Args) <= 1 {
		printHelp()
		return
	}

	var err error

	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp()

	case "version", "--version", "-v":
		printVersion()

	case "validate":
		err = validate(os.Args[2:])

	case "fmt":
		err = format(os.Args[2:])

	case "from-csv":
		err = fromCSV(os.Args[2:])

	case "to-csv":
		err = toCSV(os.Args[2:])

	default:
		err = errors.New("unrecognized command \"" + os.Args[1] + "\"")
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// printHelp prints the help message for the program.
func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  toon-go help")
	fmt.Println("  toon-go version")
	fmt.Println("  toon-go validate FILE...")
	fmt.Println("  toon-go fmt [args] FILE")
	fmt.Println("  toon-go from-csv [args] FILE")
	fmt.Println("  toon-go to-csv [args] FILE")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  help       Prints this help message.")
	fmt.Println("  version    Prints version information about this tool.")
	fmt.Println("  validate   Checks that each input is well-formed TOON, reporting error locations.")
	fmt.Println("  fmt        Re-writes the input in canonical form.")
	fmt.Println("  from-csv   Converts a CSV file to TOON, inferring field types.")
	fmt.Println("  to-csv     Converts a TOON file to CSV.")
	fmt.Println()
	fmt.Println("Common arguments:")
	fmt.Println("  -o, --output FILE    Write to FILE instead of stdout.")
	fmt.Println("  -c, --config FILE    Read tool defaults from a YAML config file.")
	fmt.Println("  -n, --name NAME      Table name to write (from-csv only).")
}

// printVersion prints the version info for this tool.
func printVersion() {
	fmt.Printf("toon-go %v (built %v)\n", internal.GitCommit, internal.BuildTime)
}
