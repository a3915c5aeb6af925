package main

import (
	"bufio"
	"fmt"
	"strings"
)

const prompt = "tutorai> "

// shell runs commands read line by line over the same view until "exit" or EOF.
func (cli *commandLine) shell() error {
	scanner := bufio.NewScanner(cli.in)
	fmt.Fprint(cli.out, prompt)
	for scanner.Scan() {
		args, err := splitArgs(scanner.Text())
		switch {
		case err != nil:
			fmt.Fprintf(cli.out, "error: %s\n", err)
		case len(args) == 0:
		case args[0] == "exit" || args[0] == "quit":
			return nil
		case args[0] == "help":
			cli.printUsage()
		case args[0] == "shell":
			fmt.Fprintln(cli.out, "already in shell")
		default:
			if err := cli.run(append([]string{"admin"}, args...)); err != nil && err != errHelp && err != errFailed {
				fmt.Fprintf(cli.out, "error: %s\n", err)
			}
		}
		fmt.Fprint(cli.out, prompt)
	}
	fmt.Fprintln(cli.out)
	return scanner.Err()
}

// splitArgs splits line on spaces, keeping double quoted parts together.
func splitArgs(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	inQuotes, inArg := false, false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			inArg = true
		case r == ' ' || r == '\t':
			if inQuotes {
				cur.WriteRune(r)
			} else if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("unterminated quote")
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args, nil
}
