// Package prompt is the interactive menu around the card engine.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"git.thinkinpower.net/cardcheck/card"
	"git.thinkinpower.net/cardcheck/selftest"
)

const menu = `
Card validator
---------------------------------
1. Validate and identify a card
2. Run self-test
0. Exit
`

// Run reads menu choices from in until "0" or end of input.
func Run(in io.Reader, out io.Writer, cases []selftest.Case) error {
	scanner := bufio.NewScanner(in)
	readLine := func(label string) (string, bool) {
		fmt.Fprint(out, label)
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	for {
		fmt.Fprint(out, menu)
		choice, ok := readLine("Choose an option: ")
		if !ok {
			return scanner.Err()
		}
		switch strings.TrimSpace(choice) {
		case "1":
			number, ok := readLine("Enter the card number: ")
			if !ok {
				return scanner.Err()
			}
			result := card.ValidateAndIdentify(number)
			fmt.Fprintf(out, "\n--- Validation result ---\n%s\n-------------------------\n", result.Message)
		case "2":
			selftest.Run(out, cases)
		case "0":
			fmt.Fprintln(out, "Bye.")
			return nil
		default:
			fmt.Fprintln(out, "Invalid option, try again.")
		}
	}
}
