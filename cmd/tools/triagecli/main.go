// Command triagecli is a REPL for exercising the message classifier:
// type a message, see its category and a scripted reply. Handy for
// tuning keyword rules without going through the HTTP surface.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mindcare-app/backend/internal/analysis/triage"
)

func main() {
	responder := triage.NewResponder(nil)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Message triage REPL. Type a message, or 'quit' to exit.")
	fmt.Printf("Categories: %v\n\n", triage.Categories())

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		category, reply := responder.Respond(line)
		fmt.Printf("category: %s\nreply:    %s\n\n", category, reply)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
}
