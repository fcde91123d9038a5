package config

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fyde/connector-install/internal/token"
)

// PromptToken reads enrollment tokens from in until a syntactically
// valid one is entered. Invalid entries are discarded and re-prompted;
// the loop is unbounded and ends only on valid input or EOF.
func PromptToken(in io.Reader, out io.Writer) (string, error) {
	scanner := bufio.NewScanner(in)
	// Enrollment tokens are long URLs, allow generous lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)

	for {
		fmt.Fprint(out, "Paste the enrollment token: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		entered := scanner.Text()
		if token.Validate(entered) {
			return entered, nil
		}
		fmt.Fprintln(out, "Invalid enrollment token, please try again.")
	}
}
