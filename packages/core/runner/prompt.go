package runner

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptConfirm returns a Confirm function that asks on out and reads the
// answer from in. An empty answer or end of input counts as no; anything else
// that is not yes or no asks again.
func PromptConfirm(in io.Reader, out io.Writer) func(path string) (bool, error) {
	reader := bufio.NewReader(in)
	return func(path string) (bool, error) {
		for {
			fmt.Fprintf(out, "Output file %q already exists, overwrite? [y/N]: ", path)
			line, err := reader.ReadString('\n')
			answer := strings.ToLower(strings.TrimSpace(line))
			switch answer {
			case "y", "yes":
				return true, nil
			case "n", "no", "":
				return false, nil
			}
			if err == io.EOF {
				return false, nil
			}
			if err != nil {
				return false, err
			}
		}
	}
}
