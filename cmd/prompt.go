package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptLine prints a label and reads one trimmed line of input.
func promptLine(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return "", nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// isAffirmative reports whether the answer matches any accepted affirmative
// token, case-insensitively. The token set comes from the configuration so
// localized variants ("s", "si", "sí") need no hardcoding here.
func isAffirmative(answer string, affirmatives []string) bool {
	answer = strings.TrimSpace(answer)
	for _, a := range affirmatives {
		if strings.EqualFold(answer, a) {
			return true
		}
	}
	return false
}
