package dict

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Hunspell is an oracle backed by a hunspell subprocess speaking the
// ispell-compatible pipe protocol (-a flag).
type Hunspell struct {
	stdin io.WriteCloser
	out   *bufio.Reader
	mu    sync.Mutex
}

// NewHunspell starts a hunspell subprocess.
// dictDir: directory containing <lang>.aff / <lang>.dic (pass "" to
// use the system dictionary). lang: dictionary name, e.g. "en_US".
func NewHunspell(dictDir, lang string) (*Hunspell, error) {
	dictArg := lang
	if dictDir != "" {
		aff := filepath.Join(dictDir, lang+".aff")
		dic := filepath.Join(dictDir, lang+".dic")
		if _, err := os.Stat(aff); err != nil {
			return nil, fmt.Errorf("dict: hunspell dict missing: %s", aff)
		}
		if _, err := os.Stat(dic); err != nil {
			return nil, fmt.Errorf("dict: hunspell dict missing: %s", dic)
		}
		dictArg = filepath.Join(dictDir, lang)
	}

	cmd := exec.Command("hunspell", "-d", dictArg, "-a", "-i", "UTF-8")
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("dict: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("dict: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("dict: hunspell start (is hunspell installed?): %w", err)
	}

	h := &Hunspell{
		stdin: stdin,
		out:   bufio.NewReader(stdout),
	}
	// Discard the initial banner: "Hunspell x.y.z\n"
	if _, err := h.out.ReadString('\n'); err != nil {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		}
		return nil, fmt.Errorf("dict: hunspell init failed: %w", err)
	}

	return h, nil
}

// Unknown checks each candidate word against the running process.
func (h *Hunspell) Unknown(_ context.Context, words []string) (mapset.Set[string], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := mapset.NewThreadUnsafeSet[string]()
	for _, w := range words {
		if out.Contains(w) {
			continue
		}
		known, _, err := h.check(w)
		if err != nil {
			return nil, err
		}
		if !known {
			out.Add(w)
		}
	}
	return out, nil
}

// Correction returns hunspell's first suggestion for word, or "" when
// the word is known or has no suggestions.
func (h *Hunspell) Correction(_ context.Context, word string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	known, suggest, err := h.check(word)
	if err != nil {
		return "", err
	}
	if known || len(suggest) == 0 {
		return "", nil
	}
	return suggest[0], nil
}

// check sends one word to hunspell and parses the response.
// Ispell pipe protocol:
//
//   - → correct
//   - …     → correct compound
//     & w n o: s1, s2  → misspelled, suggestions
//     # w o   → misspelled, no suggestions
//
// Callers must hold h.mu.
func (h *Hunspell) check(word string) (known bool, suggest []string, err error) {
	if _, err = fmt.Fprintf(h.stdin, "^%s\n", word); err != nil {
		return false, nil, err
	}

	for {
		line, e := h.out.ReadString('\n')
		if e != nil && e != io.EOF {
			return false, nil, e
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break // blank line = end of result for this word
		}

		switch line[0] {
		case '*', '+': // correct / root found
			known = true
		case '-': // correct compound
			known = true
		case '&': // misspelled with suggestions: & word count offset: s1, s2
			known = false
			if idx := strings.Index(line, ": "); idx != -1 {
				for _, s := range strings.Split(line[idx+2:], ", ") {
					if s = strings.TrimSpace(s); s != "" {
						suggest = append(suggest, s)
					}
				}
			}
		case '#': // misspelled, no suggestions
			known = false
		}
	}
	return
}
