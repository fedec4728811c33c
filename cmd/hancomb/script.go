package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/gg582/hancomb/internal/emitter"
	"github.com/gg582/hancomb/internal/engine"
	"github.com/gg582/hancomb/internal/layout"
	"github.com/gg582/hancomb/internal/types"
)

var scriptKeys = map[string]types.KeyCode{
	"<BS>":    types.KeyDelete,
	"<ENTER>": types.KeyEnter,
	"<TAB>":   types.KeyTab,
	"<ESC>":   types.KeyEscape,
	"<SHIFT>": types.KeyShift,
	"<SPACE>": types.KeySpace,
}

// scriptStep is either a typed rune or a named key.
type scriptStep struct {
	r     rune
	key   types.KeyCode
	named bool
}

// parseScript splits a line into steps. A '<' that does not open a known
// token is typed as is.
func parseScript(line string) []scriptStep {
	var steps []scriptStep
	for len(line) > 0 {
		if line[0] == '<' {
			if end := strings.IndexByte(line, '>'); end > 0 {
				if code, ok := scriptKeys[strings.ToUpper(line[:end+1])]; ok {
					steps = append(steps, scriptStep{key: code, named: true})
					line = line[end+1:]
					continue
				}
			}
		}
		r, size := utf8.DecodeRuneInString(line)
		steps = append(steps, scriptStep{r: r})
		line = line[size:]
	}
	return steps
}

// runScript treats every input line as a key script ending in Enter and
// prints each finished host line.
func runScript(r io.Reader, w io.Writer, keyLayout *layout.Layout, log *slog.Logger) error {
	buf := emitter.NewBuffer()
	eng := engine.NewEngine(keyLayout, buf, log)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(w)
	defer writer.Flush()

	printed := 0
	for scanner.Scan() {
		for _, step := range parseScript(scanner.Text()) {
			var err error
			if step.named {
				err = eng.PressKey(step.key)
			} else {
				err = eng.TypeRune(step.r)
			}
			if err != nil {
				return err
			}
		}
		if err := eng.PressKey(types.KeyEnter); err != nil {
			return err
		}

		lines := buf.Lines()
		for _, line := range lines[printed:] {
			if _, err := fmt.Fprintln(writer, line); err != nil {
				return err
			}
		}
		printed = len(lines)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return eng.Close()
}
