package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eiannone/keyboard"

	"github.com/gg582/hancomb/internal/emitter"
	"github.com/gg582/hancomb/internal/engine"
	"github.com/gg582/hancomb/internal/layout"
	"github.com/gg582/hancomb/internal/types"
)

// keyCodes maps the raw terminal keys the engine knows by name.
var keyCodes = map[keyboard.Key]types.KeyCode{
	keyboard.KeyBackspace:  types.KeyDelete,
	keyboard.KeyBackspace2: types.KeyDelete,
	keyboard.KeyEnter:      types.KeyEnter,
	keyboard.KeyTab:        types.KeyTab,
	keyboard.KeySpace:      types.KeySpace,
}

// runInteractive reads raw keys until Ctrl-C or Esc and repaints the line
// being composed.
func runInteractive(keyLayout *layout.Layout, log *slog.Logger) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	fmt.Fprintf(os.Stderr, "hancomb: layout %s, Esc or Ctrl-C to quit\r\n", keyLayout.Name())

	term := emitter.NewTerminal(os.Stdout)
	eng := engine.NewEngine(keyLayout, term, log)
	defer eng.Close()

	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if key == keyboard.KeyCtrlC || key == keyboard.KeyEsc {
			return nil
		}
		if code, ok := keyCodes[key]; ok {
			err = eng.PressKey(code)
		} else if char != 0 {
			err = eng.TypeRune(char)
		} else {
			log.Debug("ignored key", "key", uint16(key))
			continue
		}
		if err != nil {
			return err
		}
	}
}
