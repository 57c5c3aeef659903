package trigger

import (
	"bufio"
	"io"
	"log"
)

// StartConsole reads trigger commands line by line from r (stdin in the
// app) on a background goroutine and posts them to the bus. The goroutine
// exits when r does.
func StartConsole(bus *Bus, r io.Reader) {
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			line := sc.Text()
			if line == "" {
				continue
			}
			cmd, ok := Parse(line)
			if !ok {
				log.Printf("[trigger] unknown command %q (try: activate, disable)", line)
				continue
			}
			log.Printf("[trigger] console: %s", cmd)
			bus.Post(cmd)
		}
	}()
}
