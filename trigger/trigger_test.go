package trigger

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
)

func TestParseAcceptsBothSpellings(t *testing.T) {
	cases := map[string]Command{
		"activate":   CmdActivate,
		"  ACTIVATE": CmdActivate,
		"disable":    CmdDisable,
		"Disable\t":  CmdDisable,
	}
	for in, want := range cases {
		got, ok := Parse(in)
		if !ok || got != want {
			t.Errorf("Parse(%q) = %v, %v; want %v, true", in, got, ok, want)
		}
	}
	if _, ok := Parse("reboot"); ok {
		t.Error("Parse accepted an unknown command")
	}
}

func TestBusDrainsInOrderAndDropsOverflow(t *testing.T) {
	b := NewBus()
	b.Post(CmdActivate)
	b.Post(CmdDisable)

	var got []Command
	b.Drain(func(c Command) { got = append(got, c) })
	if len(got) != 2 || got[0] != CmdActivate || got[1] != CmdDisable {
		t.Fatalf("drained %v, want [activate disable]", got)
	}

	// Overflow never blocks the posting goroutine.
	for i := 0; i < 100; i++ {
		b.Post(CmdActivate)
	}
	n := 0
	b.Drain(func(Command) { n++ })
	if n == 0 || n > 8 {
		t.Fatalf("drained %d commands after overflow, want 1..8", n)
	}
}

func TestConsolePostsParsedCommands(t *testing.T) {
	b := NewBus()
	StartConsole(b, strings.NewReader("activate\nnonsense\ndisable\n"))

	deadline := time.Now().Add(2 * time.Second)
	var got []Command
	for len(got) < 2 && time.Now().Before(deadline) {
		b.Drain(func(c Command) { got = append(got, c) })
		time.Sleep(5 * time.Millisecond)
	}
	if len(got) != 2 || got[0] != CmdActivate || got[1] != CmdDisable {
		t.Fatalf("console produced %v, want [activate disable]", got)
	}
}

func TestServerRoundTrip(t *testing.T) {
	b := NewBus()
	s, err := StartServer(b, "127.0.0.1:0")
	if err != nil {
		t.Fatalf("StartServer: %v", err)
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws://"+s.Addr()+"/trigger", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	if err := conn.Write(ctx, websocket.MessageText, []byte("activate")); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, reply, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read reply: %v", err)
	}
	if !strings.HasPrefix(string(reply), "ok:") {
		t.Fatalf("reply = %q, want ok acknowledgement", reply)
	}

	var got []Command
	deadline := time.Now().Add(2 * time.Second)
	for len(got) == 0 && time.Now().Before(deadline) {
		b.Drain(func(c Command) { got = append(got, c) })
		time.Sleep(5 * time.Millisecond)
	}
	if len(got) != 1 || got[0] != CmdActivate {
		t.Fatalf("bus received %v, want [activate]", got)
	}
}
