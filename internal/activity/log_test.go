package activity

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/aditya-debugs/Heal-Sync/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestSend_NewestFirst(t *testing.T) {
	l := New(10)

	l.Send("first", nil)
	l.Send("second", nil)
	l.Send("third", nil)

	snap := l.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d, want 3", len(snap))
	}
	if snap[0].Message != "third" || snap[2].Message != "first" {
		t.Errorf("order wrong: %s ... %s", snap[0].Message, snap[2].Message)
	}
}

func TestSend_CapacityTrimsOldest(t *testing.T) {
	l := New(5)

	for i := 0; i < 12; i++ {
		l.Send(fmt.Sprintf("msg-%d", i), nil)
	}

	snap := l.Snapshot()
	if len(snap) != 5 {
		t.Fatalf("len = %d, want 5", len(snap))
	}
	// Свежая запись первой, старейшая выжившая - последней.
	if snap[0].Message != "msg-11" || snap[4].Message != "msg-7" {
		t.Errorf("window wrong: %s ... %s", snap[0].Message, snap[4].Message)
	}
}

func TestSend_EntriesGetIDAndTimestamp(t *testing.T) {
	l := New(10)
	l.Send("hello", Meta{"agent": "Test"})

	e := l.Snapshot()[0]
	if e.ID == "" {
		t.Error("entry without ID")
	}
	if e.Timestamp.IsZero() {
		t.Error("entry without timestamp")
	}
	if e.Meta["agent"] != "Test" {
		t.Error("meta lost")
	}
}

// Зеркало в logrus помечает запись полем агента-источника.
func TestSend_MirrorsAgentField(t *testing.T) {
	var buf bytes.Buffer
	old := logger.Log.Out
	logger.Log.SetOutput(&buf)
	defer logger.Log.SetOutput(old)

	l := New(10)
	l.Send("mirrored line", Meta{"agent": "Lab", "type": "STATUS"})

	out := buf.String()
	if !strings.Contains(out, "mirrored line") {
		t.Fatalf("mirror lost the message: %q", out)
	}
	if !strings.Contains(out, "Lab") {
		t.Errorf("mirror lost the agent field: %q", out)
	}
}

func TestBroadcaster_DeliversToSubscribers(t *testing.T) {
	l := New(10)
	ch := l.Hub().Subscribe()

	l.Send("streamed", nil)

	select {
	case e := <-ch:
		if e.Message != "streamed" {
			t.Errorf("message = %s", e.Message)
		}
	default:
		t.Fatal("entry not delivered to subscriber")
	}

	l.Hub().Unsubscribe(ch)
	if l.Hub().SubscriberCount() != 0 {
		t.Error("unsubscribe did not remove the channel")
	}
}

func TestBroadcaster_SlowSubscriberDropped(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	// Переполняем буфер: лишние записи молча отбрасываются, без блокировки.
	for i := 0; i < 150; i++ {
		b.Broadcast(Entry{Message: fmt.Sprintf("m-%d", i)})
	}

	if got := len(ch); got != cap(ch) {
		t.Errorf("buffered = %d, want full buffer %d", got, cap(ch))
	}
}
