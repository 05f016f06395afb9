package workerproc

import (
	"context"
	"errors"
	"testing"

	"github.com/halee5027/RecruitNova/internal/bootstrap"
	"github.com/halee5027/RecruitNova/internal/queue"
)

type fakeProcessor struct {
	err  error
	msgs []queue.Message
}

func (f *fakeProcessor) ProcessScreening(ctx context.Context, msg queue.Message) error {
	_ = ctx
	f.msgs = append(f.msgs, msg)
	return f.err
}

func TestParseMessageEmptyBody(t *testing.T) {
	_, meta, err := ParseMessage("   ")
	var emptyErr ErrEmptyBody
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected ErrEmptyBody, got %v", err)
	}
	if meta.BodyLen != 3 {
		t.Fatalf("expected body len 3, got %d", meta.BodyLen)
	}
}

func TestParseMessageBadJSON(t *testing.T) {
	_, meta, err := ParseMessage("{not-json")
	var decodeErr ErrDecode
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if meta.BodySHA == "" {
		t.Fatal("expected body sha for diagnostics")
	}
}

func TestParseMessageMissingScreeningID(t *testing.T) {
	body, _ := queue.EncodeMessage(queue.Message{RequestID: "req-1"})
	_, _, err := ParseMessage(string(body))
	var missingErr ErrMissingScreeningID
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected ErrMissingScreeningID, got %v", err)
	}
	if missingErr.RequestID != "req-1" {
		t.Fatalf("expected request id preserved, got %q", missingErr.RequestID)
	}
}

func TestParseMessageValid(t *testing.T) {
	body, _ := queue.EncodeMessage(queue.Message{
		ScreeningID: "screening-1",
		SourceURL:   "https://example.com/resume.pdf",
		RequestID:   "req-2",
	})
	msg, _, err := ParseMessage(string(body))
	if err != nil {
		t.Fatalf("parse message: %v", err)
	}
	if msg.ScreeningID != "screening-1" {
		t.Fatalf("unexpected screening id %q", msg.ScreeningID)
	}
}

func TestHandleMessagePassesJobToProcessor(t *testing.T) {
	proc := &fakeProcessor{}
	app := &bootstrap.App{ScreeningProcessor: proc}
	body, _ := queue.EncodeMessage(queue.Message{
		ScreeningID:    "screening-1",
		SourceURL:      "https://example.com/resume.pdf",
		JobDescription: "Go developer",
		RequestID:      "req-3",
	})

	if err := HandleMessage(context.Background(), app, string(body)); err != nil {
		t.Fatalf("handle message: %v", err)
	}
	if len(proc.msgs) != 1 {
		t.Fatalf("expected one processed job, got %d", len(proc.msgs))
	}
	if proc.msgs[0].ScreeningID != "screening-1" {
		t.Fatalf("unexpected screening id %q", proc.msgs[0].ScreeningID)
	}
}

func TestHandleMessageWrapsProcessorError(t *testing.T) {
	proc := &fakeProcessor{err: errors.New("boom")}
	app := &bootstrap.App{ScreeningProcessor: proc}
	body, _ := queue.EncodeMessage(queue.Message{ScreeningID: "screening-2", RequestID: "req-4"})

	err := HandleMessage(context.Background(), app, string(body))
	var procErr ErrProcess
	if !errors.As(err, &procErr) {
		t.Fatalf("expected ErrProcess, got %v", err)
	}
	if procErr.ScreeningID != "screening-2" || procErr.RequestID != "req-4" {
		t.Fatalf("unexpected error identity: %+v", procErr)
	}
}

func TestHandleMessageNilProcessor(t *testing.T) {
	if err := HandleMessage(context.Background(), &bootstrap.App{}, "{}"); err == nil {
		t.Fatal("expected error when no processor configured")
	}
}

func TestHandleMessageReusesParsedMessage(t *testing.T) {
	proc := &fakeProcessor{}
	app := &bootstrap.App{ScreeningProcessor: proc}
	parsed := queue.Message{ScreeningID: "screening-3", SourceURL: "https://example.com/cv.pdf"}

	ctx := WithParsedMessage(context.Background(), parsed)
	if err := HandleMessage(ctx, app, "ignored body"); err != nil {
		t.Fatalf("handle message: %v", err)
	}
	if len(proc.msgs) != 1 || proc.msgs[0].ScreeningID != "screening-3" {
		t.Fatalf("expected parsed message reused, got %+v", proc.msgs)
	}
}
