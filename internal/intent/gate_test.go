package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/nextlevelbuilder/dayclaw/internal/providers"
)

type fakeProvider struct {
	reply   string
	err     error
	lastReq providers.ChatRequest
}

func (f *fakeProvider) Name() string         { return "fake" }
func (f *fakeProvider) DefaultModel() string { return "fake-model" }

func (f *fakeProvider) Chat(_ context.Context, req providers.ChatRequest) (*providers.ChatResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &providers.ChatResponse{Content: f.reply}, nil
}

func TestClassify_Realtime(t *testing.T) {
	g := NewGate(&fakeProvider{reply: "REALTIME"}, "")
	verdict, err := g.Classify(context.Background(), "what's the weather in Berlin?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != Realtime {
		t.Errorf("expected Realtime, got %s", verdict)
	}
}

func TestClassify_AnythingElseIsGeneral(t *testing.T) {
	// The fail-safe default: only the exact literal counts.
	for _, reply := range []string{"GENERAL", "realtime", "Realtime", "REALTIME.", "Sure! REALTIME seems right.", ""} {
		g := NewGate(&fakeProvider{reply: reply}, "")
		verdict, err := g.Classify(context.Background(), "tell me a joke")
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", reply, err)
		}
		if verdict != General {
			t.Errorf("reply %q should classify as General", reply)
		}
	}
}

func TestClassify_TrimsWhitespace(t *testing.T) {
	g := NewGate(&fakeProvider{reply: "REALTIME\n"}, "")
	verdict, _ := g.Classify(context.Background(), "latest scores?")
	if verdict != Realtime {
		t.Error("surrounding whitespace must not defeat the match")
	}
}

func TestClassify_ErrorPropagates(t *testing.T) {
	wantErr := errors.New("connection refused")
	g := NewGate(&fakeProvider{err: wantErr}, "")
	if _, err := g.Classify(context.Background(), "hi"); !errors.Is(err, wantErr) {
		t.Errorf("expected the provider error to propagate, got %v", err)
	}
}

func TestClassify_SendsMessageAsUserTurn(t *testing.T) {
	fake := &fakeProvider{reply: "GENERAL"}
	g := NewGate(fake, "router-model")
	g.Classify(context.Background(), "any plans?")

	if fake.lastReq.Model != "router-model" {
		t.Errorf("classifier model not used: %q", fake.lastReq.Model)
	}
	if len(fake.lastReq.Messages) != 2 || fake.lastReq.Messages[1].Role != "user" || fake.lastReq.Messages[1].Content != "any plans?" {
		t.Errorf("unexpected request shape: %+v", fake.lastReq.Messages)
	}
}
