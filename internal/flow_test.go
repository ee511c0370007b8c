package internal

import (
	"context"
	"encoding/json"
	"testing"
)

func TestFlowHappyPath(t *testing.T) {
	approved, err := SampleBundle().Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	bridge := &ScriptedBridge{
		Responses: []Response{
			StringResponse{Value: SampleExportJSON},
			JSONResponse{Value: json.RawMessage(approved)},
		},
	}

	donation := TikTokDonation()
	if err := donation.Run(context.Background(), "sid", bridge); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(bridge.Donated) != 2 {
		t.Fatalf("got %d donations, want 2 (tracking + consent)", len(bridge.Donated))
	}
	if bridge.Donated[0].Key != "sid-tracking" {
		t.Errorf("first donation key = %q, want sid-tracking", bridge.Donated[0].Key)
	}
	if bridge.Donated[1].Key != "sid-TikTok" {
		t.Errorf("second donation key = %q, want sid-TikTok", bridge.Donated[1].Key)
	}
	if bridge.Donated[1].Payload != approved {
		t.Error("consent donation payload should match the approved bundle")
	}

	// file prompt, consent form, end page
	if len(bridge.Rendered) != 3 {
		t.Fatalf("got %d renders, want 3", len(bridge.Rendered))
	}
	if !bridge.Rendered[2].Page.End {
		t.Error("last rendered page should be the end page")
	}
}

func TestFlowSkipAtFilePrompt(t *testing.T) {
	bridge := &ScriptedBridge{
		Responses: []Response{SkipResponse{}},
	}

	donation := TikTokDonation()
	if err := donation.Run(context.Background(), "sid", bridge); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(bridge.Donated) != 1 {
		t.Errorf("got %d donations, want only the tracking event", len(bridge.Donated))
	}
	// file prompt + end page
	if len(bridge.Rendered) != 2 {
		t.Errorf("got %d renders, want 2", len(bridge.Rendered))
	}
}

func TestFlowRetryThenSucceed(t *testing.T) {
	approved, err := SampleBundle().Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	bridge := &ScriptedBridge{
		Responses: []Response{
			StringResponse{Value: "garbage"},
			BoolResponse{Value: true},
			StringResponse{Value: SampleExportJSON},
			JSONResponse{Value: json.RawMessage(approved)},
		},
	}

	donation := TikTokDonation()
	if err := donation.Run(context.Background(), "sid", bridge); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(bridge.Donated) != 2 {
		t.Errorf("got %d donations, want 2", len(bridge.Donated))
	}
	// file, retry confirm, file again, consent, end
	if len(bridge.Rendered) != 5 {
		t.Errorf("got %d renders, want 5", len(bridge.Rendered))
	}
}

func TestFlowRetryDeclined(t *testing.T) {
	bridge := &ScriptedBridge{
		Responses: []Response{
			StringResponse{Value: "garbage"},
			BoolResponse{Value: false},
		},
	}

	donation := TikTokDonation()
	if err := donation.Run(context.Background(), "sid", bridge); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(bridge.Donated) != 1 {
		t.Errorf("got %d donations, want only the tracking event", len(bridge.Donated))
	}
}

func TestFlowConsentRejected(t *testing.T) {
	bridge := &ScriptedBridge{
		Responses: []Response{
			StringResponse{Value: SampleExportJSON},
			SkipResponse{},
		},
	}

	donation := TikTokDonation()
	if err := donation.Run(context.Background(), "sid", bridge); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(bridge.Donated) != 1 {
		t.Errorf("got %d donations, want only the tracking event", len(bridge.Donated))
	}
	if bridge.Donated[0].Key != "sid-tracking" {
		t.Errorf("donation key = %q, want sid-tracking", bridge.Donated[0].Key)
	}
}

func TestFlowTrackingEventIsFirst(t *testing.T) {
	bridge := &ScriptedBridge{Responses: []Response{SkipResponse{}}}

	donation := TikTokDonation()
	if err := donation.Run(context.Background(), "sid", bridge); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(bridge.Donated) == 0 || bridge.Donated[0].Key != "sid-tracking" {
		t.Fatal("tracking event should be donated before anything is rendered")
	}
	var payload []map[string]string
	if err := json.Unmarshal([]byte(bridge.Donated[0].Payload), &payload); err != nil {
		t.Fatalf("tracking payload is not valid JSON: %v", err)
	}
}
