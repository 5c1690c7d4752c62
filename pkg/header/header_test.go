package header

import "testing"

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindResolution),
		WithAPIVersion(APIVersionV1),
		WithMetadata("strategy", "type"),
	)

	if h.GetKind() != KindResolution {
		t.Errorf("expected kind %s, got %s", KindResolution, h.GetKind())
	}
	if h.APIVersion != APIVersionV1 {
		t.Errorf("expected apiVersion %s, got %s", APIVersionV1, h.APIVersion)
	}
	if h.GetMetadata()["strategy"] != "type" {
		t.Errorf("expected strategy metadata, got %v", h.GetMetadata())
	}
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindDataset, APIVersionV1, "v1.2.3")

	if h.Metadata["timestamp"] == "" {
		t.Error("expected timestamp to be set")
	}
	if h.Metadata["version"] != "v1.2.3" {
		t.Errorf("expected version v1.2.3, got %q", h.Metadata["version"])
	}

	h.Init(KindDataset, APIVersionV1, "")
	if _, ok := h.Metadata["version"]; ok {
		t.Error("expected version to be omitted when empty")
	}
}

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindDataset, true},
		{KindResolution, true},
		{KindDashboardLookup, true},
		{Kind("Recipe"), false},
		{Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
