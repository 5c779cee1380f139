package flow

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestImageSetResolve(t *testing.T) {
	images := ImageSet{
		"s1:hero": {StoragePath: "articles/a1/hero-s1.jpg"},
		"hero":    {StoragePath: "articles/a1/hero.jpg"},
		"ghost":   {},
	}

	testCases := []struct {
		name       string
		sectionKey string
		slotID     string
		want       string
		wantOK     bool
	}{
		{
			name:       "composite key wins",
			sectionKey: "s1",
			slotID:     "hero",
			want:       "articles/a1/hero-s1.jpg",
			wantOK:     true,
		},
		{
			name:       "bare fallback",
			sectionKey: "s2",
			slotID:     "hero",
			want:       "articles/a1/hero.jpg",
			wantOK:     true,
		},
		{
			name:       "unknown slot",
			sectionKey: "s1",
			slotID:     "nope",
			wantOK:     false,
		},
		{
			name:       "unresolved entry counts as missing",
			sectionKey: "s1",
			slotID:     "ghost",
			wantOK:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img, ok := images.Resolve(tc.sectionKey, tc.slotID)
			if ok != tc.wantOK {
				t.Fatalf("got ok=%v, wanted %v", ok, tc.wantOK)
			}
			if img.StoragePath != tc.want {
				t.Errorf("got %q, wanted %q", img.StoragePath, tc.want)
			}
		})
	}
}

func TestLayoutUnmarshal(t *testing.T) {
	data := `{
		"breakpoint": "desktop",
		"flow": [
			{"blockId":"b1","type":"text","sectionTypeId":"default","sectionInstanceKey":"s1","startChar":0,"endChar":12,"minHeightPx":180.5},
			{"blockId":"b2","type":"image","sectionTypeId":"aside-figure","sectionInstanceKey":"s2","imageSlotId":"hero"},
			{"blockId":"b3","type":"heading","sectionTypeId":"default","sectionInstanceKey":"s3","content":"Lahore Fort"}
		]
	}`

	want := Layout{
		Breakpoint: BreakpointDesktop,
		Flow: []Block{
			{ID: "b1", Type: BlockText, SectionTypeID: SectionDefault, SectionInstanceKey: "s1", StartChar: 0, EndChar: 12, MinHeightPx: 180.5},
			{ID: "b2", Type: BlockImage, SectionTypeID: SectionAsideFigure, SectionInstanceKey: "s2", ImageSlotID: "hero"},
			{ID: "b3", Type: BlockHeading, SectionTypeID: SectionDefault, SectionInstanceKey: "s3", Content: "Lahore Fort"},
		},
	}

	var got Layout
	if err := json.Unmarshal([]byte(data), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}
