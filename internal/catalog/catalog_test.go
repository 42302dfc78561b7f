package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultCatalog(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	cs := cat.Campaigns()
	if len(cs) != 2 {
		t.Fatalf("expected 2 default campaigns, got %d", len(cs))
	}
	if cs[0].ID != "CAMP_001" || cs[0].MaxExposures != 3 || cs[0].AdContent != "AD_001" {
		t.Fatalf("unexpected first campaign: %+v", cs[0])
	}
	if !cs[0].Window.Contains(8 * time.Hour) {
		t.Fatalf("CAMP_001 window should contain 08:00")
	}
	if cs[0].Window.Contains(20 * time.Hour) {
		t.Fatalf("CAMP_001 window should exclude 20:00")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaigns.json")
	data := `[{
		"campaign_id": "CAMP_009",
		"locations": ["CHECK_09"],
		"time_window": {"start": "22:00", "end": "06:00"},
		"max_exposures_per_plate": 1,
		"ad_content": "AD_009"
	}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	cs := cat.Campaigns()
	if len(cs) != 1 || cs[0].ID != "CAMP_009" {
		t.Fatalf("unexpected catalog: %+v", cs)
	}
	// wrap-around window spans midnight
	if !cs[0].Window.Contains(2 * time.Hour) {
		t.Fatalf("22:00-06:00 window should contain 02:00")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseRejectsBadCatalog(t *testing.T) {
	cases := map[string]string{
		"not json":    `{`,
		"bad window":  `[{"campaign_id":"C","locations":["X"],"time_window":{"start":"8am","end":"20:00"},"max_exposures_per_plate":1,"ad_content":"A"}]`,
		"zero cap":    `[{"campaign_id":"C","locations":["X"],"time_window":{"start":"08:00","end":"20:00"},"max_exposures_per_plate":0,"ad_content":"A"}]`,
		"no location": `[{"campaign_id":"C","locations":[],"time_window":{"start":"08:00","end":"20:00"},"max_exposures_per_plate":1,"ad_content":"A"}]`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); err == nil {
				t.Fatalf("Parse should fail")
			}
		})
	}
}
