package systems

import (
	"encoding/json"
	"testing"

	cfg "github.com/automoto/sysbreach/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSavedSettingsRoundTrip(t *testing.T) {
	in := SavedSettings{
		AlarmVolume:     0.25,
		Muted:           true,
		Fullscreen:      true,
		ResolutionIndex: 2,
	}

	data, err := json.Marshal(&in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out SavedSettings
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip changed settings: got %+v want %+v", out, in)
	}
}

func TestApplySavedSettingsClampsResolutionIndex(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	saved := &SavedSettings{
		AlarmVolume:     0.5,
		ResolutionIndex: len(cfg.SettingsMenu.Resolutions) + 3,
	}
	ApplySavedSettings(e, saved)

	settings := GetOrCreateSettings(e)
	if settings.ResolutionIndex != cfg.SettingsMenu.DefaultResolutionIndex {
		t.Errorf("ResolutionIndex = %d, want default %d",
			settings.ResolutionIndex, cfg.SettingsMenu.DefaultResolutionIndex)
	}
	if settings.AlarmVolume != 0.5 {
		t.Errorf("AlarmVolume = %v, want 0.5", settings.AlarmVolume)
	}
}

func TestApplySavedSettingsNilIsNoOp(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	ApplySavedSettings(e, nil)

	settings := GetOrCreateSettings(e)
	if settings.AlarmVolume != cfg.Audio.DefaultAlarmVol {
		t.Errorf("AlarmVolume = %v, want default %v", settings.AlarmVolume, cfg.Audio.DefaultAlarmVol)
	}
}
