package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/api"
)

func TestGameService_Attach(t *testing.T) {
	svc := NewService(testConfig("corridor", EnemyAIIdle))

	id, err := svc.Attach("")
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if !strings.HasPrefix(id, "session_") {
		t.Errorf("Expected session_ prefix, got %q", id)
	}

	again, err := svc.Attach(id)
	if err != nil || again != id {
		t.Errorf("Expected to reattach to %s, got %s (err %v)", id, again, err)
	}

	other, _ := svc.Attach("unknown-token")
	if other == id || other == "unknown-token" {
		t.Errorf("Expected a fresh session for an unknown token, got %s", other)
	}

	if n := len(svc.SessionInfos()); n != 2 {
		t.Errorf("Expected 2 sessions, got %d", n)
	}
}

func TestGameService_ReleaseEvictsIdleSession(t *testing.T) {
	svc := NewService(testConfig("corridor", EnemyAIIdle))

	id, first, _, err := svc.Join("")
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	again, second, _, err := svc.Join(id)
	if err != nil || again != id {
		t.Fatalf("Expected to join %s, got %s (err %v)", id, again, err)
	}

	// Пока есть подписчик, сессия живет
	svc.Release(id, first)
	if _, err := svc.Snapshot(id); err != nil {
		t.Errorf("Expected session to survive while a subscriber remains, got %v", err)
	}

	svc.Release(id, second)
	if _, err := svc.Snapshot(id); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("Expected ErrUnknownSession after the last release, got %v", err)
	}
	if n := len(svc.SessionInfos()); n != 0 {
		t.Errorf("Expected no sessions, got %d", n)
	}

	// Старый токен больше не ведет в выселенную сессию
	fresh, _, _, err := svc.Join(id)
	if err != nil || fresh == id {
		t.Errorf("Expected a fresh session for an evicted token, got %s (err %v)", fresh, err)
	}
}

func TestGameService_ProcessCommand(t *testing.T) {
	svc := NewService(testConfig("corridor", EnemyAIIdle))
	id, _ := svc.Attach("")
	_, updates := svc.Hub.Subscribe(id)

	if err := svc.ProcessCommand(id, api.ClientCommand{Action: "MOVE", Payload: moveDir(0)}); err != nil {
		t.Fatalf("MOVE failed: %v", err)
	}

	msg := <-updates
	if msg.Turn != 1 {
		t.Errorf("Expected turn 1, got %d", msg.Turn)
	}
	if msg.Player == nil || msg.Player.S != 3 || msg.Player.T != -2 {
		t.Errorf("Expected player at (3,-2), got %+v", msg.Player)
	}

	// Ошибка команды приходит в лог снимка, сессия продолжает жить
	err := svc.ProcessCommand(id, api.ClientCommand{Action: "FLY"})
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
	msg = <-updates
	if len(msg.Logs) != 1 || msg.Logs[0].Type != "ERROR" {
		t.Errorf("Expected one ERROR log entry, got %+v", msg.Logs)
	}

	// Отправленные логи не повторяются
	_ = svc.ProcessCommand(id, api.ClientCommand{Action: "WAIT"})
	msg = <-updates
	if len(msg.Logs) != 0 {
		t.Errorf("Expected logs to be cleared after publishing, got %+v", msg.Logs)
	}

	if err := svc.ProcessCommand("nope", api.ClientCommand{Action: "WAIT"}); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("Expected ErrUnknownSession, got %v", err)
	}
}

func TestGameService_VisibilityReport(t *testing.T) {
	svc := NewService(testConfig("corridor", EnemyAIIdle))
	id, _ := svc.Attach("")

	report, err := svc.VisibilityReport(id)
	if err != nil {
		t.Fatalf("VisibilityReport failed: %v", err)
	}
	if report.Origin != domain.Hex(2, -2) {
		t.Errorf("Expected origin (2,-2), got %v", report.Origin)
	}
	if len(report.Visible) != 25 || len(report.Fog) != 25 {
		t.Errorf("Expected 25 visible and 25 fog, got %d and %d", len(report.Visible), len(report.Fog))
	}
	if strings.Count(report.FogMap, "@") != 1 {
		t.Errorf("Expected exactly one player glyph in\n%s", report.FogMap)
	}
	if strings.Contains(report.FogMap, "k") {
		t.Errorf("Sleeping skeleton behind the door must not be drawn:\n%s", report.FogMap)
	}
	for i, sec := range report.Sectors {
		if sec.Rings == 0 {
			t.Errorf("Sector %d: expected ring depth to be reported", i)
		}
	}

	// Шаг назад: старые клетки помнятся, но не видны
	_ = svc.ProcessCommand(id, api.ClientCommand{Action: "MOVE", Payload: moveDir(0)})
	report, _ = svc.VisibilityReport(id)
	if len(report.Fog) < len(report.Visible) {
		t.Errorf("Fog (%d) must contain visible (%d)", len(report.Fog), len(report.Visible))
	}

	if _, err := svc.VisibilityReport("nope"); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("Expected ErrUnknownSession, got %v", err)
	}
}

func TestGameService_CompareReport(t *testing.T) {
	svc := NewService(testConfig("crossroads", EnemyAIIdle))
	id, _ := svc.Attach("")

	report, err := svc.CompareReport(id)
	if err != nil {
		t.Fatalf("CompareReport failed: %v", err)
	}
	if report.Shadowcast != 37 || report.FloodFill != 37 {
		t.Errorf("Expected 37/37 at the crossroads start, got %d/%d", report.Shadowcast, report.FloodFill)
	}
	if len(report.OnlyShadowcast) != 0 || len(report.OnlyFloodFill) != 0 {
		t.Errorf("Expected no divergence, got %v / %v", report.OnlyShadowcast, report.OnlyFloodFill)
	}

	if _, err := svc.CompareReport("nope"); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("Expected ErrUnknownSession, got %v", err)
	}
}
