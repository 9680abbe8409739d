package engine

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"strategos-server/internal/core/types/enums"
	"strategos-server/internal/domain"
	"strategos-server/pkg/api"
	"strategos-server/pkg/gamedata"
	"strategos-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Helper: собирает сервис с одним игроком и стартовой базой
func setupService(t *testing.T) (*GameService, *domain.Player) {
	t.Helper()

	cfg := NewConfig()
	cfg.Seed = 42
	cfg.TickRate = 10

	s, err := NewService(cfg, gamedata.DefaultTemplates)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	var stock domain.ResourceBundle
	stock.Set(enums.ResourceFood, 500)
	stock.Set(enums.ResourceWood, 500)
	stock.Set(enums.ResourceGold, 200)
	p := s.AddPlayer(1, "Blue", stock)

	if _, err := gamedata.SpawnStartingBase(s.Units, s.Registry, p, domain.Phys3{NE: 5, SE: 5}); err != nil {
		t.Fatalf("SpawnStartingBase failed: %v", err)
	}
	return s, p
}

func command(t *testing.T, action string, payload any) api.ClientCommand {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return api.ClientCommand{Action: action, Payload: raw}
}

func TestSpawnCommand(t *testing.T) {
	s, p := setupService(t)
	before := s.Units.Len()
	foodBefore := p.Stockpile.Get(enums.ResourceFood)

	s.executeCommand(command(t, "SPAWN", api.SpawnPayload{
		TypeName: "Militia", PlayerID: 1, NE: 3, SE: 4,
	}))

	if s.Units.Len() != before+1 {
		t.Fatalf("unit count = %d, want %d", s.Units.Len(), before+1)
	}
	if got := p.Stockpile.Get(enums.ResourceFood); got >= foodBefore {
		t.Error("spawn should have consumed food")
	}
}

func TestSpawnCommand_UnknownPlayer(t *testing.T) {
	s, _ := setupService(t)
	before := s.Units.Len()

	s.executeCommand(command(t, "SPAWN", api.SpawnPayload{
		TypeName: "Militia", PlayerID: 9,
	}))

	if s.Units.Len() != before {
		t.Error("spawn for an unknown player must not create units")
	}
	if len(s.Logs) == 0 || s.Logs[len(s.Logs)-1].Type != "ERROR" {
		t.Error("rejected command should leave an error log entry")
	}
}

func TestMoveCommand(t *testing.T) {
	s, _ := setupService(t)

	// Юнит с индексом 1 - первый рабочий базы
	units := s.Units.All()
	var worker *domain.Unit
	for _, u := range units {
		if u.Has(domain.AttrSpeed) {
			worker = u
			break
		}
	}
	if worker == nil {
		t.Fatal("starting base should contain a mobile unit")
	}

	s.executeCommand(command(t, "MOVE", api.MovePayload{
		UnitID: worker.ID.Key(), NE: 20, SE: 30,
	}))

	if worker.Pos.NE != 20 || worker.Pos.SE != 30 {
		t.Errorf("worker pos = %+v, want (20, 30)", worker.Pos)
	}
}

func TestMoveCommand_ImmobileUnit(t *testing.T) {
	s, _ := setupService(t)

	var base *domain.Unit
	for _, u := range s.Units.All() {
		if u.Has(domain.AttrBuilding) {
			base = u
			break
		}
	}

	s.executeCommand(command(t, "MOVE", api.MovePayload{
		UnitID: base.ID.Key(), NE: 20, SE: 30,
	}))

	if base.Pos.NE != 5 || base.Pos.SE != 5 {
		t.Error("a building must not move")
	}
}

func TestAttackCommand(t *testing.T) {
	s, p := setupService(t)

	a, err := gamedata.SpawnUnit(s.Units, s.Registry, "Militia", p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := gamedata.SpawnUnit(s.Units, s.Registry, "Militia", p)
	if err != nil {
		t.Fatal(err)
	}

	hpBefore := domain.GetAttribute[domain.CurrentHitpointsAttribute](b.Attributes, domain.AttrCurrentHitpoints).HP

	s.executeCommand(command(t, "ATTACK", api.TargetPayload{
		UnitID: a.ID.Key(), TargetID: b.ID.Key(),
	}))

	hpAfter := domain.GetAttribute[domain.CurrentHitpointsAttribute](b.Attributes, domain.AttrCurrentHitpoints).HP
	if hpAfter >= hpBefore {
		t.Errorf("target hp %d -> %d, want damage", hpBefore, hpAfter)
	}
}

func TestGatherCommand(t *testing.T) {
	s, p := setupService(t)

	worker, err := gamedata.SpawnUnit(s.Units, s.Registry, "VillagerMale", p)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := gamedata.SpawnUnit(s.Units, s.Registry, "Tree", nil)
	if err != nil {
		t.Fatal(err)
	}

	s.executeCommand(command(t, "GATHER", api.TargetPayload{
		UnitID: worker.ID.Key(), TargetID: tree.ID.Key(),
	}))

	carry := domain.GetAttribute[domain.ResourceCarrierAttribute](worker.Attributes, domain.AttrResourceCarrier)
	if carry.Amount <= 0 {
		t.Error("a gather command should put wood in the worker's hands")
	}
	if carry.ResourceType != enums.ResourceWood {
		t.Errorf("worker carries %s, want WOOD", carry.ResourceType)
	}
}

func TestDestroyCommand_StaleID(t *testing.T) {
	s, p := setupService(t)

	u, err := gamedata.SpawnUnit(s.Units, s.Registry, "Militia", p)
	if err != nil {
		t.Fatal(err)
	}
	id := u.ID.Key()

	s.executeCommand(command(t, "DESTROY", api.DestroyPayload{UnitID: id}))

	// Повторное уничтожение уже мертвого ID отклоняется
	s.executeCommand(command(t, "DESTROY", api.DestroyPayload{UnitID: id}))
	if last := s.Logs[len(s.Logs)-1]; last.Type != "ERROR" {
		t.Error("destroying a stale id should be rejected")
	}
}

func TestBuildSnapshot(t *testing.T) {
	s, _ := setupService(t)
	s.Tick = 7
	s.AddLog("привет", "INFO")

	snap := s.BuildSnapshot()

	if snap.Type != "UPDATE" || snap.Tick != 7 {
		t.Errorf("snapshot header = %s/%d", snap.Type, snap.Tick)
	}
	if len(snap.Players) != 1 || snap.Players[0].Name != "Blue" {
		t.Fatalf("players = %+v", snap.Players)
	}
	if snap.Players[0].Stockpile["FOOD"] != 500 {
		t.Errorf("food in snapshot = %v", snap.Players[0].Stockpile["FOOD"])
	}
	if len(snap.Units) != s.Units.Len() {
		t.Errorf("snapshot has %d units, container has %d", len(snap.Units), s.Units.Len())
	}
	if len(snap.Logs) != 1 {
		t.Errorf("snapshot logs = %d, want 1", len(snap.Logs))
	}

	// У городского центра в снимке есть готовность и здоровье
	var tc *api.UnitView
	for i := range snap.Units {
		if snap.Units[i].Type == "TownCenter" {
			tc = &snap.Units[i]
		}
	}
	if tc == nil {
		t.Fatal("town center missing from snapshot")
	}
	if tc.Completed == nil || *tc.Completed != 1 {
		t.Error("town center should be reported as completed")
	}
	if tc.Owner != 1 {
		t.Errorf("town center owner = %d, want 1", tc.Owner)
	}
	if tc.HP == 0 || tc.HP != tc.MaxHP {
		t.Errorf("town center hp = %d/%d", tc.HP, tc.MaxHP)
	}
}

func TestGameLoop_StartStop(t *testing.T) {
	s, _ := setupService(t)

	s.Start()

	ch := s.Hub.Subscribe()
	defer s.Hub.Unsubscribe(ch)

	s.ProcessCommand(command(t, "SPAWN", api.SpawnPayload{
		TypeName: "Militia", PlayerID: 1,
	}))

	select {
	case snap := <-ch:
		if snap.Type != "UPDATE" {
			t.Errorf("snapshot type = %s", snap.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot broadcast within 2s")
	}

	s.Stop()
}
